package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	appConfig "income-eligibility/internal/config"
	"income-eligibility/internal/services/scorer"
	"income-eligibility/internal/utils"
)

// EndpointStatusChecker reports the deployment status of the scoring endpoint.
type EndpointStatusChecker interface {
	EndpointStatus(ctx context.Context) (string, error)
	EndpointName() string
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	checker EndpointStatusChecker
	stage   string
	version string
}

// NewHealthHandler creates a new health handler. If the SageMaker client cannot
// be created the handler still serves, reporting the endpoint as not configured.
func NewHealthHandler(ctx context.Context, cfg *appConfig.Config) *HealthHandler {
	h := &HealthHandler{stage: cfg.Stage, version: cfg.ServiceVersion}

	checker, err := scorer.NewStatusChecker(ctx, cfg)
	if err != nil {
		utils.GetLogger().Warn("Endpoint status checks disabled", utils.Error(err))
		return h
	}
	h.checker = checker
	return h
}

// NewHealthHandlerWithChecker creates a health handler using the given checker.
func NewHealthHandlerWithChecker(checker EndpointStatusChecker, stage, version string) *HealthHandler {
	return &HealthHandler{checker: checker, stage: stage, version: version}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	Stage          string `json:"stage"`
	Endpoint       string `json:"endpoint,omitempty"`
	EndpointStatus string `json:"endpoint_status"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := corsHeaders("GET,OPTIONS")

	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "income-eligibility",
		Version:   h.version,
		Stage:     h.stage,
	}

	// Check endpoint status
	if h.checker != nil {
		response.Endpoint = h.checker.EndpointName()
		status, err := h.checker.EndpointStatus(ctx)
		switch {
		case err != nil:
			utils.RequestLogger(requestID(ctx, request)).Warn("Endpoint status check failed", utils.Error(err))
			response.EndpointStatus = "unreachable"
			response.Status = "degraded"
		case status != scorer.StatusInService:
			response.EndpointStatus = status
			response.Status = "degraded"
		default:
			response.EndpointStatus = status
		}
	} else {
		response.EndpointStatus = "not configured"
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return jsonResponse(headers, statusCode, response)
}
