package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	appConfig "income-eligibility/internal/config"
	"income-eligibility/internal/models"
	"income-eligibility/internal/services/scorer"
	"income-eligibility/internal/utils"
)

const formContentType = "application/x-www-form-urlencoded"

// Scorer returns the model score for one CSV feature row.
type Scorer interface {
	Score(ctx context.Context, row []byte) (float64, error)
	EndpointName() string
}

// EligibilityHandler scores form-encoded candidates against the income model.
type EligibilityHandler struct {
	scorer    Scorer
	rowWriter *utils.CSVRowWriter
}

// NewEligibilityHandler creates a handler backed by the configured SageMaker endpoint.
// The underlying client is created once and reused for every invocation.
func NewEligibilityHandler(ctx context.Context, cfg *appConfig.Config) (*EligibilityHandler, error) {
	svc, err := scorer.NewService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}
	return NewEligibilityHandlerWithScorer(svc), nil
}

// NewEligibilityHandlerWithScorer creates a handler using the given scorer.
func NewEligibilityHandlerWithScorer(s Scorer) *EligibilityHandler {
	return &EligibilityHandler{
		scorer:    s,
		rowWriter: utils.NewCSVRowWriter(),
	}
}

// Handle processes one API Gateway request and returns the eligibility verdict
// as a JSON string.
func (h *EligibilityHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.RequestLogger(requestID(ctx, request))
	headers := corsHeaders("POST,OPTIONS")

	// Handle CORS preflight
	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	if request.HTTPMethod != http.MethodPost {
		return errorResponse(headers, http.StatusMethodNotAllowed, "Only POST is supported")
	}

	mediaType, _, err := mime.ParseMediaType(headerValue(request, "Content-Type"))
	if err != nil || mediaType != formContentType {
		return errorResponse(headers, http.StatusUnsupportedMediaType, "Content-Type must be "+formContentType)
	}

	body := request.Body
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			logger.Warn("Rejected request body", zap.Error(err))
			return errorResponse(headers, http.StatusBadRequest, "Request body is not valid base64")
		}
		body = string(decoded)
	}

	verdict, err := h.evaluate(ctx, logger, body)
	if err != nil {
		statusCode, message := errorStatus(err)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Eligibility evaluation failed", zap.Int("status", statusCode), zap.Error(err))
		} else {
			logger.Warn("Rejected eligibility request", zap.Int("status", statusCode), zap.Error(err))
		}
		return errorResponse(headers, statusCode, message)
	}

	return jsonResponse(headers, http.StatusOK, verdict.String())
}

// evaluate runs parse, encode, score and threshold for one request body.
func (h *EligibilityHandler) evaluate(ctx context.Context, logger *zap.Logger, body string) (models.Verdict, error) {
	features, err := utils.ParseFeatures(body)
	if err != nil {
		return "", err
	}

	row, err := h.rowWriter.Encode(features)
	if err != nil {
		return "", err
	}

	logger.Debug("Ready to send request",
		zap.Strings("features", features.Keys()),
		zap.ByteString("row", row))

	start := time.Now()
	score, err := h.scorer.Score(ctx, row)
	if err != nil {
		return "", err
	}

	verdict := models.EvaluateScore(score)
	logger.Info("Scored candidate",
		zap.String("endpoint", h.scorer.EndpointName()),
		zap.Int("features", features.Len()),
		zap.Float64("score", score),
		zap.Bool("eligible", verdict.IsEligible()),
		zap.Duration("elapsed", time.Since(start)))

	return verdict, nil
}

// errorStatus maps an evaluation error to an HTTP status and client message.
func errorStatus(err error) (int, string) {
	var convErr *models.ValueConversionError
	var invokeErr *models.EndpointInvocationError
	var respErr *models.ScoringResponseError

	switch {
	case errors.As(err, &convErr):
		return http.StatusBadRequest, convErr.Error()
	case errors.Is(err, models.ErrNoFeatures):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &invokeErr):
		if invokeErr.Throttled() {
			return http.StatusServiceUnavailable, "Scoring endpoint is throttling requests"
		}
		return http.StatusBadGateway, "Scoring endpoint invocation failed"
	case errors.As(err, &respErr):
		return http.StatusBadGateway, "Scoring endpoint returned an invalid score"
	default:
		return http.StatusInternalServerError, "Failed to evaluate eligibility"
	}
}
