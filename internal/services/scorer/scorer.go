// Package scorer invokes the SageMaker endpoint hosting the income model.
package scorer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	appConfig "income-eligibility/internal/config"
	"income-eligibility/internal/models"
	"income-eligibility/internal/utils"
)

// ContentTypeCSV is the payload type the model container accepts.
const ContentTypeCSV = "text/csv"

var errEmptyResponse = errors.New("empty response body")

// InvokeEndpointAPI is the subset of the SageMaker runtime client used here.
type InvokeEndpointAPI interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

// Service scores CSV feature rows against a single endpoint.
type Service struct {
	client       InvokeEndpointAPI
	endpointName string
}

// LoadAWSConfig loads the default AWS configuration for region.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

// NewService creates a scorer backed by a real SageMaker runtime client.
func NewService(ctx context.Context, cfg *appConfig.Config) (*Service, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}
	return New(sagemakerruntime.NewFromConfig(awsCfg), cfg.EndpointName), nil
}

// New creates a scorer using the given client.
func New(client InvokeEndpointAPI, endpointName string) *Service {
	return &Service{client: client, endpointName: endpointName}
}

// EndpointName returns the endpoint this service invokes.
func (s *Service) EndpointName() string {
	return s.endpointName
}

// Score sends one CSV row to the endpoint and returns the model's score.
func (s *Service) Score(ctx context.Context, row []byte) (float64, error) {
	start := time.Now()

	output, err := s.client.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(s.endpointName),
		ContentType:  aws.String(ContentTypeCSV),
		Body:         row,
	})
	if err != nil {
		invokeErr := &models.EndpointInvocationError{Endpoint: s.endpointName, Err: err}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			invokeErr.Code = apiErr.ErrorCode()
		}
		utils.GetLogger().Error("SageMaker invocation failed",
			zap.String("endpoint", s.endpointName),
			zap.String("code", invokeErr.Code),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return 0, invokeErr
	}

	score, err := ParseScore(output.Body)
	if err != nil {
		return 0, err
	}

	utils.GetLogger().Debug("SageMaker invocation complete",
		zap.String("endpoint", s.endpointName),
		zap.String("invokedVariant", aws.ToString(output.InvokedProductionVariant)),
		zap.Float64("score", score),
		zap.Duration("elapsed", time.Since(start)),
	)

	return score, nil
}

// ParseScore reads a single finite float literal from an endpoint response.
func ParseScore(body []byte) (float64, error) {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return 0, &models.ScoringResponseError{Err: errEmptyResponse}
	}

	score, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &models.ScoringResponseError{Body: truncate(text, 64), Err: err}
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, &models.ScoringResponseError{Body: text, Err: strconv.ErrRange}
	}
	return score, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
