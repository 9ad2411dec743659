package scorer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"

	appConfig "income-eligibility/internal/config"
)

// StatusInService is the endpoint status reported when the model is serving.
const StatusInService = string(types.EndpointStatusInService)

// DescribeEndpointAPI is the subset of the SageMaker control-plane client used here.
type DescribeEndpointAPI interface {
	DescribeEndpoint(ctx context.Context, params *sagemaker.DescribeEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeEndpointOutput, error)
}

// StatusChecker reports the deployment status of the scoring endpoint.
type StatusChecker struct {
	client       DescribeEndpointAPI
	endpointName string
}

// NewStatusChecker creates a checker backed by a real SageMaker client.
func NewStatusChecker(ctx context.Context, cfg *appConfig.Config) (*StatusChecker, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}
	return NewStatusCheckerWithClient(sagemaker.NewFromConfig(awsCfg), cfg.EndpointName), nil
}

// NewStatusCheckerWithClient creates a checker using the given client.
func NewStatusCheckerWithClient(client DescribeEndpointAPI, endpointName string) *StatusChecker {
	return &StatusChecker{client: client, endpointName: endpointName}
}

// EndpointName returns the endpoint being checked.
func (c *StatusChecker) EndpointName() string {
	return c.endpointName
}

// EndpointStatus returns the endpoint's current status, e.g. "InService".
func (c *StatusChecker) EndpointStatus(ctx context.Context) (string, error) {
	output, err := c.client.DescribeEndpoint(ctx, &sagemaker.DescribeEndpointInput{
		EndpointName: aws.String(c.endpointName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe endpoint %s: %w", c.endpointName, err)
	}
	return string(output.EndpointStatus), nil
}
