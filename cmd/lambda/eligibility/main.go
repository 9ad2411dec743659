// Eligibility Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"income-eligibility/internal/config"
	"income-eligibility/internal/handlers"
	"income-eligibility/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	// The SageMaker client is built once per container and shared by every invocation
	handler, err := handlers.NewEligibilityHandler(context.Background(), cfg)
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	utils.GetLogger().Info("Eligibility function starting",
		utils.String("endpoint", cfg.EndpointName),
		utils.String("stage", cfg.Stage))

	// Start Lambda
	lambda.Start(handler.Handle)
}
