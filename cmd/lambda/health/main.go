// Health Check Lambda entry point
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

	// Create handler
	handler := handlers.NewHealthHandler(context.Background(), cfg)

	// Start Lambda
	lambda.Start(handler.Handle)
}
