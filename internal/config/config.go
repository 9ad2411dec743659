// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEndpointName is the SageMaker endpoint the income model is deployed to.
const DefaultEndpointName = "income-model"

// Config holds all configuration values for the application.
type Config struct {
	// AWS
	AWSRegion    string
	EndpointName string

	// Application
	Stage          string
	LogLevel       string
	ServiceVersion string

	// Local server
	Port int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// AWS
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		EndpointName: getEnv("SAGEMAKER_ENDPOINT_NAME", DefaultEndpointName),

		// Application
		Stage:          getEnv("STAGE", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),

		Port: getEnvInt("PORT", 8080),
	}

	return cfg, nil
}

// IsLambda reports whether the process is running inside AWS Lambda.
func IsLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
