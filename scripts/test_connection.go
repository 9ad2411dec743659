//go:build ignore
// +build ignore

// Checks that the configured SageMaker endpoint is reachable and scores a
// sample candidate. Run with: go run scripts/test_connection.go [form-body]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"income-eligibility/internal/config"
	"income-eligibility/internal/models"
	"income-eligibility/internal/services/scorer"
	"income-eligibility/internal/utils"
)

const sampleBody = "age=34&education_num=13&capital_gain=0&capital_loss=0&hours_per_week=40"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🔍 Testing SageMaker endpoint...\n")

	// Test 1: Check environment variables
	fmt.Println("1️⃣  Checking Environment Variables:")
	checkEnvVar("AWS_REGION")
	checkEnvVar("SAGEMAKER_ENDPOINT_NAME")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Test 2: Endpoint status
	fmt.Println("2️⃣  Checking Endpoint Status:")
	checker, err := scorer.NewStatusChecker(ctx, cfg)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	status, err := checker.EndpointStatus(ctx)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   ✅ %s: %s\n", cfg.EndpointName, status)
	fmt.Println()

	// Test 3: Score a sample candidate
	body := sampleBody
	if len(os.Args) > 1 {
		body = os.Args[1]
	}

	fmt.Println("3️⃣  Scoring Sample Candidate:")
	features, err := utils.ParseFeatures(body)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	row, err := utils.NewCSVRowWriter().Encode(features)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   📄 Row: %q\n", row)

	svc, err := scorer.NewService(ctx, cfg)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	score, err := svc.Score(ctx, row)
	if err != nil {
		fmt.Printf("   ❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   📊 Score: %v\n", score)
	fmt.Printf("   ✅ %s\n", models.EvaluateScore(score))
	fmt.Println()

	fmt.Println("✅ Connection tests complete!")
}

func checkEnvVar(name string) {
	if value := os.Getenv(name); value == "" {
		fmt.Printf("   ⚠️  %s: NOT SET (using default)\n", name)
	} else {
		fmt.Printf("   ✅ %s: %s\n", name, value)
	}
}
