// Package main provides a local HTTP server for development and testing.
// It serves the same handlers the Lambda functions run, so the eligibility
// flow can be exercised against a real SageMaker endpoint without deploying.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"income-eligibility/internal/config"
	"income-eligibility/internal/handlers"
	"income-eligibility/internal/utils"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eligibility, err := handlers.NewEligibilityHandler(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create eligibility handler", utils.Error(err))
	}
	health := handlers.NewHealthHandler(ctx, cfg)

	// Setup routes
	mux := http.NewServeMux()
	mux.Handle("/health", handlers.HTTPAdapter(health.Handle))
	mux.Handle("/api/health", handlers.HTTPAdapter(health.Handle))
	mux.Handle("/", handlers.HTTPAdapter(eligibility.Handle))

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Server shutdown failed", utils.Error(err))
		}
	}()

	logger.Info("Income eligibility server listening",
		utils.String("addr", addr),
		utils.String("endpoint", cfg.EndpointName),
		utils.String("health", fmt.Sprintf("http://localhost:%d/health", cfg.Port)))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed", utils.Error(err))
	}
	logger.Info("Server stopped")
}
