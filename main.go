package main

import (
	"context"
	"log"

	"affiliate-server/internal/bootstrap"
	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	// Initialize dependencies
	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}

	// Create and set up the server
	srv := server.New(cfg, deps, logger)
	srv.Setup()

	// Start serving requests and background jobs
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	// Block until shutdown signal
	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %s", err)
	}
}
