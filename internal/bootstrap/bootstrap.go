package bootstrap

import (
	"context"
	"fmt"

	"affiliate-server/internal/auth"
	"affiliate-server/internal/config"
	"affiliate-server/internal/jobs/scheduler"
	"affiliate-server/internal/jobs/scheduler/jobs"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"
	"affiliate-server/internal/wallet"

	affiliateHandler "affiliate-server/internal/affiliate/handler"
	affiliateProcessor "affiliate-server/internal/affiliate/processor"
	webhookHandler "affiliate-server/internal/webhooks/handler"
	webhookProcessor "affiliate-server/internal/webhooks/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger
	Auth   auth.Auth

	// Handlers
	AffiliateHandler affiliateHandler.Handler
	WebhookHandler   webhookHandler.Handler

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	dataStore, err := store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &dataStore

	deps.Auth = auth.New(cfg.Auth.JWTSecret, logger)

	// Initialize wallet service and affiliate processor
	walletService := wallet.New(deps.Store, logger)
	affiliateProc := affiliateProcessor.New(deps.Store, walletService, logger, cfg.Scheduler.RewardMaturationBatch)
	deps.AffiliateHandler = affiliateHandler.New(affiliateProc, walletService, logger)

	// Initialize Stripe webhook processor and handler
	webhookProc := webhookProcessor.New(
		cfg.Services.StripeSecretKey,
		cfg.Services.StripeWebhookSecret,
		&affiliateProc,
		logger,
	)
	deps.WebhookHandler = webhookHandler.New(webhookProc, logger)

	// Initialize scheduler with the reward maturation sweep
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewRewardMaturationJob(&affiliateProc, logger, cfg.Scheduler.RewardMaturationInterval))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close store", err)
		}
	}
}
