package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Services  ServicesConfig
	Scheduler SchedulerConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	WebAppURI           string
}

// SchedulerConfig holds background job configuration
type SchedulerConfig struct {
	RewardMaturationInterval time.Duration
	RewardMaturationBatch    int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Scheduler configuration
	maturationInterval := getEnvWithDefault("REWARD_MATURATION_INTERVAL", "1h")
	cfg.Scheduler.RewardMaturationInterval, err = time.ParseDuration(maturationInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REWARD_MATURATION_INTERVAL: %w", err)
	}

	maturationBatch := getEnvWithDefault("REWARD_MATURATION_BATCH", "500")
	cfg.Scheduler.RewardMaturationBatch, err = strconv.Atoi(maturationBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REWARD_MATURATION_BATCH: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
