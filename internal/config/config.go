// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"wishfund/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort   string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	DB           db.Config
	Contribution ContributionConfig
}

// ContributionConfig bounds a single contribution and its caller-side retries.
type ContributionConfig struct {
	// Timeout caps the whole contribution transaction, lock wait included.
	Timeout    time.Duration `envconfig:"CONTRIBUTION_TIMEOUT" default:"10s"`
	MaxRetries int           `envconfig:"CONTRIBUTION_MAX_RETRIES" default:"2"`
	RetryBase  time.Duration `envconfig:"CONTRIBUTION_RETRY_BASE" default:"100ms"`
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.DB.LockTimeout <= 0 {
		return nil, fmt.Errorf("invalid DB_LOCK_TIMEOUT: must be positive, got %s", cfg.DB.LockTimeout)
	}
	if cfg.Contribution.Timeout <= cfg.DB.LockTimeout {
		return nil, fmt.Errorf("invalid CONTRIBUTION_TIMEOUT: %s must exceed DB_LOCK_TIMEOUT %s",
			cfg.Contribution.Timeout, cfg.DB.LockTimeout)
	}
	if cfg.Contribution.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid CONTRIBUTION_MAX_RETRIES: %d", cfg.Contribution.MaxRetries)
	}
	return &cfg, nil
}
