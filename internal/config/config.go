// Package config provides configuration management for the billing dataset
// synthesizer.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/healthcare-billing-synth/internal/domain"
)

// Manager loads and validates the application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("BILLING_SYNTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	// Unmarshal configuration into struct
	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Generator defaults; the fixed seed keeps fixtures reproducible
	viper.SetDefault("generator.claim_count", 50000)
	viper.SetDefault("generator.provider_count", 500)
	viper.SetDefault("generator.seed", 42)
	viper.SetDefault("generator.reference_date", "")

	// Output defaults
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.claims_file", "healthcare_billing_data.csv")
	viper.SetDefault("output.providers_file", "provider_reference_data.csv")
	viper.SetDefault("output.sqlite.enabled", false)
	viper.SetDefault("output.sqlite.path", "healthcare_billing.db")
	viper.SetDefault("output.postgres.enabled", false)
	viper.SetDefault("output.postgres.url", "")
	viper.SetDefault("output.postgres.max_conns", 4)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Generator.ClaimCount <= 0 {
		return domain.NewParameterError("generator.claim_count", "record count must be positive", config.Generator.ClaimCount)
	}
	if config.Generator.ProviderCount <= 0 {
		return domain.NewParameterError("generator.provider_count", "record count must be positive", config.Generator.ProviderCount)
	}
	if config.Generator.ReferenceDate != "" {
		if _, err := time.Parse(domain.ServiceDateLayout, config.Generator.ReferenceDate); err != nil {
			return domain.NewParameterError("generator.reference_date", "must be a YYYY-MM-DD date", config.Generator.ReferenceDate)
		}
	}

	if config.Output.ClaimsFile == "" {
		return domain.NewParameterError("output.claims_file", "claims file name is required", config.Output.ClaimsFile)
	}
	if config.Output.ProvidersFile == "" {
		return domain.NewParameterError("output.providers_file", "providers file name is required", config.Output.ProvidersFile)
	}
	if config.Output.Postgres.Enabled && config.Output.Postgres.URL == "" {
		return domain.NewParameterError("output.postgres.url", "postgres URL is required when the sink is enabled", config.Output.Postgres.URL)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// ReferenceTime resolves the end of the trailing service-date window: the
// configured reference date when set, otherwise the current time.
func (m *Manager) ReferenceTime() time.Time {
	if m.config.Generator.ReferenceDate == "" {
		return time.Now()
	}
	// Validate() already checked the format.
	t, _ := time.Parse(domain.ServiceDateLayout, m.config.Generator.ReferenceDate)
	return t
}
