package domain

import (
	"path/filepath"
)

// Config represents the main application configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GeneratorConfig controls the synthesis run. Seed fixes both the claim and
// provider RNG streams; ReferenceDate (YYYY-MM-DD, optional) pins the end of
// the trailing 2-year service window for reproducible fixtures.
type GeneratorConfig struct {
	ClaimCount    int    `mapstructure:"claim_count"`
	ProviderCount int    `mapstructure:"provider_count"`
	Seed          int64  `mapstructure:"seed"`
	ReferenceDate string `mapstructure:"reference_date"`
}

// OutputConfig represents output table destinations
type OutputConfig struct {
	Dir           string         `mapstructure:"dir"`
	ClaimsFile    string         `mapstructure:"claims_file"`
	ProvidersFile string         `mapstructure:"providers_file"`
	SQLite        SQLiteConfig   `mapstructure:"sqlite"`
	Postgres      PostgresConfig `mapstructure:"postgres"`
}

// ClaimsPath resolves the claims CSV location under Dir.
func (o OutputConfig) ClaimsPath() string {
	return filepath.Join(o.Dir, o.ClaimsFile)
}

// ProvidersPath resolves the providers CSV location under Dir.
func (o OutputConfig) ProvidersPath() string {
	return filepath.Join(o.Dir, o.ProvidersFile)
}

// SQLitePath resolves the SQLite database location under Dir.
func (o OutputConfig) SQLitePath() string {
	return filepath.Join(o.Dir, o.SQLite.Path)
}

// SQLiteConfig represents the optional SQLite sink
type SQLiteConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// PostgresConfig represents the optional Postgres bulk-load sink
type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
