// Package main is the entry point for the healthcare billing dataset
// synthesizer. One invocation performs one deterministic batch run: generate
// the claim table, inject anomalies, compute derived columns, generate the
// provider reference table, and persist both tables to the configured
// destinations.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/config"
	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/export"
	"github.com/healthcare-billing-synth/internal/registry"
	"github.com/healthcare-billing-synth/internal/service"
)

func main() {
	manager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := manager.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg := manager.GetConfig()

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)

	// Sink I/O can be interrupted; generation itself is a short pure batch.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := registry.Default()
	if err := reg.Validate(); err != nil {
		logger.WithError(err).Fatal("Attribute registry rejected")
	}

	generator := service.NewGenerator(reg, logger)
	dataset, err := generator.Run(cfg.Generator, manager.ReferenceTime())
	if err != nil {
		logger.WithError(err).Fatal("Synthesis run failed")
	}

	service.Summarize(dataset.Claims).Log(logger)

	claimsPath := cfg.Output.ClaimsPath()
	if err := export.WriteClaimsCSV(claimsPath, dataset.Claims); err != nil {
		logger.WithError(err).Fatal("Failed to write claims CSV")
	}
	logger.WithFields(logrus.Fields{
		"path":    claimsPath,
		"records": len(dataset.Claims),
	}).Info("Saved claim table")

	providersPath := cfg.Output.ProvidersPath()
	if err := export.WriteProvidersCSV(providersPath, dataset.Providers); err != nil {
		logger.WithError(err).Fatal("Failed to write providers CSV")
	}
	logger.WithFields(logrus.Fields{
		"path":    providersPath,
		"records": len(dataset.Providers),
	}).Info("Saved provider table")

	if cfg.Output.SQLite.Enabled {
		if err := writeSQLite(ctx, cfg, dataset); err != nil {
			logger.WithError(err).Fatal("SQLite sink failed")
		}
		logger.WithField("path", cfg.Output.SQLitePath()).Info("Saved dataset to SQLite")
	}

	if cfg.Output.Postgres.Enabled {
		if err := loadPostgres(ctx, cfg, dataset, logger); err != nil {
			logger.WithError(err).Fatal("Postgres sink failed")
		}
	}

	logger.WithField("run_id", dataset.RunID).Info("Healthcare billing data generated successfully")
}

func writeSQLite(ctx context.Context, cfg *domain.Config, dataset *service.Dataset) error {
	sink, err := export.NewSQLiteSink(cfg.Output.SQLitePath())
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := sink.RegisterRun(ctx, dataset.RunID, len(dataset.Claims), len(dataset.Providers)); err != nil {
		return err
	}
	if err := sink.WriteClaims(ctx, dataset.RunID, dataset.Claims); err != nil {
		return err
	}
	return sink.WriteProviders(ctx, dataset.RunID, dataset.Providers)
}

func loadPostgres(ctx context.Context, cfg *domain.Config, dataset *service.Dataset, logger *logrus.Logger) error {
	loader, err := export.NewPostgresLoader(ctx, cfg.Output.Postgres, logger)
	if err != nil {
		return err
	}
	defer loader.Close()

	if err := loader.RegisterRun(ctx, dataset.RunID, len(dataset.Claims), len(dataset.Providers)); err != nil {
		return err
	}
	if err := loader.LoadClaims(ctx, dataset.RunID, dataset.Claims); err != nil {
		return err
	}
	return loader.LoadProviders(ctx, dataset.RunID, dataset.Providers)
}

func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
