package export

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/domain"
)

// PostgresLoader bulk-loads generated tables into a Postgres warehouse via
// COPY. It is the high-volume sink; row-at-a-time inserts are too slow for
// the default 50k-claim runs.
type PostgresLoader struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

// NewPostgresLoader creates a connection pool, verifies connectivity and
// bootstraps the warehouse schema.
func NewPostgresLoader(ctx context.Context, cfg domain.PostgresConfig, logger *logrus.Logger) (*PostgresLoader, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	l := &PostgresLoader{pool: pool, log: logger}
	if err := l.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"max_conns": poolConfig.MaxConns,
	}).Info("Postgres connection pool established")
	return l, nil
}

func (l *PostgresLoader) ensureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// RegisterRun records the run metadata row.
func (l *PostgresLoader) RegisterRun(ctx context.Context, runID string, claimCount, providerCount int) error {
	_, err := l.pool.Exec(ctx,
		"INSERT INTO runs (run_id, claim_count, provider_count) VALUES ($1, $2, $3)",
		runID, claimCount, providerCount,
	)
	if err != nil {
		return domain.NewExportError("postgres", "runs", err)
	}
	return nil
}

// LoadClaims bulk-loads the claim table via COPY.
func (l *PostgresLoader) LoadClaims(ctx context.Context, runID string, claims []domain.ClaimRecord) error {
	columns := append([]string{"run_id"}, ClaimColumns...)
	copied, err := l.pool.CopyFrom(ctx,
		pgx.Identifier{"billing_claims"},
		columns,
		pgx.CopyFromSlice(len(claims), func(i int) ([]interface{}, error) {
			c := claims[i]
			return []interface{}{
				runID, c.ClaimID, c.PatientID, c.PatientAge, c.ServiceDate,
				c.ProcedureName, c.ProcedureCode, c.PrimaryDiagnosis, c.Department,
				c.ProviderID, c.InsuranceProvider,
				c.TotalBilledAmount, c.InsurancePaidAmount, c.PatientResponsibility,
				string(c.ClaimStatus), string(c.AdmissionType), c.LengthOfStay,
				c.PaymentRate, c.CostPerDay, c.MonthYear,
			}, nil
		}),
	)
	if err != nil {
		return domain.NewExportError("postgres", "billing_claims", err)
	}

	l.log.WithFields(logrus.Fields{
		"run_id": runID,
		"rows":   copied,
	}).Info("Loaded claim table into Postgres")
	return nil
}

// LoadProviders bulk-loads the provider reference table via COPY.
func (l *PostgresLoader) LoadProviders(ctx context.Context, runID string, providers []domain.ProviderRecord) error {
	columns := append([]string{"run_id"}, ProviderColumns...)
	copied, err := l.pool.CopyFrom(ctx,
		pgx.Identifier{"provider_reference"},
		columns,
		pgx.CopyFromSlice(len(providers), func(i int) ([]interface{}, error) {
			p := providers[i]
			return []interface{}{
				runID, p.ProviderID, p.ProviderName, p.Specialty, p.YearsExperience,
				p.MedicalSchool, p.BoardCertified, p.HospitalAffiliation,
				p.LicenseState, p.NPINumber,
			}, nil
		}),
	)
	if err != nil {
		return domain.NewExportError("postgres", "provider_reference", err)
	}

	l.log.WithFields(logrus.Fields{
		"run_id": runID,
		"rows":   copied,
	}).Info("Loaded provider table into Postgres")
	return nil
}

// Close closes the connection pool.
func (l *PostgresLoader) Close() {
	if l.pool != nil {
		l.pool.Close()
	}
}
