package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/healthcare-billing-synth/internal/domain"
)

// sqlDialect selects the placeholder style and DDL for a database/sql sink.
type sqlDialect int

const (
	dialectSQLite sqlDialect = iota
	dialectPostgres
)

// placeholders renders the parameter list for one INSERT: "?, ?, ..." for
// SQLite, "$1, $2, ..." for Postgres.
func (d sqlDialect) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if d == dialectPostgres {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

func (d sqlDialect) schema() string {
	if d == dialectPostgres {
		return postgresSchema
	}
	return sqliteSchema
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		claim_count INTEGER NOT NULL,
		provider_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS billing_claims (
		run_id TEXT NOT NULL,
		claim_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		patient_age INTEGER NOT NULL,
		service_date TEXT NOT NULL,
		procedure_name TEXT NOT NULL,
		procedure_code TEXT NOT NULL,
		primary_diagnosis TEXT NOT NULL,
		department TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		insurance_provider TEXT NOT NULL,
		total_billed_amount REAL NOT NULL,
		insurance_paid_amount REAL NOT NULL,
		patient_responsibility REAL NOT NULL,
		claim_status TEXT NOT NULL,
		admission_type TEXT NOT NULL,
		length_of_stay INTEGER NOT NULL,
		payment_rate REAL NOT NULL,
		cost_per_day REAL NOT NULL,
		month_year TEXT NOT NULL,
		PRIMARY KEY (run_id, claim_id)
	);

	CREATE TABLE IF NOT EXISTS provider_reference (
		run_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		provider_name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		years_experience INTEGER NOT NULL,
		medical_school TEXT NOT NULL,
		board_certified INTEGER NOT NULL,
		hospital_affiliation TEXT NOT NULL,
		license_state TEXT NOT NULL,
		npi_number TEXT NOT NULL,
		PRIMARY KEY (run_id, provider_id)
	);

	CREATE INDEX IF NOT EXISTS idx_claims_month_year ON billing_claims(month_year);
	CREATE INDEX IF NOT EXISTS idx_claims_insurer ON billing_claims(insurance_provider);
	CREATE INDEX IF NOT EXISTS idx_claims_procedure ON billing_claims(procedure_name);
`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		claim_count INTEGER NOT NULL,
		provider_count INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS billing_claims (
		run_id TEXT NOT NULL,
		claim_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		patient_age INTEGER NOT NULL,
		service_date DATE NOT NULL,
		procedure_name TEXT NOT NULL,
		procedure_code TEXT NOT NULL,
		primary_diagnosis TEXT NOT NULL,
		department TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		insurance_provider TEXT NOT NULL,
		total_billed_amount DOUBLE PRECISION NOT NULL,
		insurance_paid_amount DOUBLE PRECISION NOT NULL,
		patient_responsibility DOUBLE PRECISION NOT NULL,
		claim_status TEXT NOT NULL,
		admission_type TEXT NOT NULL,
		length_of_stay INTEGER NOT NULL,
		payment_rate DOUBLE PRECISION NOT NULL,
		cost_per_day DOUBLE PRECISION NOT NULL,
		month_year TEXT NOT NULL,
		PRIMARY KEY (run_id, claim_id)
	);

	CREATE TABLE IF NOT EXISTS provider_reference (
		run_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		provider_name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		years_experience INTEGER NOT NULL,
		medical_school TEXT NOT NULL,
		board_certified BOOLEAN NOT NULL,
		hospital_affiliation TEXT NOT NULL,
		license_state TEXT NOT NULL,
		npi_number TEXT NOT NULL,
		PRIMARY KEY (run_id, provider_id)
	);

	CREATE INDEX IF NOT EXISTS idx_claims_month_year ON billing_claims(month_year);
	CREATE INDEX IF NOT EXISTS idx_claims_insurer ON billing_claims(insurance_provider);
	CREATE INDEX IF NOT EXISTS idx_claims_procedure ON billing_claims(procedure_name);
`

// SQLSink writes generated tables through database/sql. The embedded SQLite
// sink and the pq-backed Postgres sink share this implementation; only the
// placeholder style and DDL differ per dialect.
type SQLSink struct {
	db      *sql.DB
	dialect sqlDialect
}

// newSinkWithDB wraps an existing connection; used by tests.
func newSinkWithDB(db *sql.DB, dialect sqlDialect) *SQLSink {
	return &SQLSink{db: db, dialect: dialect}
}

// RegisterRun records the run metadata row.
func (s *SQLSink) RegisterRun(ctx context.Context, runID string, claimCount, providerCount int) error {
	query := fmt.Sprintf(
		"INSERT INTO runs (run_id, claim_count, provider_count, created_at) VALUES (%s)",
		s.dialect.placeholders(4),
	)
	_, err := s.db.ExecContext(ctx, query, runID, claimCount, providerCount, time.Now().UTC())
	if err != nil {
		return domain.NewExportError(s.sinkName(), "runs", err)
	}
	return nil
}

// WriteClaims inserts the claim table inside a single transaction.
func (s *SQLSink) WriteClaims(ctx context.Context, runID string, claims []domain.ClaimRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewExportError(s.sinkName(), "billing_claims", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO billing_claims (
			run_id, claim_id, patient_id, patient_age, service_date,
			procedure_name, procedure_code, primary_diagnosis, department,
			provider_id, insurance_provider,
			total_billed_amount, insurance_paid_amount, patient_responsibility,
			claim_status, admission_type, length_of_stay,
			payment_rate, cost_per_day, month_year
		) VALUES (%s)
	`, s.dialect.placeholders(20))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return domain.NewExportError(s.sinkName(), "billing_claims", err)
	}
	defer stmt.Close()

	for _, c := range claims {
		if _, err := stmt.ExecContext(ctx,
			runID, c.ClaimID, c.PatientID, c.PatientAge,
			c.ServiceDate.Format(domain.ServiceDateLayout),
			c.ProcedureName, c.ProcedureCode, c.PrimaryDiagnosis, c.Department,
			c.ProviderID, c.InsuranceProvider,
			c.TotalBilledAmount, c.InsurancePaidAmount, c.PatientResponsibility,
			string(c.ClaimStatus), string(c.AdmissionType), c.LengthOfStay,
			c.PaymentRate, c.CostPerDay, c.MonthYear,
		); err != nil {
			tx.Rollback()
			return domain.NewExportError(s.sinkName(), "billing_claims", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewExportError(s.sinkName(), "billing_claims", err)
	}
	return nil
}

// WriteProviders inserts the provider reference table inside a single
// transaction.
func (s *SQLSink) WriteProviders(ctx context.Context, runID string, providers []domain.ProviderRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewExportError(s.sinkName(), "provider_reference", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO provider_reference (
			run_id, provider_id, provider_name, specialty, years_experience,
			medical_school, board_certified, hospital_affiliation,
			license_state, npi_number
		) VALUES (%s)
	`, s.dialect.placeholders(10))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return domain.NewExportError(s.sinkName(), "provider_reference", err)
	}
	defer stmt.Close()

	for _, p := range providers {
		if _, err := stmt.ExecContext(ctx,
			runID, p.ProviderID, p.ProviderName, p.Specialty, p.YearsExperience,
			p.MedicalSchool, p.BoardCertified, p.HospitalAffiliation,
			p.LicenseState, p.NPINumber,
		); err != nil {
			tx.Rollback()
			return domain.NewExportError(s.sinkName(), "provider_reference", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewExportError(s.sinkName(), "provider_reference", err)
	}
	return nil
}

// Close closes the sink and releases resources.
func (s *SQLSink) Close() error {
	return s.db.Close()
}

func (s *SQLSink) sinkName() string {
	if s.dialect == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}
