// Package export persists generated tables to their output destinations:
// CSV files for the reporting collaborators, and optional SQLite / Postgres
// sinks for analytics work.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/healthcare-billing-synth/internal/domain"
)

// ClaimColumns is the exported claim table column set, in order: the raw
// record fields followed by the three derived columns.
var ClaimColumns = []string{
	"claim_id", "patient_id", "patient_age", "service_date",
	"procedure_name", "procedure_code", "primary_diagnosis", "department",
	"provider_id", "insurance_provider",
	"total_billed_amount", "insurance_paid_amount", "patient_responsibility",
	"claim_status", "admission_type", "length_of_stay",
	"payment_rate", "cost_per_day", "month_year",
}

// ProviderColumns is the exported provider table column set, in order.
var ProviderColumns = []string{
	"provider_id", "provider_name", "specialty", "years_experience",
	"medical_school", "board_certified", "hospital_affiliation",
	"license_state", "npi_number",
}

// money formats a monetary value rounded to 2 decimal places.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ratio formats a derived float with the shortest representation that
// parses back to the same value, so recomputation from the persisted table
// is exact.
func ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// claimRow renders one claim in ClaimColumns order.
func claimRow(c domain.ClaimRecord) []string {
	return []string{
		c.ClaimID,
		c.PatientID,
		strconv.Itoa(c.PatientAge),
		c.ServiceDate.Format(domain.ServiceDateLayout),
		c.ProcedureName,
		c.ProcedureCode,
		c.PrimaryDiagnosis,
		c.Department,
		c.ProviderID,
		c.InsuranceProvider,
		money(c.TotalBilledAmount),
		money(c.InsurancePaidAmount),
		money(c.PatientResponsibility),
		string(c.ClaimStatus),
		string(c.AdmissionType),
		strconv.Itoa(c.LengthOfStay),
		ratio(c.PaymentRate),
		ratio(c.CostPerDay),
		c.MonthYear,
	}
}

// providerRow renders one provider in ProviderColumns order.
func providerRow(p domain.ProviderRecord) []string {
	return []string{
		p.ProviderID,
		p.ProviderName,
		p.Specialty,
		strconv.Itoa(p.YearsExperience),
		p.MedicalSchool,
		strconv.FormatBool(p.BoardCertified),
		p.HospitalAffiliation,
		p.LicenseState,
		p.NPINumber,
	}
}

// WriteClaimsCSV writes the claim table with a header row, one record per
// row, monetary values rounded to cents.
func WriteClaimsCSV(path string, claims []domain.ClaimRecord) error {
	rows := make([][]string, 0, len(claims)+1)
	rows = append(rows, ClaimColumns)
	for _, c := range claims {
		rows = append(rows, claimRow(c))
	}
	if err := writeCSV(path, rows); err != nil {
		return domain.NewExportError("csv", "claims", err)
	}
	return nil
}

// WriteProvidersCSV writes the provider reference table with a header row.
func WriteProvidersCSV(path string, providers []domain.ProviderRecord) error {
	rows := make([][]string, 0, len(providers)+1)
	rows = append(rows, ProviderColumns)
	for _, p := range providers {
		rows = append(rows, providerRow(p))
	}
	if err := writeCSV(path, rows); err != nil {
		return domain.NewExportError("csv", "providers", err)
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
