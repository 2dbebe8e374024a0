package domain

import (
	"time"
)

// Core Enums and Types

// ClaimStatus represents the adjudication state of a billing claim
type ClaimStatus string

const (
	StatusPaid    ClaimStatus = "Paid"
	StatusPending ClaimStatus = "Pending"
	StatusDenied  ClaimStatus = "Denied"
)

// AdmissionType represents the care setting of a claim
type AdmissionType string

const (
	AdmissionOutpatient AdmissionType = "Outpatient"
	AdmissionInpatient  AdmissionType = "Inpatient"
	AdmissionEmergency  AdmissionType = "Emergency"
)

// AnomalyArchetype identifies one of the four injected anomaly patterns
type AnomalyArchetype string

const (
	AnomalyBillingError   AnomalyArchetype = "billing_error"
	AnomalyDuplicateClaim AnomalyArchetype = "duplicate_claim"
	AnomalyUnusualCost    AnomalyArchetype = "unusual_cost"
	AnomalyFraudIndicator AnomalyArchetype = "fraud_indicator"
)

// ClaimRecord is one synthesized billing event. The monetary fields hold
// values already rounded to cents; PaymentRate, CostPerDay and MonthYear are
// derived columns filled in after anomaly injection.
type ClaimRecord struct {
	ClaimID               string        `json:"claim_id"`
	PatientID             string        `json:"patient_id"`
	PatientAge            int           `json:"patient_age"`
	ServiceDate           time.Time     `json:"service_date"`
	ProcedureName         string        `json:"procedure_name"`
	ProcedureCode         string        `json:"procedure_code"`
	PrimaryDiagnosis      string        `json:"primary_diagnosis"`
	Department            string        `json:"department"`
	ProviderID            string        `json:"provider_id"`
	InsuranceProvider     string        `json:"insurance_provider"`
	TotalBilledAmount     float64       `json:"total_billed_amount"`
	InsurancePaidAmount   float64       `json:"insurance_paid_amount"`
	PatientResponsibility float64       `json:"patient_responsibility"`
	ClaimStatus           ClaimStatus   `json:"claim_status"`
	AdmissionType         AdmissionType `json:"admission_type"`
	LengthOfStay          int           `json:"length_of_stay"`

	// Derived fields
	PaymentRate float64 `json:"payment_rate"`
	CostPerDay  float64 `json:"cost_per_day"`
	MonthYear   string  `json:"month_year"`
}

// ProviderRecord is one entry in the provider reference table. The table is
// generated independently of the claim table; ProviderID values here are not
// guaranteed to appear in any claim.
type ProviderRecord struct {
	ProviderID          string `json:"provider_id"`
	ProviderName        string `json:"provider_name"`
	Specialty           string `json:"specialty"`
	YearsExperience     int    `json:"years_experience"`
	MedicalSchool       string `json:"medical_school"`
	BoardCertified      bool   `json:"board_certified"`
	HospitalAffiliation string `json:"hospital_affiliation"`
	LicenseState        string `json:"license_state"`
	NPINumber           string `json:"npi_number"`
}

// ServiceDateLayout is the wire format for service dates in exported tables.
const ServiceDateLayout = "2006-01-02"

// MonthYearLayout is the wire format for the month_year derived column.
const MonthYearLayout = "2006-01"
