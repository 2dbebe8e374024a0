// Package registry holds the immutable weighted-category tables that drive
// dataset synthesis: procedures, insurers, departments, diagnosis codes,
// claim statuses and admission types, plus the static pools used by the
// provider reference generator.
package registry

import (
	"math"

	"github.com/healthcare-billing-synth/internal/domain"
)

// weightTolerance is the allowed floating-point drift when checking that a
// domain's weights sum to 1.0.
const weightTolerance = 1e-6

// Entry is one category with its sampling weight.
type Entry struct {
	Name   string
	Weight float64
}

// Domain is an ordered weighted-category table.
type Domain struct {
	Label   string
	Entries []Entry
}

// Names returns the category names in table order.
func (d Domain) Names() []string {
	names := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		names[i] = e.Name
	}
	return names
}

// Weights returns the sampling weights in table order.
func (d Domain) Weights() []float64 {
	weights := make([]float64, len(d.Entries))
	for i, e := range d.Entries {
		weights[i] = e.Weight
	}
	return weights
}

func (d Domain) validate() error {
	if len(d.Entries) == 0 {
		return domain.NewConfigurationError(d.Label, "empty category domain")
	}
	var sum float64
	for _, e := range d.Entries {
		sum += e.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return domain.NewConfigurationError(d.Label, "weights do not sum to 1.0")
	}
	return nil
}

// ProcedureParams are the cost-model parameters of one procedure.
type ProcedureParams struct {
	BaseCost float64
	Variance float64
}

// InsurerParams are the reimbursement parameters of one insurance provider.
type InsurerParams struct {
	CoverageRate float64
}

// Registry is the full attribute configuration for one synthesis run.
type Registry struct {
	Procedures      Domain
	ProcedureParams map[string]ProcedureParams
	Insurers        Domain
	InsurerParams   map[string]InsurerParams
	Departments     Domain
	Diagnoses       Domain
	ClaimStatuses   Domain
	AdmissionTypes  Domain

	// Provider reference pools, sampled uniformly.
	Specialties  []string
	FirstNames   []string
	LastNames    []string
	Institutions []string
	StateCodes   []string
}

// Validate checks every weighted domain and parameter table. A failure is a
// ConfigurationError or ParameterError and must abort the run before any
// record is generated.
func (r *Registry) Validate() error {
	domains := []Domain{
		r.Procedures, r.Insurers, r.Departments,
		r.Diagnoses, r.ClaimStatuses, r.AdmissionTypes,
	}
	for _, d := range domains {
		if err := d.validate(); err != nil {
			return err
		}
	}
	for _, e := range r.Procedures.Entries {
		params, ok := r.ProcedureParams[e.Name]
		if !ok {
			return domain.NewConfigurationError(r.Procedures.Label, "missing cost parameters for "+e.Name)
		}
		if params.Variance < 0 {
			return domain.NewParameterError("variance", "cost variance must be non-negative", params.Variance)
		}
	}
	for _, e := range r.Insurers.Entries {
		params, ok := r.InsurerParams[e.Name]
		if !ok {
			return domain.NewConfigurationError(r.Insurers.Label, "missing coverage parameters for "+e.Name)
		}
		if params.CoverageRate <= 0 || params.CoverageRate > 1 {
			return domain.NewParameterError("coverage_rate", "coverage rate must be in (0, 1]", params.CoverageRate)
		}
	}
	pools := map[string][]string{
		"specialties":  r.Specialties,
		"first_names":  r.FirstNames,
		"last_names":   r.LastNames,
		"institutions": r.Institutions,
		"state_codes":  r.StateCodes,
	}
	for label, pool := range pools {
		if len(pool) == 0 {
			return domain.NewConfigurationError(label, "empty category domain")
		}
	}
	return nil
}

// uniform builds a Domain with equal weights over the given names.
func uniform(label string, names []string) Domain {
	d := Domain{Label: label}
	w := 1.0 / float64(len(names))
	for _, n := range names {
		d.Entries = append(d.Entries, Entry{Name: n, Weight: w})
	}
	return d
}

// Default returns the standard attribute configuration. Weights and cost
// parameters mirror observed outpatient/inpatient billing mixes.
func Default() *Registry {
	return &Registry{
		Procedures: Domain{
			Label: "procedures",
			Entries: []Entry{
				{Name: "Emergency Room Visit", Weight: 0.15},
				{Name: "Routine Checkup", Weight: 0.25},
				{Name: "Blood Test", Weight: 0.20},
				{Name: "X-Ray", Weight: 0.12},
				{Name: "MRI Scan", Weight: 0.05},
				{Name: "CT Scan", Weight: 0.08},
				{Name: "Surgery - Minor", Weight: 0.04},
				{Name: "Surgery - Major", Weight: 0.02},
				{Name: "Physical Therapy", Weight: 0.09},
			},
		},
		ProcedureParams: map[string]ProcedureParams{
			"Emergency Room Visit": {BaseCost: 1200, Variance: 400},
			"Routine Checkup":      {BaseCost: 250, Variance: 50},
			"Blood Test":           {BaseCost: 150, Variance: 30},
			"X-Ray":                {BaseCost: 300, Variance: 75},
			"MRI Scan":             {BaseCost: 2500, Variance: 500},
			"CT Scan":              {BaseCost: 1800, Variance: 300},
			"Surgery - Minor":      {BaseCost: 5000, Variance: 1000},
			"Surgery - Major":      {BaseCost: 25000, Variance: 8000},
			"Physical Therapy":     {BaseCost: 180, Variance: 40},
		},
		Insurers: Domain{
			Label: "insurers",
			Entries: []Entry{
				{Name: "BlueCross BlueShield", Weight: 0.25},
				{Name: "Aetna", Weight: 0.20},
				{Name: "UnitedHealth", Weight: 0.22},
				{Name: "Cigna", Weight: 0.15},
				{Name: "Medicare", Weight: 0.10},
				{Name: "Medicaid", Weight: 0.08},
			},
		},
		InsurerParams: map[string]InsurerParams{
			"BlueCross BlueShield": {CoverageRate: 0.80},
			"Aetna":                {CoverageRate: 0.75},
			"UnitedHealth":         {CoverageRate: 0.82},
			"Cigna":                {CoverageRate: 0.78},
			"Medicare":             {CoverageRate: 0.85},
			"Medicaid":             {CoverageRate: 0.90},
		},
		Departments: uniform("departments", []string{
			"Emergency Medicine", "Internal Medicine", "Cardiology", "Orthopedics",
			"Radiology", "Surgery", "Pediatrics", "Neurology", "Oncology", "Psychiatry",
		}),
		Diagnoses: uniform("diagnoses", []string{
			"Z00.00", "I10", "E11.9", "M79.1", "R53.83", "K21.9",
			"F41.1", "M25.511", "N39.0", "R50.9", "H52.4", "J06.9",
		}),
		ClaimStatuses: Domain{
			Label: "claim_statuses",
			Entries: []Entry{
				{Name: string(domain.StatusPaid), Weight: 0.85},
				{Name: string(domain.StatusPending), Weight: 0.10},
				{Name: string(domain.StatusDenied), Weight: 0.05},
			},
		},
		AdmissionTypes: Domain{
			Label: "admission_types",
			Entries: []Entry{
				{Name: string(domain.AdmissionOutpatient), Weight: 0.70},
				{Name: string(domain.AdmissionInpatient), Weight: 0.20},
				{Name: string(domain.AdmissionEmergency), Weight: 0.10},
			},
		},
		Specialties: []string{
			"Family Medicine", "Internal Medicine", "Emergency Medicine", "Cardiology",
			"Orthopedic Surgery", "Radiology", "Anesthesiology", "Pediatrics",
			"Neurology", "Oncology", "Psychiatry", "Dermatology",
		},
		FirstNames: []string{
			"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
			"Michael", "Linda", "William", "Elizabeth", "David", "Barbara",
			"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
			"Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
			"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
			"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
			"Nguyen", "Patel", "Kim", "Chen", "Murphy", "Rivera",
		},
		Institutions: []string{
			"Lakeview", "Riverside", "St. Jude", "Mercy", "Summit",
			"Northgate", "Cedar Hill", "Pinecrest", "Harborview", "Fairfield",
			"Oakwood", "Westbrook", "Granite Valley", "Silver Lake", "Maplewood",
			"Crestline",
		},
		StateCodes: []string{
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
			"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
			"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
			"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
			"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		},
	}
}
