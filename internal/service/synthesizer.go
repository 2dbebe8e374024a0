package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/registry"
	"github.com/healthcare-billing-synth/internal/sampling"
)

// serviceWindowDays is the trailing window, in days, that service dates are
// drawn from.
const serviceWindowDays = 730

// Identifier bases. Claim and patient IDs are dense and sequential by
// construction; only provider IDs and procedure codes are randomized.
const (
	claimIDBase   = 20240000
	patientIDBase = 10000
)

// Synthesizer generates the claim table. It is a pure batch transform from
// (seed, count) to an ordered record sequence; all randomness flows through
// one seeded Source consumed in a fixed per-record draw order.
type Synthesizer struct {
	registry *registry.Registry
	logger   *logrus.Logger

	// referenceTime is the end of the trailing service-date window. Injected
	// so fixture runs can be byte-identical across invocations.
	referenceTime time.Time
}

// NewSynthesizer creates a claim synthesizer over a validated registry.
func NewSynthesizer(reg *registry.Registry, logger *logrus.Logger, referenceTime time.Time) *Synthesizer {
	return &Synthesizer{
		registry:      reg,
		logger:        logger,
		referenceTime: referenceTime,
	}
}

// GenerateClaims produces n claim records, deterministic for a given seed
// and reference time. Derived fields are left zero; they are computed only
// after anomaly injection.
//
// Per-record draw order (a compatibility contract, not an implementation
// detail — reordering changes output for the same seed):
// age, procedure, billed normal, insurer, reimbursement factor, service-date
// offset, department, provider suffix, procedure-code suffix, diagnosis,
// claim status, admission type, multi-day-stay coin, stay length.
func (s *Synthesizer) GenerateClaims(n int, seed int64) ([]domain.ClaimRecord, error) {
	if n <= 0 {
		return nil, domain.NewParameterError("claim_count", "record count must be positive", n)
	}
	if err := s.registry.Validate(); err != nil {
		return nil, err
	}

	src := sampling.New(seed)
	windowStart := s.referenceTime.AddDate(0, 0, -serviceWindowDays)
	claims := make([]domain.ClaimRecord, 0, n)

	s.logger.WithFields(logrus.Fields{
		"records": n,
		"seed":    seed,
	}).Info("Generating healthcare billing records")

	for i := 0; i < n; i++ {
		rec, err := s.generateOne(i, src, windowStart)
		if err != nil {
			return nil, err
		}
		claims = append(claims, rec)
	}

	s.logger.WithField("records", len(claims)).Info("Claim generation completed")
	return claims, nil
}

func (s *Synthesizer) generateOne(i int, src *sampling.Source, windowStart time.Time) (domain.ClaimRecord, error) {
	reg := s.registry

	age := src.NormalClampedInt(45, 18, 1, 95)

	procedureName, err := src.Pick(reg.Procedures.Names(), reg.Procedures.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}
	procedureParams := reg.ProcedureParams[procedureName]

	insurerName, err := src.Pick(reg.Insurers.Names(), reg.Insurers.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}
	coverage := reg.InsurerParams[insurerName].CoverageRate

	billed, paid, patientDue := PriceClaim(procedureParams, coverage, src)

	serviceDate := windowStart.AddDate(0, 0, src.IntRange(0, serviceWindowDays))

	department, err := src.Pick(reg.Departments.Names(), reg.Departments.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}
	providerID := fmt.Sprintf("DR%04d", src.IntRange(1000, 9999))
	procedureCode := fmt.Sprintf("CPT%05d", src.IntRange(10000, 99999))

	diagnosis, err := src.Pick(reg.Diagnoses.Names(), reg.Diagnoses.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}
	status, err := src.Pick(reg.ClaimStatuses.Names(), reg.ClaimStatuses.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}
	admission, err := src.Pick(reg.AdmissionTypes.Names(), reg.AdmissionTypes.Weights())
	if err != nil {
		return domain.ClaimRecord{}, err
	}

	lengthOfStay := 1
	if src.Float64() < 0.3 {
		lengthOfStay = src.IntRange(1, 15)
	}

	return domain.ClaimRecord{
		ClaimID:               fmt.Sprintf("CLM%08d", claimIDBase+i),
		PatientID:             fmt.Sprintf("P%06d", patientIDBase+i),
		PatientAge:            age,
		ServiceDate:           serviceDate,
		ProcedureName:         procedureName,
		ProcedureCode:         procedureCode,
		PrimaryDiagnosis:      diagnosis,
		Department:            department,
		ProviderID:            providerID,
		InsuranceProvider:     insurerName,
		TotalBilledAmount:     billed,
		InsurancePaidAmount:   paid,
		PatientResponsibility: patientDue,
		ClaimStatus:           domain.ClaimStatus(status),
		AdmissionType:         domain.AdmissionType(admission),
		LengthOfStay:          lengthOfStay,
	}, nil
}
