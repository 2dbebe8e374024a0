package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/registry"
	"github.com/healthcare-billing-synth/internal/sampling"
)

// providerIDBase is the first sequential provider ID suffix.
const providerIDBase = 1000

// boardCertifiedRate is the probability that a generated provider is board
// certified.
const boardCertifiedRate = 0.9

// GenerateProviders produces the provider reference table on an RNG stream
// independent of the claim generator. Provider attributes are sampled
// independently of each other and of the claim table; there is no enforced
// foreign-key relationship between claim provider_id values and this table.
func GenerateProviders(reg *registry.Registry, count int, seed int64, logger *logrus.Logger) ([]domain.ProviderRecord, error) {
	if count <= 0 {
		return nil, domain.NewParameterError("provider_count", "record count must be positive", count)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	src := sampling.New(seed)
	providers := make([]domain.ProviderRecord, 0, count)

	logger.WithFields(logrus.Fields{
		"records": count,
		"seed":    seed,
	}).Info("Generating provider reference records")

	for i := 0; i < count; i++ {
		first := reg.FirstNames[src.IntRange(0, len(reg.FirstNames)-1)]
		last := reg.LastNames[src.IntRange(0, len(reg.LastNames)-1)]
		specialty := reg.Specialties[src.IntRange(0, len(reg.Specialties)-1)]
		school := reg.Institutions[src.IntRange(0, len(reg.Institutions)-1)]
		affiliation := reg.Institutions[src.IntRange(0, len(reg.Institutions)-1)]
		state := reg.StateCodes[src.IntRange(0, len(reg.StateCodes)-1)]

		providers = append(providers, domain.ProviderRecord{
			ProviderID:          fmt.Sprintf("DR%04d", providerIDBase+i),
			ProviderName:        fmt.Sprintf("Dr. %s %s", first, last),
			Specialty:           specialty,
			YearsExperience:     src.IntRange(1, 40),
			MedicalSchool:       school + " Medical School",
			BoardCertified:      src.Float64() < boardCertifiedRate,
			HospitalAffiliation: affiliation + " Medical Center",
			LicenseState:        state,
			NPINumber:           fmt.Sprintf("%d", src.Int64Range(1000000000, 9999999999)),
		})
	}

	logger.WithField("records", len(providers)).Info("Provider generation completed")
	return providers, nil
}
