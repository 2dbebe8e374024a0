package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/registry"
)

func TestGenerateProvidersDeterministic(t *testing.T) {
	reg := registry.Default()

	a, err := GenerateProviders(reg, 500, 43, testLogger())
	require.NoError(t, err)
	b, err := GenerateProviders(reg, 500, 43, testLogger())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateProvidersUniqueIDs(t *testing.T) {
	reg := registry.Default()
	providers, err := GenerateProviders(reg, 500, 43, testLogger())
	require.NoError(t, err)
	require.Len(t, providers, 500)

	ids := map[string]bool{}
	for _, p := range providers {
		assert.False(t, ids[p.ProviderID], "duplicate provider id %s", p.ProviderID)
		ids[p.ProviderID] = true
	}
}

func TestGenerateProvidersFieldShapes(t *testing.T) {
	reg := registry.Default()
	providers, err := GenerateProviders(reg, 500, 43, testLogger())
	require.NoError(t, err)

	npiPattern := regexp.MustCompile(`^\d{10}$`)
	for _, p := range providers {
		assert.Regexp(t, `^DR\d{4}$`, p.ProviderID)
		assert.Regexp(t, `^Dr\. `, p.ProviderName)
		assert.GreaterOrEqual(t, p.YearsExperience, 1)
		assert.LessOrEqual(t, p.YearsExperience, 40)
		assert.Contains(t, reg.Specialties, p.Specialty)
		assert.Contains(t, reg.StateCodes, p.LicenseState)
		assert.Regexp(t, ` Medical School$`, p.MedicalSchool)
		assert.Regexp(t, ` Medical Center$`, p.HospitalAffiliation)
		assert.True(t, npiPattern.MatchString(p.NPINumber))
	}
}

func TestGenerateProvidersCertificationRate(t *testing.T) {
	reg := registry.Default()
	providers, err := GenerateProviders(reg, 500, 43, testLogger())
	require.NoError(t, err)

	var certified int
	for _, p := range providers {
		if p.BoardCertified {
			certified++
		}
	}
	rate := float64(certified) / float64(len(providers))
	// Binomial band around 0.9 for n=500 (sd about 0.013).
	assert.InDelta(t, 0.9, rate, 0.06)
}

func TestGenerateProvidersRejectsBadCount(t *testing.T) {
	reg := registry.Default()
	_, err := GenerateProviders(reg, 0, 43, testLogger())
	require.Error(t, err)

	var paramErr *domain.ParameterError
	assert.ErrorAs(t, err, &paramErr)
}
