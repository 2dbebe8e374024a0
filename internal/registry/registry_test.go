package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcare-billing-synth/internal/domain"
)

func TestDefaultRegistryValidates(t *testing.T) {
	reg := Default()
	require.NoError(t, reg.Validate())
}

func TestDefaultRegistryShape(t *testing.T) {
	reg := Default()

	assert.Len(t, reg.Procedures.Entries, 9)
	assert.Len(t, reg.Insurers.Entries, 6)
	assert.Len(t, reg.Departments.Entries, 10)
	assert.Len(t, reg.Diagnoses.Entries, 12)

	// Every weighted procedure must have cost parameters.
	for _, name := range reg.Procedures.Names() {
		_, ok := reg.ProcedureParams[name]
		assert.True(t, ok, "missing cost params for %s", name)
	}
	for _, name := range reg.Insurers.Names() {
		params, ok := reg.InsurerParams[name]
		require.True(t, ok, "missing coverage params for %s", name)
		assert.Greater(t, params.CoverageRate, 0.0)
		assert.LessOrEqual(t, params.CoverageRate, 1.0)
	}
}

func TestValidateRejectsBadWeightSum(t *testing.T) {
	reg := Default()
	reg.Insurers.Entries[0].Weight = 0.5

	err := reg.Validate()
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "insurers", cfgErr.Domain)
}

func TestValidateRejectsEmptyDomain(t *testing.T) {
	reg := Default()
	reg.Departments.Entries = nil

	err := reg.Validate()
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "departments", cfgErr.Domain)
}

func TestValidateRejectsNegativeVariance(t *testing.T) {
	reg := Default()
	reg.ProcedureParams["X-Ray"] = ProcedureParams{BaseCost: 300, Variance: -1}

	err := reg.Validate()
	require.Error(t, err)

	var paramErr *domain.ParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "variance", paramErr.Param)
}

func TestValidateRejectsMissingProcedureParams(t *testing.T) {
	reg := Default()
	delete(reg.ProcedureParams, "MRI Scan")

	err := reg.Validate()
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateToleratesFloatDrift(t *testing.T) {
	// 12 equal weights of 1/12 do not sum to exactly 1.0 in floating point;
	// the tolerance must absorb that.
	reg := Default()
	require.NoError(t, reg.Validate())
	assert.Len(t, reg.Diagnoses.Weights(), 12)
}

func TestDomainAccessorsPreserveOrder(t *testing.T) {
	d := Domain{
		Label: "test",
		Entries: []Entry{
			{Name: "a", Weight: 0.7},
			{Name: "b", Weight: 0.3},
		},
	}
	assert.Equal(t, []string{"a", "b"}, d.Names())
	assert.Equal(t, []float64{0.7, 0.3}, d.Weights())
}
