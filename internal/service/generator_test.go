package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/registry"
)

func runPipeline(t *testing.T, cfg domain.GeneratorConfig) *Dataset {
	t.Helper()
	gen := NewGenerator(registry.Default(), testLogger())
	ds, err := gen.Run(cfg, fixedReference)
	require.NoError(t, err)
	return ds
}

func TestGeneratorRunFullPipeline(t *testing.T) {
	cfg := domain.GeneratorConfig{ClaimCount: 1000, ProviderCount: 100, Seed: 42}
	ds := runPipeline(t, cfg)

	require.Len(t, ds.Claims, 1000)
	require.Len(t, ds.Providers, 100)
	require.NotNil(t, ds.Report)
	assert.NotEmpty(t, ds.RunID)

	// 5% of 1000 records get an anomaly slot.
	assert.Equal(t, 50, ds.Report.Selected)

	ids := map[string]bool{}
	windowStart := fixedReference.AddDate(0, 0, -730)
	for _, c := range ds.Claims {
		assert.False(t, ids[c.ClaimID], "duplicate claim id %s", c.ClaimID)
		ids[c.ClaimID] = true

		// Derived fields are filled in by the time the run returns.
		assert.NotEmpty(t, c.MonthYear)
		assert.Positive(t, c.CostPerDay)
		assert.False(t, c.ServiceDate.Before(windowStart))
		assert.False(t, c.ServiceDate.After(fixedReference))
	}
}

func TestGeneratorRunDeterministicExceptRunID(t *testing.T) {
	cfg := domain.GeneratorConfig{ClaimCount: 500, ProviderCount: 50, Seed: 7}

	a := runPipeline(t, cfg)
	b := runPipeline(t, cfg)

	assert.Equal(t, a.Claims, b.Claims)
	assert.Equal(t, a.Providers, b.Providers)
	assert.Equal(t, a.Report, b.Report)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestGeneratorRunProviderStreamIndependent(t *testing.T) {
	base := domain.GeneratorConfig{ClaimCount: 200, ProviderCount: 50, Seed: 3}
	more := domain.GeneratorConfig{ClaimCount: 400, ProviderCount: 50, Seed: 3}

	a := runPipeline(t, base)
	b := runPipeline(t, more)

	// Growing the claim table does not shift the provider table.
	assert.Equal(t, a.Providers, b.Providers)
}

func TestDatasetMarshalsSnakeCase(t *testing.T) {
	ds := runPipeline(t, domain.GeneratorConfig{ClaimCount: 20, ProviderCount: 2, Seed: 1})

	raw, err := json.Marshal(ds)
	require.NoError(t, err)

	for _, key := range []string{`"run_id"`, `"claims"`, `"providers"`, `"report"`} {
		assert.Contains(t, string(raw), key)
	}
}

func TestGeneratorRunPropagatesErrors(t *testing.T) {
	gen := NewGenerator(registry.Default(), testLogger())

	_, err := gen.Run(domain.GeneratorConfig{ClaimCount: 0, ProviderCount: 10, Seed: 1}, fixedReference)
	require.Error(t, err)
	var paramErr *domain.ParameterError
	assert.ErrorAs(t, err, &paramErr)

	_, err = gen.Run(domain.GeneratorConfig{ClaimCount: 10, ProviderCount: -1, Seed: 1}, fixedReference)
	require.Error(t, err)
	assert.ErrorAs(t, err, &paramErr)
}
