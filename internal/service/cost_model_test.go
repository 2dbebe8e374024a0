package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcare-billing-synth/internal/registry"
	"github.com/healthcare-billing-synth/internal/sampling"
)

func TestPriceClaimInvariants(t *testing.T) {
	src := sampling.New(11)
	params := registry.ProcedureParams{BaseCost: 1200, Variance: 400}
	const coverage = 0.80

	for i := 0; i < 5000; i++ {
		billed, paid, due := PriceClaim(params, coverage, src)

		assert.GreaterOrEqual(t, billed, 50.0)
		assert.GreaterOrEqual(t, paid, 0.0)
		// Reimbursement factor tops out at 1.0, so the insurer never pays
		// more than its nominal coverage. Cent rounding can add at most
		// half a cent.
		assert.LessOrEqual(t, paid, billed*coverage+0.005)
		assert.InDelta(t, billed-paid, due, 1e-9)
		assert.GreaterOrEqual(t, due, 0.0)
	}
}

func TestPriceClaimFloorsLowDraws(t *testing.T) {
	src := sampling.New(1)
	// Mean far below zero forces the floor on essentially every draw.
	params := registry.ProcedureParams{BaseCost: -5000, Variance: 10}

	billed, paid, due := PriceClaim(params, 0.9, src)
	assert.Equal(t, 50.0, billed)
	assert.LessOrEqual(t, paid, 45.0+0.005)
	assert.InDelta(t, billed-paid, due, 1e-9)
}

func TestPriceClaimRoundedToCents(t *testing.T) {
	src := sampling.New(23)
	params := registry.ProcedureParams{BaseCost: 250, Variance: 50}

	for i := 0; i < 1000; i++ {
		billed, paid, due := PriceClaim(params, 0.75, src)
		for _, v := range []float64{billed, paid, due} {
			cents := v * 100
			require.InDelta(t, math.Round(cents), cents, 1e-6)
		}
	}
}

func TestPriceClaimDeterministic(t *testing.T) {
	params := registry.ProcedureParams{BaseCost: 1800, Variance: 300}

	a := sampling.New(77)
	b := sampling.New(77)
	for i := 0; i < 100; i++ {
		billedA, paidA, dueA := PriceClaim(params, 0.82, a)
		billedB, paidB, dueB := PriceClaim(params, 0.82, b)
		require.Equal(t, billedA, billedB)
		require.Equal(t, paidA, paidB)
		require.Equal(t, dueA, dueB)
	}
}
