package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthcare-billing-synth/internal/domain"
)

func TestSummarizeCountsAndTotals(t *testing.T) {
	claims := ComputeDerived(generateBase(t, 1000, 42))
	s := Summarize(claims)

	assert.Equal(t, 1000, s.TotalClaims)
	assert.Equal(t, 1000, s.UniquePatients)
	assert.False(t, s.EarliestService.After(s.LatestService))

	var total float64
	for _, c := range claims {
		total += c.TotalBilledAmount
	}
	assert.InDelta(t, total, s.TotalBilled, 1e-6)
	assert.InDelta(t, total/1000, s.AverageBilled, 1e-9)
}

func TestSummarizeRankings(t *testing.T) {
	claims := ComputeDerived(generateBase(t, 2000, 42))
	s := Summarize(claims)

	require.Len(t, s.TopProcedures, 5)
	for i := 1; i < len(s.TopProcedures); i++ {
		assert.GreaterOrEqual(t, s.TopProcedures[i-1].Count, s.TopProcedures[i].Count)
	}
	// Routine Checkup carries the heaviest weight by a wide margin.
	assert.Equal(t, "Routine Checkup", s.TopProcedures[0].Name)

	require.Len(t, s.InsurerCounts, 6)
	var insurerTotal int
	for i, ic := range s.InsurerCounts {
		insurerTotal += ic.Count
		if i > 0 {
			assert.GreaterOrEqual(t, s.InsurerCounts[i-1].Count, ic.Count)
		}
	}
	assert.Equal(t, 2000, insurerTotal)
}

func TestSummarizeTieBreakStable(t *testing.T) {
	counts := map[string]int{"b": 3, "a": 3, "c": 7}
	ranked := rankCounts(counts, 3)

	assert.Equal(t, []NameCount{
		{Name: "c", Count: 7},
		{Name: "a", Count: 3},
		{Name: "b", Count: 3},
	}, ranked)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalClaims)
	assert.Zero(t, s.TotalBilled)
	assert.Empty(t, s.TopProcedures)
}

func TestSummaryLogDoesNotPanic(t *testing.T) {
	claims := []domain.ClaimRecord{}
	Summarize(claims).Log(testLogger())
}
