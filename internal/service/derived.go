package service

import (
	"github.com/healthcare-billing-synth/internal/domain"
)

// ComputeDerived fills in the three derived columns over the full, possibly
// anomaly-mutated table. Values are passed through as computed: a payment
// rate above 1.0 after a billing-error mutation is intended signal, not an
// error, and no row is excluded for a degenerate result.
func ComputeDerived(claims []domain.ClaimRecord) []domain.ClaimRecord {
	out := make([]domain.ClaimRecord, len(claims))
	copy(out, claims)
	for i := range out {
		out[i].PaymentRate = out[i].InsurancePaidAmount / out[i].TotalBilledAmount
		out[i].CostPerDay = out[i].TotalBilledAmount / float64(out[i].LengthOfStay)
		out[i].MonthYear = out[i].ServiceDate.Format(domain.MonthYearLayout)
	}
	return out
}
