package service

import (
	"github.com/healthcare-billing-synth/internal/registry"
	"github.com/healthcare-billing-synth/internal/sampling"
)

// billedFloor is the minimum billed amount in dollars. The normal draw can
// go non-positive for low-cost procedures; no real claim bills below this.
const billedFloor = 50.0

// reimbursementMin is the lower bound of the randomized fraction of the
// nominal coverage rate an insurer actually pays on a claim.
const reimbursementMin = 0.85

// PriceClaim produces the three monetary components of one claim, rounded to
// cents. The billed amount is a normal draw parameterized per procedure and
// floored at billedFloor; the insurer pays its coverage rate scaled by a
// uniform factor in [reimbursementMin, 1.0), so paid never exceeds
// billed x coverageRate and the patient responsibility is never negative.
//
// Two draws are consumed from src, in order: the billed normal draw, then
// the reimbursement factor.
func PriceClaim(params registry.ProcedureParams, coverageRate float64, src *sampling.Source) (billed, paid, patientDue float64) {
	billed = src.Normal(params.BaseCost, params.Variance)
	if billed < billedFloor {
		billed = billedFloor
	}
	paid = billed * coverageRate * src.Uniform(reimbursementMin, 1.0)

	billed = sampling.Round2(billed)
	paid = sampling.Round2(paid)
	patientDue = sampling.Round2(billed - paid)
	return billed, paid, patientDue
}
