package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/domain"
	"github.com/healthcare-billing-synth/internal/sampling"
)

// anomalyDenominator selects 1-in-20 (5%) of records for injection.
const anomalyDenominator = 20

var archetypes = []domain.AnomalyArchetype{
	domain.AnomalyBillingError,
	domain.AnomalyDuplicateClaim,
	domain.AnomalyUnusualCost,
	domain.AnomalyFraudIndicator,
}

// Injection records one selected index, the archetype drawn for it, and
// whether the archetype produced a visible mutation. unusual_cost is a no-op
// unless the procedure name contains "Routine", and duplicate_claim is a
// no-op on the last record; those slots are still consumed.
type Injection struct {
	Index     int                     `json:"index"`
	Archetype domain.AnomalyArchetype `json:"archetype"`
	Applied   bool                    `json:"applied"`
}

// InjectionReport summarizes one injection pass.
type InjectionReport struct {
	Selected   int         `json:"selected"`
	Applied    int         `json:"applied"`
	Injections []Injection `json:"injections"`
}

// InjectAnomalies selects floor(n/20) distinct record indices without
// replacement and mutates each according to one of four equally likely
// archetypes. The input slice is not modified; the returned slice carries
// the mutations. Selection and archetype draws come from a Source seeded
// with the given value, so the pass is deterministic.
func InjectAnomalies(claims []domain.ClaimRecord, seed int64, logger *logrus.Logger) ([]domain.ClaimRecord, *InjectionReport, error) {
	if len(claims) == 0 {
		return nil, nil, domain.NewParameterError("claims", "cannot inject into an empty claim set", 0)
	}

	src := sampling.New(seed)
	count := len(claims) / anomalyDenominator

	out := make([]domain.ClaimRecord, len(claims))
	copy(out, claims)

	report := &InjectionReport{Selected: count}

	logger.WithFields(logrus.Fields{
		"records":   len(claims),
		"anomalies": count,
	}).Info("Injecting anomalies")

	selected := src.Perm(len(claims))[:count]
	for _, idx := range selected {
		archetype := archetypes[src.IntRange(0, len(archetypes)-1)]
		applied := applyArchetype(out, idx, archetype, src)
		report.Injections = append(report.Injections, Injection{
			Index:     idx,
			Archetype: archetype,
			Applied:   applied,
		})
		if applied {
			report.Applied++
		}
	}

	logger.WithFields(logrus.Fields{
		"selected": report.Selected,
		"applied":  report.Applied,
	}).Info("Anomaly injection completed")
	return out, report, nil
}

// applyArchetype mutates out for one selected index and reports whether a
// visible change was made. Archetypes that miss their precondition consume
// the selection slot with no mutation and no extra draws.
func applyArchetype(out []domain.ClaimRecord, idx int, archetype domain.AnomalyArchetype, src *sampling.Source) bool {
	switch archetype {
	case domain.AnomalyBillingError:
		// Scale the billed amount only; paid and responsibility stay stale.
		// The resulting mismatch is the detection signature.
		out[idx].TotalBilledAmount = sampling.Round2(out[idx].TotalBilledAmount * src.Uniform(2.0, 5.0))
		return true

	case domain.AnomalyDuplicateClaim:
		if idx >= len(out)-1 {
			return false
		}
		// Partial overwrite of the following record; costs and all other
		// fields stay independently sampled, so the pair is a near-duplicate.
		out[idx+1].PatientID = out[idx].PatientID
		out[idx+1].ProcedureName = out[idx].ProcedureName
		out[idx+1].ServiceDate = out[idx].ServiceDate
		return true

	case domain.AnomalyUnusualCost:
		if !strings.Contains(out[idx].ProcedureName, "Routine") {
			return false
		}
		out[idx].TotalBilledAmount = sampling.Round2(out[idx].TotalBilledAmount * src.Uniform(10.0, 20.0))
		return true

	case domain.AnomalyFraudIndicator:
		out[idx].ProcedureName = "Surgery - Major"
		out[idx].TotalBilledAmount = sampling.Round2(src.Uniform(50000, 100000))
		return true
	}
	return false
}
