package service

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/healthcare-billing-synth/internal/domain"
)

// NameCount is one category with its record count.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary holds run-level statistics over the final claim table.
type Summary struct {
	TotalClaims     int         `json:"total_claims"`
	EarliestService time.Time   `json:"earliest_service"`
	LatestService   time.Time   `json:"latest_service"`
	TotalBilled     float64     `json:"total_billed"`
	AverageBilled   float64     `json:"average_billed"`
	UniquePatients  int         `json:"unique_patients"`
	UniqueProviders int         `json:"unique_providers"`
	TopProcedures   []NameCount `json:"top_procedures"`
	InsurerCounts   []NameCount `json:"insurer_counts"`
}

// topProcedureLimit caps the procedure volume ranking in the summary.
const topProcedureLimit = 5

// Summarize computes dataset statistics over the final claim table.
func Summarize(claims []domain.ClaimRecord) *Summary {
	s := &Summary{TotalClaims: len(claims)}
	if len(claims) == 0 {
		return s
	}

	patients := make(map[string]struct{})
	providers := make(map[string]struct{})
	procedures := make(map[string]int)
	insurers := make(map[string]int)

	s.EarliestService = claims[0].ServiceDate
	s.LatestService = claims[0].ServiceDate

	for _, c := range claims {
		if c.ServiceDate.Before(s.EarliestService) {
			s.EarliestService = c.ServiceDate
		}
		if c.ServiceDate.After(s.LatestService) {
			s.LatestService = c.ServiceDate
		}
		s.TotalBilled += c.TotalBilledAmount
		patients[c.PatientID] = struct{}{}
		providers[c.ProviderID] = struct{}{}
		procedures[c.ProcedureName]++
		insurers[c.InsuranceProvider]++
	}

	s.AverageBilled = s.TotalBilled / float64(len(claims))
	s.UniquePatients = len(patients)
	s.UniqueProviders = len(providers)
	s.TopProcedures = rankCounts(procedures, topProcedureLimit)
	s.InsurerCounts = rankCounts(insurers, len(insurers))
	return s
}

// Log writes the summary the way operators expect to read it after a run.
func (s *Summary) Log(logger *logrus.Logger) {
	logger.WithFields(logrus.Fields{
		"total_claims":     s.TotalClaims,
		"earliest_service": s.EarliestService.Format(domain.ServiceDateLayout),
		"latest_service":   s.LatestService.Format(domain.ServiceDateLayout),
		"total_billed":     s.TotalBilled,
		"average_billed":   s.AverageBilled,
		"unique_patients":  s.UniquePatients,
		"unique_providers": s.UniqueProviders,
	}).Info("Dataset summary")

	for _, p := range s.TopProcedures {
		logger.WithFields(logrus.Fields{
			"procedure": p.Name,
			"claims":    p.Count,
		}).Info("Top procedure by volume")
	}
	for _, i := range s.InsurerCounts {
		logger.WithFields(logrus.Fields{
			"insurer": i.Name,
			"claims":  i.Count,
		}).Info("Insurer distribution")
	}
}

// rankCounts orders a count map by descending count, breaking ties by name
// so the ranking is stable across runs.
func rankCounts(counts map[string]int, limit int) []NameCount {
	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
