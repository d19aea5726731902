package store

import (
	"context"

	"mindvault/application/ports"
	pkgerrors "mindvault/pkg/errors"
)

// DerivedStats are cheap counters computed straight from the collections,
// without the analytics service.
type DerivedStats struct {
	NodeCount    int
	RecordCount  int
	TotalMinutes int
	SkillCount   int
	Unlocked     int
}

// GenerateReport asks the analytics service for a report over the current
// record collection. Failure lands in the error slot and returns nil.
func (s *Store) GenerateReport(ctx context.Context) *ports.LearningReport {
	report, err := s.services.Analytics.GenerateReport(ctx, s.Records())
	if err != nil {
		s.reportError(pkgerrors.Wrap(err, "generate report failed"))
		return nil
	}
	return &report
}

// LearningStats asks the analytics service for aggregate statistics over
// the current record collection. Failure lands in the error slot and
// returns nil.
func (s *Store) LearningStats(ctx context.Context) *ports.LearningStats {
	stats, err := s.services.Analytics.GetStats(ctx, s.Records())
	if err != nil {
		s.reportError(pkgerrors.Wrap(err, "get stats failed"))
		return nil
	}
	return &stats
}

// Stats derives counter totals from the in-memory collections.
func (s *Store) Stats() DerivedStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := DerivedStats{
		NodeCount:   len(s.nodes),
		RecordCount: len(s.records),
		SkillCount:  len(s.skills),
	}
	for _, r := range s.records {
		stats.TotalMinutes += r.Duration
	}
	for _, a := range s.achievements {
		if a.Unlocked() {
			stats.Unlocked++
		}
	}
	return stats
}
