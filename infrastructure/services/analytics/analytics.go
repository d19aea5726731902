// Package analytics derives reports and statistics from the learning
// record collection. Everything is computed locally; there is no remote
// analytics backend.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
	"mindvault/pkg/utils"
)

// Service computes learning statistics and reports.
type Service struct{}

// NewService creates an analytics service.
func NewService() *Service {
	return &Service{}
}

// GetStats aggregates the records into totals, daily buckets and the
// current streak.
func (s *Service) GetStats(ctx context.Context, records []entities.LearningRecord) (ports.LearningStats, error) {
	if err := ctx.Err(); err != nil {
		return ports.LearningStats{}, err
	}

	stats := ports.LearningStats{TotalSessions: len(records)}
	focusSum := 0
	daily := make(map[string]*ports.DailyStat)
	for _, r := range records {
		stats.TotalMinutes += r.Duration
		stats.TotalInterruptions += r.Interruptions
		focusSum += r.FocusLevel

		day := utils.DayKey(r.Date)
		bucket, ok := daily[day]
		if !ok {
			bucket = &ports.DailyStat{Date: day}
			daily[day] = bucket
		}
		bucket.Duration += r.Duration
		bucket.NodesReviewed++
		bucket.FocusScore += float64(r.FocusLevel)
	}
	if len(records) > 0 {
		stats.AverageFocus = float64(focusSum) / float64(len(records))
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		bucket := daily[day]
		if bucket.NodesReviewed > 0 {
			bucket.FocusScore /= float64(bucket.NodesReviewed)
		}
		stats.Daily = append(stats.Daily, *bucket)
	}
	stats.StreakDays = streak(days)
	return stats, nil
}

// GenerateReport builds a narrative report on top of the statistics,
// naming the nodes with the most accumulated time.
func (s *Service) GenerateReport(ctx context.Context, records []entities.LearningRecord) (ports.LearningReport, error) {
	stats, err := s.GetStats(ctx, records)
	if err != nil {
		return ports.LearningReport{}, err
	}

	minutesPerNode := make(map[string]int)
	for _, r := range records {
		minutesPerNode[r.NodeID] += r.Duration
	}
	type nodeTime struct {
		id      string
		minutes int
	}
	ranked := make([]nodeTime, 0, len(minutesPerNode))
	for id, minutes := range minutesPerNode {
		ranked = append(ranked, nodeTime{id, minutes})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].minutes != ranked[j].minutes {
			return ranked[i].minutes > ranked[j].minutes
		}
		return ranked[i].id < ranked[j].id
	})
	top := make([]string, 0, 5)
	for _, nt := range ranked {
		if len(top) == 5 {
			break
		}
		top = append(top, nt.id)
	}

	return ports.LearningReport{
		GeneratedAt: utils.NowRFC3339(),
		Stats:       stats,
		TopNodes:    top,
		Summary: fmt.Sprintf("%d sessions, %d minutes total, average focus %.0f%%, %d day streak",
			stats.TotalSessions, stats.TotalMinutes, stats.AverageFocus, stats.StreakDays),
	}, nil
}

// streak counts consecutive days, walking backwards from the most recent
// active day. days must be sorted ascending in 2006-01-02 format.
func streak(days []string) int {
	if len(days) == 0 {
		return 0
	}
	count := 1
	for i := len(days) - 1; i > 0; i-- {
		cur, err1 := utils.ParseDayKey(days[i])
		prev, err2 := utils.ParseDayKey(days[i-1])
		if err1 != nil || err2 != nil {
			break
		}
		if cur.Sub(prev) != 24*time.Hour {
			break
		}
		count++
	}
	return count
}
