package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// LearningRecord captures one bounded unit of engagement with a node.
// Duration is in minutes; FocusLevel is clamped to 0-100.
type LearningRecord struct {
	ID            string                  `json:"id"`
	NodeID        string                  `json:"nodeId"`
	Action        valueobjects.ActionType `json:"action"`
	Duration      int                     `json:"duration"`
	Timestamp     time.Time               `json:"timestamp"`
	Date          time.Time               `json:"date"`
	Topic         string                  `json:"topic"`
	Type          string                  `json:"type"`
	Content       string                  `json:"content,omitempty"`
	FocusLevel    int                     `json:"focusLevel"`
	Interruptions int                     `json:"interruptions"`
	Notes         string                  `json:"notes,omitempty"`
}

// Normalize clamps bounded fields into their valid ranges.
func (r *LearningRecord) Normalize() {
	r.FocusLevel = valueobjects.ClampPercent(r.FocusLevel)
	if r.Duration < 0 {
		r.Duration = 0
	}
	if r.Interruptions < 0 {
		r.Interruptions = 0
	}
}
