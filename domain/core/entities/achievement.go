package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// Requirement is one condition an achievement tracks toward its target.
type Requirement struct {
	Type    string `json:"type"`
	Target  int    `json:"target"`
	Current int    `json:"current"`
}

// Achievement is a milestone the user can unlock. Requirements keep their
// declared order; progress is the averaged completion across them.
type Achievement struct {
	ID           string                       `json:"id"`
	Title        string                       `json:"title"`
	Description  string                       `json:"description,omitempty"`
	Icon         string                       `json:"icon,omitempty"`
	Type         valueobjects.AchievementKind `json:"type"`
	UnlockedAt   *time.Time                   `json:"unlockedAt,omitempty"`
	Progress     int                          `json:"progress"`
	Requirements []Requirement                `json:"requirements"`
}

// Unlocked reports whether the achievement has been unlocked
func (a *Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}

// Unlock stamps the unlock time and forces progress to 100. Unlocking an
// already-unlocked achievement is a no-op, preserving the original stamp.
func (a *Achievement) Unlock(now time.Time) {
	if a.Unlocked() {
		return
	}
	t := now
	a.UnlockedAt = &t
	a.Progress = 100
}

// RecomputeProgress recalculates progress as the average completion of all
// requirements, each capped at its target. An unlocked achievement stays
// at 100 regardless of requirement state.
func (a *Achievement) RecomputeProgress() {
	if a.Unlocked() || len(a.Requirements) == 0 {
		return
	}
	total := 0.0
	for _, req := range a.Requirements {
		if req.Target <= 0 {
			total += 1
			continue
		}
		frac := float64(req.Current) / float64(req.Target)
		if frac > 1 {
			frac = 1
		}
		total += frac
	}
	a.Progress = valueobjects.ClampPercent(int(total / float64(len(a.Requirements)) * 100))
}
