package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// Session is the learning-session state machine: either idle or active on
// exactly one node. Modeling it as a closed sum keeps the no-active-session
// state unrepresentable inside an ActiveSession.
type Session interface {
	// Active reports whether a session is in progress
	Active() bool
	sealed()
}

// IdleSession is the state with no session in progress.
type IdleSession struct{}

func (IdleSession) Active() bool { return false }
func (IdleSession) sealed()      {}

// ActiveSession is a session in progress on one node. FocusLevel starts at
// 100 and Interruptions at 0 when the session begins.
type ActiveSession struct {
	NodeID        string
	StartTime     time.Time
	FocusLevel    int
	Interruptions int
}

func (ActiveSession) Active() bool { return true }
func (ActiveSession) sealed()      {}

// NewActiveSession starts a fresh session on the given node.
func NewActiveSession(nodeID string, start time.Time) ActiveSession {
	return ActiveSession{
		NodeID:     nodeID,
		StartTime:  start,
		FocusLevel: 100,
	}
}

// WithFocus returns a copy with the focus level replaced (clamped 0-100).
func (s ActiveSession) WithFocus(level int) ActiveSession {
	s.FocusLevel = valueobjects.ClampPercent(level)
	return s
}

// WithInterruption returns a copy with one more interruption recorded.
func (s ActiveSession) WithInterruption() ActiveSession {
	s.Interruptions++
	return s
}

// DurationMinutes is the whole-minute wall-clock span from start to now.
func (s ActiveSession) DurationMinutes(now time.Time) int {
	d := int(now.Sub(s.StartTime).Minutes())
	if d < 0 {
		return 0
	}
	return d
}
