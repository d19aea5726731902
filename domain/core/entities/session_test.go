package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewActiveSession_Defaults(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewActiveSession("n1", start)

	assert.Equal(t, "n1", s.NodeID)
	assert.Equal(t, start, s.StartTime)
	assert.Equal(t, 100, s.FocusLevel)
	assert.Equal(t, 0, s.Interruptions)
	assert.True(t, s.Active())
}

func TestIdleSession_NotActive(t *testing.T) {
	assert.False(t, IdleSession{}.Active())
}

func TestActiveSession_WithFocusClamps(t *testing.T) {
	s := NewActiveSession("n1", time.Now())

	assert.Equal(t, 100, s.WithFocus(120).FocusLevel)
	assert.Equal(t, 0, s.WithFocus(-1).FocusLevel)
	assert.Equal(t, 55, s.WithFocus(55).FocusLevel)
}

func TestActiveSession_WithInterruption(t *testing.T) {
	s := NewActiveSession("n1", time.Now())
	s = s.WithInterruption().WithInterruption()
	assert.Equal(t, 2, s.Interruptions)
}

func TestActiveSession_DurationMinutes(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewActiveSession("n1", start)

	// Partial minutes floor.
	assert.Equal(t, 25, s.DurationMinutes(start.Add(25*time.Minute+59*time.Second)))
	assert.Equal(t, 0, s.DurationMinutes(start.Add(30*time.Second)))
	// A clock that moved backwards never yields a negative duration.
	assert.Equal(t, 0, s.DurationMinutes(start.Add(-time.Minute)))
}
