package store

import (
	"context"

	"go.uber.org/zap"

	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
	"mindvault/pkg/utils"
)

// AddRecordInput is the command payload for recording a learning activity.
type AddRecordInput struct {
	NodeID        string                  `validate:"required"`
	Action        valueobjects.ActionType `validate:"required,oneof=create read edit review"`
	Duration      int                     `validate:"min=0"`
	Topic         string
	Type          string
	Content       string
	FocusLevel    int `validate:"min=0,max=100"`
	Interruptions int `validate:"min=0"`
	Notes         string
}

// LoadRecords replaces the learning record collection from the learning
// service.
func (s *Store) LoadRecords(ctx context.Context) {
	s.setLoading(LoadRecords, true)
	defer s.setLoading(LoadRecords, false)

	execute(s, ctx, "load records",
		func(ctx context.Context) ([]entities.LearningRecord, error) {
			return s.services.Learning.GetRecords(ctx)
		},
		func(records []entities.LearningRecord) {
			for i := range records {
				records[i].Normalize()
			}
			s.records = records
		})
}

// AddRecord validates and persists one learning record and appends it to
// the collection. Achievement requirement counters advance in the same
// step.
func (s *Store) AddRecord(ctx context.Context, input AddRecordInput) result.Result[entities.LearningRecord] {
	if err := s.validate.Struct(input); err != nil {
		return failBefore[entities.LearningRecord](s, pkgerrors.NewValidationError(utils.FormatValidationError(err)))
	}

	now := s.now()
	draft := entities.LearningRecord{
		NodeID:        input.NodeID,
		Action:        input.Action,
		Duration:      input.Duration,
		Timestamp:     now,
		Date:          now,
		Topic:         input.Topic,
		Type:          input.Type,
		Content:       input.Content,
		FocusLevel:    input.FocusLevel,
		Interruptions: input.Interruptions,
		Notes:         input.Notes,
	}

	return execute(s, ctx, "add record",
		func(ctx context.Context) (entities.LearningRecord, error) {
			return s.services.Learning.AddRecord(ctx, draft)
		},
		func(record entities.LearningRecord) {
			record.Normalize()
			s.appendRecordLocked(record)
		})
}

// Records returns a copy of the record collection in insertion order.
func (s *Store) Records() []entities.LearningRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.LearningRecord(nil), s.records...)
}

// appendRecordLocked appends a settled record and advances achievement
// requirement counters that track records and minutes.
func (s *Store) appendRecordLocked(record entities.LearningRecord) {
	s.records = append(s.records, record)
	for i := range s.achievements {
		a := &s.achievements[i]
		if a.Unlocked() {
			continue
		}
		for j := range a.Requirements {
			switch a.Requirements[j].Type {
			case "records":
				a.Requirements[j].Current++
			case "minutes":
				a.Requirements[j].Current += record.Duration
			}
		}
		a.RecomputeProgress()
	}
}

// StartSession begins a learning session on the given node, resetting
// focus to 100 and interruptions to 0. Starting while a session is already
// active overwrites it: the previous session's accumulated data is
// discarded without producing a record.
func (s *Store) StartSession(nodeID string) {
	s.mu.Lock()
	s.session = entities.NewActiveSession(nodeID, s.now())
	s.mu.Unlock()
	s.afterChange()
	s.logger.Debug("session started", zap.String("nodeId", nodeID))
}

// UpdateSessionFocus sets the focus level of the active session; a no-op
// when idle.
func (s *Store) UpdateSessionFocus(level int) {
	s.mu.Lock()
	active, ok := s.session.(entities.ActiveSession)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.session = active.WithFocus(level)
	s.mu.Unlock()
	s.afterChange()
}

// RecordInterruption counts one interruption against the active session;
// a no-op when idle.
func (s *Store) RecordInterruption() {
	s.mu.Lock()
	active, ok := s.session.(entities.ActiveSession)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.session = active.WithInterruption()
	s.mu.Unlock()
	s.afterChange()
}

// EndSession closes the active session: it derives the duration from the
// wall-clock delta, submits a read record through the learning service and
// adds the spent time to the user's stats. The tracker returns to idle no
// matter how submission goes, so it can never stick in the active state;
// on failure the record is lost and the error lands in the slot. Ending
// with no active session is a no-op that never touches the service.
func (s *Store) EndSession(ctx context.Context) error {
	s.mu.Lock()
	active, ok := s.session.(entities.ActiveSession)
	if !ok {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.session = entities.IdleSession{}
		s.mu.Unlock()
		s.afterChange()
	}()

	now := s.now()
	duration := active.DurationMinutes(now)
	draft := entities.LearningRecord{
		NodeID:        active.NodeID,
		Action:        valueobjects.ActionRead,
		Duration:      duration,
		Timestamp:     now,
		Date:          now,
		Topic:         "Learning Session",
		Type:          "session",
		FocusLevel:    active.FocusLevel,
		Interruptions: active.Interruptions,
	}

	res := execute(s, ctx, "save learning record",
		func(ctx context.Context) (entities.LearningRecord, error) {
			return s.services.Learning.AddRecord(ctx, draft)
		},
		func(record entities.LearningRecord) {
			record.Normalize()
			s.appendRecordLocked(record)
			if s.user != nil {
				s.user.Stats.TotalLearningTime += duration * 60
			}
		})
	return res.Err()
}

// CurrentSession returns the session state. Session values are immutable
// copies; mutating the returned value has no effect on the tracker.
func (s *Store) CurrentSession() entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
