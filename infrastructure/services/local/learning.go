package local

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindvault/domain/core/entities"
	"mindvault/infrastructure/persistence/sqlite"
)

// LearningService stores learning records in the embedded document store.
type LearningService struct {
	records *sqlite.Collection[entities.LearningRecord]
}

// NewLearningService creates a learning service over db.
func NewLearningService(db *sqlite.DB) *LearningService {
	return &LearningService{
		records: sqlite.NewCollection[entities.LearningRecord](db, sqlite.KindRecord),
	}
}

// GetRecords returns every record in insertion order.
func (s *LearningService) GetRecords(ctx context.Context) ([]entities.LearningRecord, error) {
	return s.records.All(ctx)
}

// AddRecord assigns an id and timestamps when absent and persists the
// record.
func (s *LearningService) AddRecord(ctx context.Context, record entities.LearningRecord) (entities.LearningRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	if record.Timestamp.IsZero() {
		record.Timestamp = now
	}
	if record.Date.IsZero() {
		record.Date = record.Timestamp
	}
	record.Normalize()
	if err := s.records.Put(ctx, record.ID, record); err != nil {
		return entities.LearningRecord{}, err
	}
	return record, nil
}
