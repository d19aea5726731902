package local

import (
	"context"

	"mindvault/domain/core/entities"
	"mindvault/infrastructure/persistence/sqlite"
)

// SkillStorage is the key-value skill store the coordinator talks to
// directly.
type SkillStorage struct {
	skills *sqlite.Collection[entities.Skill]
}

// NewSkillStorage creates a skill storage over db.
func NewSkillStorage(db *sqlite.DB) *SkillStorage {
	return &SkillStorage{
		skills: sqlite.NewCollection[entities.Skill](db, sqlite.KindSkill),
	}
}

// GetAll returns every skill in insertion order.
func (s *SkillStorage) GetAll(ctx context.Context) ([]entities.Skill, error) {
	return s.skills.All(ctx)
}

// Save inserts or replaces a skill under id.
func (s *SkillStorage) Save(ctx context.Context, id string, skill entities.Skill) error {
	return s.skills.Put(ctx, id, skill)
}

// AchievementStorage is the key-value achievement store.
type AchievementStorage struct {
	achievements *sqlite.Collection[entities.Achievement]
}

// NewAchievementStorage creates an achievement storage over db.
func NewAchievementStorage(db *sqlite.DB) *AchievementStorage {
	return &AchievementStorage{
		achievements: sqlite.NewCollection[entities.Achievement](db, sqlite.KindAchievement),
	}
}

// GetAll returns every achievement in insertion order.
func (s *AchievementStorage) GetAll(ctx context.Context) ([]entities.Achievement, error) {
	return s.achievements.All(ctx)
}

// Save inserts or replaces an achievement under id.
func (s *AchievementStorage) Save(ctx context.Context, id string, achievement entities.Achievement) error {
	return s.achievements.Put(ctx, id, achievement)
}
