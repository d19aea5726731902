package store

import (
	"context"

	"mindvault/domain/core/entities"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
)

// LoadSkillsAndAchievements replaces both collections from their storage
// services. The pair is loaded as one unit: if either read fails, neither
// collection changes and the failure lands in the error slot.
func (s *Store) LoadSkillsAndAchievements(ctx context.Context) {
	s.setLoading(LoadSkills, true)
	defer s.setLoading(LoadSkills, false)

	skills, err := s.services.Skills.GetAll(ctx)
	if err != nil {
		s.reportError(pkgerrors.Wrap(err, "load skills failed"))
		return
	}
	achievements, err := s.services.Achievements.GetAll(ctx)
	if err != nil {
		s.reportError(pkgerrors.Wrap(err, "load achievements failed"))
		return
	}

	s.mu.Lock()
	s.skills = skills
	s.achievements = achievements
	s.mu.Unlock()
	s.afterChange()
}

// UpdateSkill merges a partial change-set into one skill, writes it through
// skill storage and replaces it in the collection.
func (s *Store) UpdateSkill(ctx context.Context, id string, changes entities.SkillChanges) result.Result[entities.Skill] {
	s.mu.Lock()
	var current *entities.Skill
	for i := range s.skills {
		if s.skills[i].ID == id {
			skill := s.skills[i]
			current = &skill
			break
		}
	}
	s.mu.Unlock()
	if current == nil {
		return failBefore[entities.Skill](s, pkgerrors.NewNotFoundError("skill"))
	}

	merged := changes.Apply(*current)
	return execute(s, ctx, "update skill",
		func(ctx context.Context) (entities.Skill, error) {
			if err := s.services.Skills.Save(ctx, id, merged); err != nil {
				return entities.Skill{}, err
			}
			return merged, nil
		},
		func(skill entities.Skill) {
			for i := range s.skills {
				if s.skills[i].ID == id {
					s.skills[i] = skill
					break
				}
			}
		})
}

// UnlockAchievement stamps the unlock time, forces progress to 100 and
// writes the achievement through its storage. Unlocking an already
// unlocked achievement returns it unchanged without a storage write.
func (s *Store) UnlockAchievement(ctx context.Context, id string) result.Result[entities.Achievement] {
	s.mu.Lock()
	var current *entities.Achievement
	for i := range s.achievements {
		if s.achievements[i].ID == id {
			a := s.achievements[i]
			current = &a
			break
		}
	}
	s.mu.Unlock()
	if current == nil {
		return failBefore[entities.Achievement](s, pkgerrors.NewNotFoundError("achievement"))
	}
	if current.Unlocked() {
		return result.OK(*current)
	}

	unlocked := *current
	unlocked.Unlock(s.now())
	return execute(s, ctx, "unlock achievement",
		func(ctx context.Context) (entities.Achievement, error) {
			if err := s.services.Achievements.Save(ctx, id, unlocked); err != nil {
				return entities.Achievement{}, err
			}
			return unlocked, nil
		},
		func(achievement entities.Achievement) {
			for i := range s.achievements {
				if s.achievements[i].ID == id {
					s.achievements[i] = achievement
					break
				}
			}
		})
}

// Skills returns a copy of the skill collection in insertion order.
func (s *Store) Skills() []entities.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Skill(nil), s.skills...)
}

// Achievements returns a copy of the achievement collection.
func (s *Store) Achievements() []entities.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Achievement(nil), s.achievements...)
}
