package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindvault/domain/core/entities"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/tests/fixtures"
)

func TestLoadSkillsAndAchievements_LoadsBoth(t *testing.T) {
	env := newTestEnv()
	s := env.store

	env.skills.Skills = []entities.Skill{fixtures.Skill("s1", "Go")}
	env.achievements.Achievements = []entities.Achievement{
		fixtures.Achievement("a1", "records", 10),
	}

	s.LoadSkillsAndAchievements(context.Background())

	assert.Len(t, s.Skills(), 1)
	assert.Len(t, s.Achievements(), 1)
	assert.NoError(t, s.Err())
}

func TestLoadSkillsAndAchievements_PartialFailureChangesNothing(t *testing.T) {
	env := newTestEnv()
	s := env.store

	env.skills.Skills = []entities.Skill{fixtures.Skill("s1", "Go")}
	env.achievements.FailWith("GetAll", assert.AnError)

	s.LoadSkillsAndAchievements(context.Background())

	// The pair loads as one unit: a failed achievement read keeps the
	// skill collection unchanged too.
	assert.Empty(t, s.Skills())
	assert.Empty(t, s.Achievements())
	assert.Error(t, s.Err())
}

func TestUpdateSkill_MergesAndPersists(t *testing.T) {
	env := newTestEnv()
	s := env.store
	ctx := context.Background()

	env.skills.Skills = []entities.Skill{fixtures.Skill("s1", "Go")}
	s.LoadSkillsAndAchievements(ctx)

	level := 42
	res := s.UpdateSkill(ctx, "s1", entities.SkillChanges{Level: &level})
	require.True(t, res.Success)
	assert.Equal(t, 42, res.Data.Level)
	assert.Equal(t, 42, s.Skills()[0].Level)
	assert.Equal(t, 1, env.skills.Calls("Save"))
}

func TestUpdateSkill_MissingID(t *testing.T) {
	env := newTestEnv()
	s := env.store

	level := 10
	res := s.UpdateSkill(context.Background(), "no-such-skill", entities.SkillChanges{Level: &level})
	require.False(t, res.Success)
	assert.True(t, pkgerrors.IsNotFound(res.Err()))
	assert.Equal(t, 0, env.skills.Calls("Save"))
}

func TestUnlockAchievement_StampsAndPersists(t *testing.T) {
	env := newTestEnv()
	s := env.store
	ctx := context.Background()

	env.achievements.Achievements = []entities.Achievement{
		fixtures.Achievement("a1", "records", 10),
	}
	s.LoadSkillsAndAchievements(ctx)

	res := s.UnlockAchievement(ctx, "a1")
	require.True(t, res.Success)
	require.NotNil(t, res.Data.UnlockedAt)
	assert.Equal(t, env.now, *res.Data.UnlockedAt)
	assert.Equal(t, 100, res.Data.Progress)
	assert.Equal(t, 1, env.achievements.Calls("Save"))
}

func TestUnlockAchievement_Idempotent(t *testing.T) {
	env := newTestEnv()
	s := env.store
	ctx := context.Background()

	env.achievements.Achievements = []entities.Achievement{
		fixtures.Achievement("a1", "records", 10),
	}
	s.LoadSkillsAndAchievements(ctx)

	first := s.UnlockAchievement(ctx, "a1")
	require.True(t, first.Success)
	stamped := *first.Data.UnlockedAt

	env.advance(time.Hour)
	second := s.UnlockAchievement(ctx, "a1")
	require.True(t, second.Success)

	// The original stamp survives and storage is not written again.
	require.NotNil(t, second.Data.UnlockedAt)
	assert.Equal(t, stamped, *second.Data.UnlockedAt)
	assert.Equal(t, 1, env.achievements.Calls("Save"))
}

func TestUnlockAchievement_MissingID(t *testing.T) {
	env := newTestEnv()

	res := env.store.UnlockAchievement(context.Background(), "no-such-achievement")
	require.False(t, res.Success)
	assert.True(t, pkgerrors.IsNotFound(res.Err()))
}
