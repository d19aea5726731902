package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindvault/domain/core/entities"
	"mindvault/tests/fixtures"
)

func TestInitialize_LoadsAllCollections(t *testing.T) {
	env := newTestEnv()
	s := env.store

	env.knowledge.Nodes = []entities.KnowledgeNode{
		fixtures.NewNodeBuilder().WithTitle("Node A").Build(),
		fixtures.NewNodeBuilder().WithTitle("Node B").Build(),
	}
	env.learning.Records = []entities.LearningRecord{
		fixtures.NewRecordBuilder().Build(),
	}
	env.skills.Skills = []entities.Skill{fixtures.Skill("s1", "Go")}
	env.achievements.Achievements = []entities.Achievement{
		fixtures.Achievement("a1", "records", 5),
	}

	s.Initialize(context.Background())

	assert.True(t, s.Initialized())
	assert.Len(t, s.Nodes(), 2)
	assert.Len(t, s.Records(), 1)
	assert.Len(t, s.Skills(), 1)
	assert.Len(t, s.Achievements(), 1)
	assert.NoError(t, s.Err())
}

func TestInitialize_PartialFailureStillInitializes(t *testing.T) {
	env := newTestEnv()
	s := env.store

	env.knowledge.FailWith("GetNodes", assert.AnError)
	env.learning.Records = []entities.LearningRecord{
		fixtures.NewRecordBuilder().Build(),
	}

	s.Initialize(context.Background())

	// A failed category neither blocks the others nor the bootstrap.
	assert.True(t, s.Initialized())
	assert.Empty(t, s.Nodes())
	assert.Len(t, s.Records(), 1)
	require.Error(t, s.Err())
}

func TestInitialize_AllFailuresStillInitialize(t *testing.T) {
	env := newTestEnv()
	s := env.store

	env.knowledge.FailWith("GetNodes", assert.AnError)
	env.learning.FailWith("GetRecords", assert.AnError)
	env.skills.FailWith("GetAll", assert.AnError)

	s.Initialize(context.Background())

	assert.True(t, s.Initialized())
	assert.Error(t, s.Err())
}

func TestInitialize_ClearsLoadingFlags(t *testing.T) {
	env := newTestEnv()
	s := env.store

	s.Initialize(context.Background())

	assert.False(t, s.Loading(LoadNodes))
	assert.False(t, s.Loading(LoadRecords))
	assert.False(t, s.Loading(LoadSkills))
}
