// Package integration wires the full stack together: coordinator over the
// local services over the embedded document store, with the persisted
// state snapshot on disk.
package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindvault/application/store"
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
	"mindvault/infrastructure/persistence/snapshot"
	"mindvault/infrastructure/persistence/sqlite"
	"mindvault/infrastructure/services/analytics"
	"mindvault/infrastructure/services/local"
)

type env struct {
	dir string
	db  *sqlite.DB
}

// openStore builds a coordinator over the data directory. Calling it a
// second time with the same env simulates an application restart sharing
// the same database and snapshot files.
func (e *env) openStore(t *testing.T) *store.Store {
	t.Helper()
	logger := zap.NewNop()

	if e.db == nil {
		db, err := sqlite.Open(filepath.Join(e.dir, "mindvault.db"), logger)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		e.db = db
	}

	services := store.Services{
		Knowledge:    local.NewKnowledgeService(e.db, logger),
		Learning:     local.NewLearningService(e.db),
		User:         local.NewUserService(e.db),
		File:         local.NewFileService(filepath.Join(e.dir, "uploads")),
		Data:         local.NewDataService(e.db, filepath.Join(e.dir, "exports"), logger),
		Analytics:    analytics.NewService(),
		Skills:       local.NewSkillStorage(e.db),
		Achievements: local.NewAchievementStorage(e.db),
	}
	snapshots := snapshot.NewFileStore(filepath.Join(e.dir, "state.json"), logger)
	return store.New(services, snapshots, logger)
}

func TestLifecycle_CreateSearchDelete(t *testing.T) {
	e := &env{dir: t.TempDir()}
	s := e.openStore(t)
	ctx := context.Background()
	s.Initialize(ctx)

	created := s.CreateNode(ctx, store.CreateNodeInput{
		Title:   "Go Scheduler",
		Content: "goroutines are multiplexed onto threads",
		Type:    valueobjects.NodeTypeMarkdown,
		Tags:    []string{"go", "runtime"},
	})
	require.True(t, created.Success)

	other := s.CreateNode(ctx, store.CreateNodeInput{
		Title: "Unrelated",
		Type:  valueobjects.NodeTypeNote,
	})
	require.True(t, other.Success)

	s.Search(ctx, "goroutines")
	results := s.SearchResults()
	require.Len(t, results, 1)
	assert.Equal(t, created.Data.ID, results[0].Node.ID)

	res := s.DeleteNode(ctx, created.Data.ID)
	require.True(t, res.Success)
	assert.Len(t, s.Nodes(), 1)
}

func TestLifecycle_RestartSeesPersistedData(t *testing.T) {
	e := &env{dir: t.TempDir()}
	s := e.openStore(t)
	ctx := context.Background()
	s.Initialize(ctx)

	login := s.Login(ctx, profile("Ada"))
	require.True(t, login.Success)
	created := s.CreateNode(ctx, store.CreateNodeInput{
		Title: "Persistent", Type: valueobjects.NodeTypeNote,
	})
	require.True(t, created.Success)
	s.SetTheme(valueobjects.ThemeLight)

	// Restart: fresh coordinator, same database and snapshot.
	restarted := e.openStore(t)

	// The snapshot restores before any load.
	require.NotNil(t, restarted.User())
	assert.Equal(t, "Ada", restarted.User().Name)
	assert.Equal(t, valueobjects.ThemeLight, restarted.Theme())
	assert.Empty(t, restarted.Nodes())

	restarted.Initialize(ctx)
	require.NoError(t, restarted.Err())
	require.Len(t, restarted.Nodes(), 1)
	assert.Equal(t, created.Data.ID, restarted.Nodes()[0].ID)
}

func TestLifecycle_SessionProducesRecordAndStats(t *testing.T) {
	e := &env{dir: t.TempDir()}
	s := e.openStore(t)
	ctx := context.Background()
	s.Initialize(ctx)

	node := s.CreateNode(ctx, store.CreateNodeInput{
		Title: "Focus target", Type: valueobjects.NodeTypeNote,
	})
	require.True(t, node.Success)

	s.StartSession(node.Data.ID)
	s.UpdateSessionFocus(85)
	require.NoError(t, s.EndSession(ctx))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, node.Data.ID, records[0].NodeID)
	assert.Equal(t, "session", records[0].Type)

	stats := s.LearningStats(ctx)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalSessions)
}

func TestLifecycle_ExportWritesFiles(t *testing.T) {
	e := &env{dir: t.TempDir()}
	s := e.openStore(t)
	ctx := context.Background()
	s.Initialize(ctx)

	created := s.CreateNode(ctx, store.CreateNodeInput{
		Title: "Exported", Type: valueobjects.NodeTypeNote,
	})
	require.True(t, created.Success)

	require.NoError(t, s.ExportData(ctx, store.ExportKnowledge))
	assert.FileExists(t, filepath.Join(e.dir, "exports", "knowledge-nodes.json"))
}

func profile(name string) entities.UserProfile {
	return entities.UserProfile{
		Name:     name,
		JoinedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
