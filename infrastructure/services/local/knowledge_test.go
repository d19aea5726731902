package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
	"mindvault/infrastructure/persistence/sqlite"
	pkgerrors "mindvault/pkg/errors"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKnowledgeService_CreateAssignsIdentity(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())
	ctx := context.Background()

	node, err := svc.CreateNode(ctx, entities.KnowledgeNode{
		Title:   "Go scheduler",
		Content: "The runtime multiplexes goroutines onto OS threads.",
		Type:    valueobjects.NodeTypeMarkdown,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, node.ID)
	assert.False(t, node.CreatedAt.IsZero())
	assert.False(t, node.UpdatedAt.IsZero())
	assert.Equal(t, 7, node.Metadata.WordCount)
	assert.Equal(t, 1, node.Metadata.ReadingTime)

	nodes, err := svc.GetNodes(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, node.ID, nodes[0].ID)
}

func TestKnowledgeService_UpdateRederivesMetadata(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())
	ctx := context.Background()

	node, err := svc.CreateNode(ctx, entities.KnowledgeNode{
		Title: "Short", Content: "two words", Type: valueobjects.NodeTypeNote,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, node.Metadata.WordCount)

	content := "now there are five whole words, well, more"
	updated, err := svc.UpdateNode(ctx, node.ID, entities.NodeChanges{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Metadata.WordCount)
}

func TestKnowledgeService_UpdateMissing(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())

	title := "nope"
	_, err := svc.UpdateNode(context.Background(), "absent", entities.NodeChanges{Title: &title})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestKnowledgeService_DeleteMissing(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())

	err := svc.DeleteNode(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestKnowledgeService_SearchScoring(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateNode(ctx, entities.KnowledgeNode{
		Title:   "Goroutines",
		Content: "goroutines are cheap. goroutines are multiplexed.",
		Tags:    []string{"goroutines", "concurrency"},
		Type:    valueobjects.NodeTypeMarkdown,
	})
	require.NoError(t, err)
	_, err = svc.CreateNode(ctx, entities.KnowledgeNode{
		Title:   "Channels",
		Content: "channels connect goroutines",
		Type:    valueobjects.NodeTypeMarkdown,
	})
	require.NoError(t, err)
	_, err = svc.CreateNode(ctx, entities.KnowledgeNode{
		Title:   "Maps",
		Content: "nothing relevant here",
		Type:    valueobjects.NodeTypeNote,
	})
	require.NoError(t, err)

	matches, err := svc.SearchNodes(ctx, "goroutines")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byTitle := map[string]float64{}
	for _, m := range matches {
		byTitle[m.Node.Title] = m.Score
	}
	// Title 3 + tag 2 + two content occurrences.
	assert.Equal(t, 7.0, byTitle["Goroutines"])
	// One content occurrence only.
	assert.Equal(t, 1.0, byTitle["Channels"])
}

func TestKnowledgeService_SearchCaseInsensitive(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateNode(ctx, entities.KnowledgeNode{
		Title: "Error Handling", Type: valueobjects.NodeTypeNote,
	})
	require.NoError(t, err)

	matches, err := svc.SearchNodes(ctx, "ERROR")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Highlights, "title")
}

func TestKnowledgeService_SearchBlankQuery(t *testing.T) {
	svc := NewKnowledgeService(openTestDB(t), zap.NewNop())

	matches, err := svc.SearchNodes(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
