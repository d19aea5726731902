package local

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataService_ImportBareArray(t *testing.T) {
	db := openTestDB(t)
	svc := NewDataService(db, t.TempDir(), zap.NewNop())

	path := writeImportFile(t, `[
		{"title": "First", "type": "markdown"},
		{"title": "Second"}
	]`)

	res, err := svc.ImportNodes(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Nodes, 2)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.Nodes[0].ID)
	// A missing type defaults to note.
	assert.Equal(t, "note", string(res.Nodes[1].Type))

	// Imports land in the same store the knowledge service reads.
	knowledge := NewKnowledgeService(db, zap.NewNop())
	nodes, err := knowledge.GetNodes(context.Background())
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestDataService_ImportExportEnvelope(t *testing.T) {
	svc := NewDataService(openTestDB(t), t.TempDir(), zap.NewNop())

	path := writeImportFile(t, `{"knowledgeNodes": [{"title": "Wrapped"}]}`)

	res, err := svc.ImportNodes(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, "Wrapped", res.Nodes[0].Title)
}

func TestDataService_ImportCollectsPerItemErrors(t *testing.T) {
	svc := NewDataService(openTestDB(t), t.TempDir(), zap.NewNop())

	path := writeImportFile(t, `[
		{"title": "Good"},
		{"title": ""},
		{"title": "Bad Type", "type": "spreadsheet"}
	]`)

	res, err := svc.ImportNodes(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, res.Nodes, 1)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "node 1")
	assert.Contains(t, res.Errors[1], "node 2")
}

func TestDataService_ImportUnrecognizedFormat(t *testing.T) {
	svc := NewDataService(openTestDB(t), t.TempDir(), zap.NewNop())

	path := writeImportFile(t, `"just a string"`)

	_, err := svc.ImportNodes(context.Background(), path)
	require.Error(t, err)
}

func TestDataService_ImportMissingFile(t *testing.T) {
	svc := NewDataService(openTestDB(t), t.TempDir(), zap.NewNop())

	_, err := svc.ImportNodes(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestDataService_ExportWritesIndentedJSON(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "exports")
	svc := NewDataService(openTestDB(t), exportDir, zap.NewNop())

	payload := map[string]any{"hello": "world"}
	require.NoError(t, svc.ExportData(context.Background(), payload, "out.json"))

	raw, err := os.ReadFile(filepath.Join(exportDir, "out.json"))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "world", decoded["hello"])
}
