package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path, zap.NewNop())

	effects := false
	collapsed := true
	snap := ports.Snapshot{
		User:             &entities.UserProfile{ID: "u1", Name: "Ada"},
		Theme:            valueobjects.ThemeLight,
		VisualEffects:    &effects,
		SidebarCollapsed: &collapsed,
		GraphView:        valueobjects.GraphView2D,
	}
	require.NoError(t, store.Save(snap))

	loaded, ok := store.Load()
	require.True(t, ok)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "Ada", loaded.User.Name)
	assert.Equal(t, valueobjects.ThemeLight, loaded.Theme)
	require.NotNil(t, loaded.VisualEffects)
	assert.False(t, *loaded.VisualEffects)
	require.NotNil(t, loaded.SidebarCollapsed)
	assert.True(t, *loaded.SidebarCollapsed)
	assert.Equal(t, valueobjects.GraphView2D, loaded.GraphView)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestFileStore_CorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path, zap.NewNop())
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestFileStore_MissingNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"other-app":{}}`), 0o644))

	store := NewFileStore(path, zap.NewNop())
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestFileStore_PayloadIsNamespaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path, zap.NewNop())
	require.NoError(t, store.Save(ports.Snapshot{Theme: valueobjects.ThemeDark}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, Namespace)
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	store := NewFileStore(path, zap.NewNop())

	require.NoError(t, store.Save(ports.Snapshot{Theme: valueobjects.ThemeAuto}))
	_, ok := store.Load()
	assert.True(t, ok)
}
