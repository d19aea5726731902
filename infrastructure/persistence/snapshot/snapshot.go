// Package snapshot persists the coordinator's restart-surviving state
// subset as a single namespaced JSON document on disk.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mindvault/application/ports"
)

// Namespace is the fixed key the subset is stored under. The payload is
// versionless; unknown fields are ignored on load and missing ones fall
// back to defaults.
const Namespace = "mindvault-store"

// FileStore reads and writes the snapshot at a fixed path.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a snapshot store writing to path.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the persisted subset. A missing file, unreadable payload or
// absent namespace key all return ok=false: startup must never fail on a
// corrupt snapshot, it is discarded and defaults apply.
func (f *FileStore) Load() (ports.Snapshot, bool) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return ports.Snapshot{}, false
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		f.logger.Warn("discarding corrupt state snapshot", zap.String("path", f.path), zap.Error(err))
		return ports.Snapshot{}, false
	}
	payload, ok := doc[Namespace]
	if !ok {
		return ports.Snapshot{}, false
	}
	var snap ports.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		f.logger.Warn("discarding corrupt state snapshot", zap.String("path", f.path), zap.Error(err))
		return ports.Snapshot{}, false
	}
	return snap, true
}

// Save writes the subset atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (f *FileStore) Save(snap ports.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	doc := map[string]ports.Snapshot{Namespace: snap}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
