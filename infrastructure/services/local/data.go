package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
	"mindvault/infrastructure/persistence/sqlite"
)

// DataService handles bulk import and export of knowledge data. Imported
// nodes are persisted through the same document store the knowledge
// service reads, so a later reload sees them.
type DataService struct {
	nodes     *sqlite.Collection[entities.KnowledgeNode]
	exportDir string
	logger    *zap.Logger
}

// NewDataService creates a data service over db writing exports into
// exportDir.
func NewDataService(db *sqlite.DB, exportDir string, logger *zap.Logger) *DataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataService{
		nodes:     sqlite.NewCollection[entities.KnowledgeNode](db, sqlite.KindNode),
		exportDir: exportDir,
		logger:    logger,
	}
}

// importDocument accepts both a bare node array and a full export payload.
type importDocument struct {
	KnowledgeNodes []entities.KnowledgeNode `json:"knowledgeNodes"`
}

// ImportNodes parses the JSON file at path into nodes. Per-item failures
// (missing title, unknown type) are collected without failing the whole
// import; every valid node is assigned identity and persisted.
func (s *DataService) ImportNodes(ctx context.Context, path string) (ports.ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.ImportResult{}, fmt.Errorf("failed to read import file: %w", err)
	}

	var drafts []entities.KnowledgeNode
	if err := json.Unmarshal(raw, &drafts); err != nil {
		var doc importDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return ports.ImportResult{}, fmt.Errorf("unrecognized import format: %w", err)
		}
		drafts = doc.KnowledgeNodes
	}

	res := ports.ImportResult{Success: true}
	now := time.Now()
	for i, draft := range drafts {
		if draft.Title == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("node %d: missing title", i))
			continue
		}
		if draft.Type != "" && !draft.Type.Valid() {
			res.Errors = append(res.Errors, fmt.Sprintf("node %d: unknown type %q", i, draft.Type))
			continue
		}
		if draft.Type == "" {
			draft.Type = "note"
		}
		if draft.ID == "" {
			draft.ID = uuid.New().String()
		}
		if draft.CreatedAt.IsZero() {
			draft.CreatedAt = now
		}
		draft.UpdatedAt = now
		draft.Normalize()
		if err := s.nodes.Put(ctx, draft.ID, draft); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("node %d: %v", i, err))
			continue
		}
		res.Nodes = append(res.Nodes, draft)
	}
	s.logger.Info("import finished",
		zap.Int("imported", len(res.Nodes)),
		zap.Int("failed", len(res.Errors)),
	)
	return res, nil
}

// ExportData writes the payload as indented JSON under the export
// directory.
func (s *DataService) ExportData(ctx context.Context, data any, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	target := filepath.Join(s.exportDir, filename)
	if err := os.WriteFile(target, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	s.logger.Info("export written", zap.String("path", target))
	return nil
}
