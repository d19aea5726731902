// Package local implements the external service contracts against the
// embedded document store, mirroring the hosted services' envelope
// semantics so the coordinator cannot tell them apart.
package local

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
	"mindvault/infrastructure/persistence/sqlite"
	pkgerrors "mindvault/pkg/errors"
)

// KnowledgeService stores knowledge nodes in the embedded document store.
type KnowledgeService struct {
	nodes  *sqlite.Collection[entities.KnowledgeNode]
	logger *zap.Logger
}

// NewKnowledgeService creates a knowledge service over db.
func NewKnowledgeService(db *sqlite.DB, logger *zap.Logger) *KnowledgeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KnowledgeService{
		nodes:  sqlite.NewCollection[entities.KnowledgeNode](db, sqlite.KindNode),
		logger: logger,
	}
}

// GetNodes returns every node in insertion order.
func (s *KnowledgeService) GetNodes(ctx context.Context) ([]entities.KnowledgeNode, error) {
	return s.nodes.All(ctx)
}

// CreateNode assigns id and timestamps when absent, derives the content
// metadata and persists the node.
func (s *KnowledgeService) CreateNode(ctx context.Context, draft entities.KnowledgeNode) (entities.KnowledgeNode, error) {
	now := time.Now()
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	if draft.UpdatedAt.IsZero() {
		draft.UpdatedAt = now
	}
	deriveContentMetadata(&draft)
	draft.Normalize()
	if err := s.nodes.Put(ctx, draft.ID, draft); err != nil {
		return entities.KnowledgeNode{}, err
	}
	s.logger.Debug("node stored", zap.String("id", draft.ID))
	return draft, nil
}

// UpdateNode merges the change-set into the stored node and persists the
// result. An absent id fails with a not found error.
func (s *KnowledgeService) UpdateNode(ctx context.Context, id string, changes entities.NodeChanges) (entities.KnowledgeNode, error) {
	node, ok, err := s.nodes.Get(ctx, id)
	if err != nil {
		return entities.KnowledgeNode{}, err
	}
	if !ok {
		return entities.KnowledgeNode{}, pkgerrors.NewNotFoundError("node")
	}
	merged := changes.Apply(node, time.Now())
	if changes.Content != nil {
		deriveContentMetadata(&merged)
	}
	merged.Normalize()
	if err := s.nodes.Put(ctx, id, merged); err != nil {
		return entities.KnowledgeNode{}, err
	}
	return merged, nil
}

// DeleteNode removes a node; an absent id fails with a not found error.
func (s *KnowledgeService) DeleteNode(ctx context.Context, id string) error {
	deleted, err := s.nodes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return pkgerrors.NewNotFoundError("node")
	}
	return nil
}

// SearchNodes scores every node against the query: title hits weigh 3,
// tag hits 2, content hits 1 per occurrence. Zero-score nodes are
// excluded; ordering is left to the caller.
func (s *KnowledgeService) SearchNodes(ctx context.Context, query string) ([]ports.SearchMatch, error) {
	nodes, err := s.nodes.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var matches []ports.SearchMatch
	for _, node := range nodes {
		score := 0.0
		var highlights []string
		if strings.Contains(strings.ToLower(node.Title), q) {
			score += 3
			highlights = append(highlights, "title")
		}
		for _, tag := range node.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += 2
				highlights = append(highlights, "tag:"+tag)
			}
		}
		content := strings.ToLower(node.Content)
		if n := strings.Count(content, q); n > 0 {
			score += float64(n)
			highlights = append(highlights, "content")
		}
		if score == 0 {
			continue
		}
		matches = append(matches, ports.SearchMatch{
			Node:       node,
			Score:      score,
			Highlights: highlights,
			Context:    snippet(node.Content, q),
		})
	}
	return matches, nil
}

// snippet cuts a short window around the first content hit.
func snippet(content, q string) string {
	idx := strings.Index(strings.ToLower(content), q)
	if idx < 0 {
		return ""
	}
	start := idx - 40
	if start < 0 {
		start = 0
	}
	end := idx + len(q) + 40
	if end > len(content) {
		end = len(content)
	}
	return content[start:end]
}

// deriveContentMetadata recomputes word count and reading time (200 wpm,
// rounded up) from the node content.
func deriveContentMetadata(node *entities.KnowledgeNode) {
	words := len(strings.Fields(node.Content))
	node.Metadata.WordCount = words
	node.Metadata.ReadingTime = (words + 199) / 200
}
