package store

import (
	"context"

	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/domain/core/aggregates"
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
	"mindvault/pkg/utils"
)

// CreateNodeInput is the command payload for creating a knowledge node.
type CreateNodeInput struct {
	Title      string                `validate:"required,min=1,max=200"`
	Content    string                `validate:"max=100000"`
	Type       valueobjects.NodeType `validate:"required,oneof=markdown pdf mindmap note"`
	Tags       []string              `validate:"max=20,dive,min=1,max=30"`
	ParentID   string
	Position   valueobjects.Position
	Difficulty int `validate:"min=0,max=100"`
	Mastery    int `validate:"min=0,max=100"`
}

// LoadNodes replaces the node collection from the knowledge service.
// Failure leaves the collection untouched and lands in the error slot.
func (s *Store) LoadNodes(ctx context.Context) {
	s.setLoading(LoadNodes, true)
	defer s.setLoading(LoadNodes, false)

	execute(s, ctx, "load nodes",
		func(ctx context.Context) ([]entities.KnowledgeNode, error) {
			return s.services.Knowledge.GetNodes(ctx)
		},
		func(nodes []entities.KnowledgeNode) {
			for i := range nodes {
				nodes[i].Normalize()
			}
			s.nodes = nodes
		})
}

// CreateNode validates the input, persists the node through the knowledge
// service and appends the stored node. A present user has stats.totalNodes
// incremented by exactly one in the same step.
func (s *Store) CreateNode(ctx context.Context, input CreateNodeInput) result.Result[entities.KnowledgeNode] {
	if err := s.validate.Struct(input); err != nil {
		return failBefore[entities.KnowledgeNode](s, pkgerrors.NewValidationError(utils.FormatValidationError(err)))
	}
	if input.ParentID != "" && !s.hasNode(input.ParentID) {
		return failBefore[entities.KnowledgeNode](s, pkgerrors.NewValidationError("parent node does not exist"))
	}

	draft := entities.KnowledgeNode{
		Title:    input.Title,
		Content:  input.Content,
		Type:     input.Type,
		Tags:     append([]string(nil), input.Tags...),
		ParentID: input.ParentID,
		Position: input.Position,
		Metadata: entities.NodeMetadata{
			Difficulty: valueobjects.ClampPercent(input.Difficulty),
			Mastery:    valueobjects.ClampPercent(input.Mastery),
		},
	}

	return execute(s, ctx, "create node",
		func(ctx context.Context) (entities.KnowledgeNode, error) {
			return s.services.Knowledge.CreateNode(ctx, draft)
		},
		func(node entities.KnowledgeNode) {
			node.Normalize()
			s.nodes = append(s.nodes, node)
			if s.user != nil {
				s.user.Stats.TotalNodes++
			}
			s.logger.Debug("node created", zap.String("id", node.ID))
		})
}

// UpdateNode merges a partial change-set into one node. A change of parent
// is checked against the id-indexed graph: the parent must exist and must
// not close a parent loop. When the updated node is the current selection
// the selection follows the merged value in the same step.
func (s *Store) UpdateNode(ctx context.Context, id string, changes entities.NodeChanges) result.Result[entities.KnowledgeNode] {
	if changes.ParentID != nil && *changes.ParentID != "" {
		s.mu.Lock()
		graph := aggregates.BuildNodeGraph(s.nodes)
		s.mu.Unlock()
		if !graph.Has(*changes.ParentID) {
			return failBefore[entities.KnowledgeNode](s, pkgerrors.NewValidationError("parent node does not exist"))
		}
		if graph.WouldCreateCycle(id, *changes.ParentID) {
			return failBefore[entities.KnowledgeNode](s, pkgerrors.NewValidationError("parent change would create a cycle"))
		}
	}

	return execute(s, ctx, "update node",
		func(ctx context.Context) (entities.KnowledgeNode, error) {
			return s.services.Knowledge.UpdateNode(ctx, id, changes)
		},
		func(node entities.KnowledgeNode) {
			node.Normalize()
			for i := range s.nodes {
				if s.nodes[i].ID == id {
					s.nodes[i] = node
					break
				}
			}
		})
}

// DeleteNode removes a node. A missing id is a non-fatal NotFound failure:
// the collection and selection stay untouched. Deleting the selected node
// clears the selection in the same step.
func (s *Store) DeleteNode(ctx context.Context, id string) result.Result[struct{}] {
	return execute(s, ctx, "delete node",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.services.Knowledge.DeleteNode(ctx, id)
		},
		func(struct{}) {
			kept := s.nodes[:0]
			for _, n := range s.nodes {
				if n.ID != id {
					kept = append(kept, n)
				}
			}
			s.nodes = kept
			if s.selectedID == id {
				s.selectedID = ""
			}
		})
}

// SelectNode marks a node as the current selection; an empty id clears it.
func (s *Store) SelectNode(id string) error {
	if id != "" && !s.hasNode(id) {
		return pkgerrors.NewNotFoundError("node")
	}
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()
	s.afterChange()
	return nil
}

// SelectedNode returns a copy of the selected node, or nil when there is
// no selection. Selection is a side table keyed by id, so it can never
// dangle: a deleted selection resolves to nil.
func (s *Store) SelectedNode() *entities.KnowledgeNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return nil
	}
	for _, n := range s.nodes {
		if n.ID == s.selectedID {
			node := n
			return &node
		}
	}
	return nil
}

// Nodes returns a copy of the node collection in insertion order.
func (s *Store) Nodes() []entities.KnowledgeNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.KnowledgeNode(nil), s.nodes...)
}

// NodeByID looks a node up by id.
func (s *Store) NodeByID(id string) (entities.KnowledgeNode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return entities.KnowledgeNode{}, false
}

// ImportNodes parses a file through the data service and appends every
// imported node. Per-item failures are reported in the import result, not
// the shared error slot.
func (s *Store) ImportNodes(ctx context.Context, path string) ports.ImportResult {
	res, err := s.services.Data.ImportNodes(ctx, path)
	if err != nil {
		appErr := pkgerrors.Wrap(err, "import failed")
		s.reportError(appErr)
		return ports.ImportResult{Success: false, Errors: []string{appErr.Error()}}
	}
	if len(res.Nodes) > 0 {
		s.mu.Lock()
		for i := range res.Nodes {
			res.Nodes[i].Normalize()
		}
		s.nodes = append(s.nodes, res.Nodes...)
		s.mu.Unlock()
		s.afterChange()
	}
	return res
}

func (s *Store) hasNode(id string) bool {
	_, ok := s.NodeByID(id)
	return ok
}
