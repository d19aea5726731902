package aggregates

import (
	"mindvault/domain/core/entities"
)

// NodeGraph is an id-indexed view over the node collection used for
// parent-reference checks. Parent links form a general graph, not a tree:
// nothing in the data model rules out cycles, so cycle detection is an
// explicit traversal run on mutation rather than a structural invariant.
type NodeGraph struct {
	parents map[string]string
	ids     map[string]struct{}
}

// BuildNodeGraph indexes the given nodes by id and parent link.
func BuildNodeGraph(nodes []entities.KnowledgeNode) *NodeGraph {
	g := &NodeGraph{
		parents: make(map[string]string, len(nodes)),
		ids:     make(map[string]struct{}, len(nodes)),
	}
	for _, n := range nodes {
		g.ids[n.ID] = struct{}{}
		if n.ParentID != "" {
			g.parents[n.ID] = n.ParentID
		}
	}
	return g
}

// Has reports whether the graph contains the given node id.
func (g *NodeGraph) Has(id string) bool {
	_, ok := g.ids[id]
	return ok
}

// WouldCreateCycle reports whether re-parenting node id under parentID
// would close a parent loop. It walks the parent chain from parentID;
// the walk is bounded by the visited set, so a pre-existing cycle that
// does not involve id terminates cleanly.
func (g *NodeGraph) WouldCreateCycle(id, parentID string) bool {
	if parentID == "" {
		return false
	}
	if id == parentID {
		return true
	}
	visited := map[string]struct{}{id: {}}
	current := parentID
	for current != "" {
		if _, seen := visited[current]; seen {
			return true
		}
		visited[current] = struct{}{}
		current = g.parents[current]
	}
	return false
}

// Roots returns the ids of all nodes without a (resolvable) parent,
// preserving the order of the input nodes.
func (g *NodeGraph) Roots(nodes []entities.KnowledgeNode) []string {
	var roots []string
	for _, n := range nodes {
		if n.ParentID == "" || !g.Has(n.ParentID) {
			roots = append(roots, n.ID)
		}
	}
	return roots
}

// Children returns the ids of all direct children of parentID,
// preserving the order of the input nodes.
func (g *NodeGraph) Children(nodes []entities.KnowledgeNode, parentID string) []string {
	var children []string
	for _, n := range nodes {
		if n.ParentID == parentID {
			children = append(children, n.ID)
		}
	}
	return children
}
