package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindvault/domain/core/entities"
)

func testNodes() []entities.KnowledgeNode {
	return []entities.KnowledgeNode{
		{ID: "root"},
		{ID: "a", ParentID: "root"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "a"},
		{ID: "orphan", ParentID: "gone"},
	}
}

func TestNodeGraph_Has(t *testing.T) {
	g := BuildNodeGraph(testNodes())

	assert.True(t, g.Has("root"))
	assert.True(t, g.Has("orphan"))
	assert.False(t, g.Has("gone"))
}

func TestNodeGraph_WouldCreateCycle(t *testing.T) {
	g := BuildNodeGraph(testNodes())

	// Self-parenting is the shortest loop.
	assert.True(t, g.WouldCreateCycle("a", "a"))
	// Reparenting root under a descendant closes root -> a -> b -> root.
	assert.True(t, g.WouldCreateCycle("root", "b"))
	assert.True(t, g.WouldCreateCycle("a", "c"))
	// Moving a leaf under a sibling is fine.
	assert.False(t, g.WouldCreateCycle("b", "c"))
	assert.False(t, g.WouldCreateCycle("orphan", "root"))
	assert.False(t, g.WouldCreateCycle("a", ""))
}

func TestNodeGraph_WouldCreateCycleTerminatesOnExistingLoop(t *testing.T) {
	// x and y already form a loop that does not involve z.
	g := BuildNodeGraph([]entities.KnowledgeNode{
		{ID: "x", ParentID: "y"},
		{ID: "y", ParentID: "x"},
		{ID: "z"},
	})

	// The walk must not spin; attaching z into the loop is rejected.
	assert.True(t, g.WouldCreateCycle("z", "x"))
}

func TestNodeGraph_Roots(t *testing.T) {
	nodes := testNodes()
	g := BuildNodeGraph(nodes)

	// A dangling parent reference counts as a root.
	assert.Equal(t, []string{"root", "orphan"}, g.Roots(nodes))
}

func TestNodeGraph_Children(t *testing.T) {
	nodes := testNodes()
	g := BuildNodeGraph(nodes)

	assert.Equal(t, []string{"b", "c"}, g.Children(nodes, "a"))
	assert.Empty(t, g.Children(nodes, "b"))
}
