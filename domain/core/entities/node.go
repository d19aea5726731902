package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// KnowledgeNode is the main entity representing a unit of stored knowledge.
// Nodes are exchanged with the knowledge service as JSON documents, so the
// model is serialization-centric: exported fields, no hidden state.
type KnowledgeNode struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Type      valueobjects.NodeType `json:"type"`
	Tags      []string              `json:"tags"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	ParentID  string                `json:"parentId,omitempty"`
	Position  valueobjects.Position `json:"position"`
	Metadata  NodeMetadata          `json:"metadata"`
}

// NodeMetadata carries derived and learning-related node attributes.
// Difficulty and Mastery are clamped to 0-100 on every merge.
type NodeMetadata struct {
	WordCount   int      `json:"wordCount"`
	ReadingTime int      `json:"readingTime"`
	Difficulty  int      `json:"difficulty"`
	Mastery     int      `json:"mastery"`
	Connections []string `json:"connections"`
}

// NodeChanges is a partial update to a node. Nil fields are left untouched.
type NodeChanges struct {
	Title      *string                `json:"title,omitempty"`
	Content    *string                `json:"content,omitempty"`
	Type       *valueobjects.NodeType `json:"type,omitempty"`
	Tags       []string               `json:"tags,omitempty"`
	ParentID   *string                `json:"parentId,omitempty"`
	Position   *valueobjects.Position `json:"position,omitempty"`
	Difficulty *int                   `json:"difficulty,omitempty"`
	Mastery    *int                   `json:"mastery,omitempty"`
}

// Apply merges the change-set into the node and stamps UpdatedAt.
// It returns the merged node; the receiver is not mutated.
func (c NodeChanges) Apply(n KnowledgeNode, now time.Time) KnowledgeNode {
	if c.Title != nil {
		n.Title = *c.Title
	}
	if c.Content != nil {
		n.Content = *c.Content
	}
	if c.Type != nil {
		n.Type = *c.Type
	}
	if c.Tags != nil {
		n.Tags = append([]string(nil), c.Tags...)
	}
	if c.ParentID != nil {
		n.ParentID = *c.ParentID
	}
	if c.Position != nil {
		n.Position = *c.Position
	}
	if c.Difficulty != nil {
		n.Metadata.Difficulty = valueobjects.ClampPercent(*c.Difficulty)
	}
	if c.Mastery != nil {
		n.Metadata.Mastery = valueobjects.ClampPercent(*c.Mastery)
	}
	n.UpdatedAt = now
	return n
}

// Normalize clamps bounded metadata and defaults the tag and connection
// slices so a node deserialized from an external service is always valid.
func (n *KnowledgeNode) Normalize() {
	n.Metadata.Difficulty = valueobjects.ClampPercent(n.Metadata.Difficulty)
	n.Metadata.Mastery = valueobjects.ClampPercent(n.Metadata.Mastery)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Metadata.Connections == nil {
		n.Metadata.Connections = []string{}
	}
}

// HasTag reports whether the node carries the given tag
func (n *KnowledgeNode) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
