// Package fixtures provides builders for test entities with sensible
// defaults.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
)

// NodeBuilder helps create test nodes with default values.
type NodeBuilder struct {
	node entities.KnowledgeNode
}

func NewNodeBuilder() *NodeBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &NodeBuilder{node: entities.KnowledgeNode{
		ID:        uuid.NewString(),
		Title:     "Test Node",
		Content:   "Test content",
		Type:      valueobjects.NodeTypeNote,
		Tags:      []string{"test"},
		CreatedAt: now,
		UpdatedAt: now,
		Metadata: entities.NodeMetadata{
			Connections: []string{},
		},
	}}
}

func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.node.ID = id
	return b
}

func (b *NodeBuilder) WithTitle(title string) *NodeBuilder {
	b.node.Title = title
	return b
}

func (b *NodeBuilder) WithContent(content string) *NodeBuilder {
	b.node.Content = content
	return b
}

func (b *NodeBuilder) WithType(t valueobjects.NodeType) *NodeBuilder {
	b.node.Type = t
	return b
}

func (b *NodeBuilder) WithTags(tags ...string) *NodeBuilder {
	b.node.Tags = tags
	return b
}

func (b *NodeBuilder) WithParent(parentID string) *NodeBuilder {
	b.node.ParentID = parentID
	return b
}

func (b *NodeBuilder) WithMastery(mastery int) *NodeBuilder {
	b.node.Metadata.Mastery = mastery
	return b
}

func (b *NodeBuilder) Build() entities.KnowledgeNode {
	return b.node
}

// RecordBuilder helps create test learning records with default values.
type RecordBuilder struct {
	record entities.LearningRecord
}

func NewRecordBuilder() *RecordBuilder {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &RecordBuilder{record: entities.LearningRecord{
		ID:         uuid.NewString(),
		NodeID:     "node-1",
		Action:     valueobjects.ActionRead,
		Duration:   30,
		Timestamp:  at,
		Date:       at,
		Topic:      "Testing",
		Type:       "session",
		FocusLevel: 80,
	}}
}

func (b *RecordBuilder) WithNodeID(nodeID string) *RecordBuilder {
	b.record.NodeID = nodeID
	return b
}

func (b *RecordBuilder) WithAction(action valueobjects.ActionType) *RecordBuilder {
	b.record.Action = action
	return b
}

func (b *RecordBuilder) WithDuration(minutes int) *RecordBuilder {
	b.record.Duration = minutes
	return b
}

func (b *RecordBuilder) WithFocus(level int) *RecordBuilder {
	b.record.FocusLevel = level
	return b
}

func (b *RecordBuilder) WithInterruptions(n int) *RecordBuilder {
	b.record.Interruptions = n
	return b
}

func (b *RecordBuilder) At(t time.Time) *RecordBuilder {
	b.record.Timestamp = t
	b.record.Date = t
	return b
}

func (b *RecordBuilder) Build() entities.LearningRecord {
	return b.record
}

// Profile returns a logged-in user profile for tests.
func Profile(name string) entities.UserProfile {
	return entities.UserProfile{
		ID:       uuid.NewString(),
		Name:     name,
		JoinedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Preferences: entities.Preferences{
			Theme:         valueobjects.ThemeDark,
			Language:      "en",
			Notifications: true,
			AutoSave:      true,
			VisualEffects: true,
		},
	}
}

// Achievement returns a locked achievement tracking the given requirement.
func Achievement(id string, reqType string, target int) entities.Achievement {
	return entities.Achievement{
		ID:    id,
		Title: "Test Achievement",
		Type:  valueobjects.AchievementMilestone,
		Requirements: []entities.Requirement{
			{Type: reqType, Target: target},
		},
	}
}

// Skill returns a skill fixture.
func Skill(id, name string) entities.Skill {
	return entities.Skill{
		ID:            id,
		Name:          name,
		Category:      "testing",
		Level:         10,
		Progress:      25,
		Experience:    100,
		LastPracticed: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		RelatedNodes:  []string{},
		Color:         "#10b981",
	}
}
