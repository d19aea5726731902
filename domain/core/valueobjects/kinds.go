package valueobjects

// NodeType classifies the content stored in a knowledge node
type NodeType string

const (
	NodeTypeMarkdown NodeType = "markdown"
	NodeTypePDF      NodeType = "pdf"
	NodeTypeMindmap  NodeType = "mindmap"
	NodeTypeNote     NodeType = "note"
)

// Valid reports whether t is one of the known node types
func (t NodeType) Valid() bool {
	switch t {
	case NodeTypeMarkdown, NodeTypePDF, NodeTypeMindmap, NodeTypeNote:
		return true
	}
	return false
}

// ActionType classifies what a learning record captured
type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionRead   ActionType = "read"
	ActionEdit   ActionType = "edit"
	ActionReview ActionType = "review"
)

// AchievementKind classifies an achievement
type AchievementKind string

const (
	AchievementLearning    AchievementKind = "learning"
	AchievementConsistency AchievementKind = "consistency"
	AchievementMilestone   AchievementKind = "milestone"
	AchievementSocial      AchievementKind = "social"
)

// Theme is the UI color scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// GraphView selects the knowledge graph projection
type GraphView string

const (
	GraphView2D GraphView = "2d"
	GraphView3D GraphView = "3d"
)

// View names a top-level application view
type View string

const (
	ViewKnowledge View = "knowledge"
	ViewLearning  View = "learning"
	ViewProfile   View = "profile"
	ViewSettings  View = "settings"
)
