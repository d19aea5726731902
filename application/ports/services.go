package ports

import (
	"context"

	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
)

// KnowledgeService is the external boundary for knowledge node persistence
// and search. This is a port in hexagonal architecture - the coordinator
// does not know whether the implementation is local or remote.
type KnowledgeService interface {
	// GetNodes retrieves every node, in insertion order
	GetNodes(ctx context.Context) ([]entities.KnowledgeNode, error)

	// CreateNode persists a draft node, assigning id and timestamps when
	// absent, and returns the stored node
	CreateNode(ctx context.Context, draft entities.KnowledgeNode) (entities.KnowledgeNode, error)

	// UpdateNode merges a partial change-set and returns the merged node
	UpdateNode(ctx context.Context, id string, changes entities.NodeChanges) (entities.KnowledgeNode, error)

	// DeleteNode removes a node
	DeleteNode(ctx context.Context, id string) error

	// SearchNodes returns scored matches for the query
	SearchNodes(ctx context.Context, query string) ([]SearchMatch, error)
}

// SearchMatch is one scored search hit.
type SearchMatch struct {
	Node       entities.KnowledgeNode `json:"node"`
	Score      float64                `json:"score"`
	Highlights []string               `json:"highlights,omitempty"`
	Context    string                 `json:"context,omitempty"`
}

// LearningService is the external boundary for learning records.
type LearningService interface {
	// GetRecords retrieves every learning record, in insertion order
	GetRecords(ctx context.Context) ([]entities.LearningRecord, error)

	// AddRecord persists a record, assigning an id when absent
	AddRecord(ctx context.Context, record entities.LearningRecord) (entities.LearningRecord, error)
}

// UserService is the external boundary for profile and session identity.
type UserService interface {
	// Login establishes the user and returns the stored profile
	Login(ctx context.Context, profile entities.UserProfile) (entities.UserProfile, error)

	// Logout tears the user session down
	Logout(ctx context.Context) error

	// UpdateProfile merges a partial change-set and returns the merged profile
	UpdateProfile(ctx context.Context, id string, changes entities.ProfileChanges) (entities.UserProfile, error)
}

// UploadProgress reports how far an upload has come.
type UploadProgress struct {
	FileName string  `json:"fileName"`
	Loaded   int64   `json:"loaded"`
	Total    int64   `json:"total"`
	Percent  float64 `json:"percent"`
}

// ProgressFunc receives upload progress callbacks.
type ProgressFunc func(UploadProgress)

// FileUpload describes a stored file after upload.
type FileUpload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ContentType      string `json:"type"`
	Size             int64  `json:"size"`
	URL              string `json:"url,omitempty"`
	ExtractedContent string `json:"extractedContent,omitempty"`
}

// FileService is the external boundary for file uploads.
type FileService interface {
	// Upload stores the file at path, streaming progress through onProgress
	// when non-nil
	Upload(ctx context.Context, path string, onProgress ProgressFunc) (FileUpload, error)
}

// ImportResult is the outcome of a bulk node import. Per-item failures are
// collected in Errors without failing the whole import.
type ImportResult struct {
	Success bool                     `json:"success"`
	Nodes   []entities.KnowledgeNode `json:"nodes"`
	Errors  []string                 `json:"errors,omitempty"`
}

// DataService is the external boundary for bulk import/export.
type DataService interface {
	// ImportNodes parses the file at path into nodes
	ImportNodes(ctx context.Context, path string) (ImportResult, error)

	// ExportData serializes data under the given filename
	ExportData(ctx context.Context, data any, filename string) error
}

// SkillStorage is the key-value boundary for skills, used directly by the
// coordinator without a remote service in between.
type SkillStorage interface {
	GetAll(ctx context.Context) ([]entities.Skill, error)
	Save(ctx context.Context, id string, skill entities.Skill) error
}

// AchievementStorage is the key-value boundary for achievements.
type AchievementStorage interface {
	GetAll(ctx context.Context) ([]entities.Achievement, error)
	Save(ctx context.Context, id string, achievement entities.Achievement) error
}

// DailyStat aggregates one day of learning activity.
type DailyStat struct {
	Date          string  `json:"date"`
	Duration      int     `json:"duration"`
	NodesReviewed int     `json:"nodesReviewed"`
	FocusScore    float64 `json:"focusScore"`
}

// LearningStats is the aggregate view the analytics service derives from
// the record collection.
type LearningStats struct {
	TotalMinutes       int         `json:"totalMinutes"`
	TotalSessions      int         `json:"totalSessions"`
	AverageFocus       float64     `json:"averageFocus"`
	TotalInterruptions int         `json:"totalInterruptions"`
	StreakDays         int         `json:"streakDays"`
	Daily              []DailyStat `json:"daily"`
}

// LearningReport is a narrative report over the record collection.
type LearningReport struct {
	GeneratedAt string        `json:"generatedAt"`
	Stats       LearningStats `json:"stats"`
	TopNodes    []string      `json:"topNodes"`
	Summary     string        `json:"summary"`
}

// AnalyticsService derives reports and statistics from learning records.
type AnalyticsService interface {
	GenerateReport(ctx context.Context, records []entities.LearningRecord) (LearningReport, error)
	GetStats(ctx context.Context, records []entities.LearningRecord) (LearningStats, error)
}

// Snapshot is the persisted subset of coordinator state: exactly the fields
// a returning user should see before any remote data loads.
type Snapshot struct {
	User             *entities.UserProfile  `json:"user,omitempty"`
	Theme            valueobjects.Theme     `json:"theme,omitempty"`
	VisualEffects    *bool                  `json:"visualEffects,omitempty"`
	SidebarCollapsed *bool                  `json:"sidebarCollapsed,omitempty"`
	GraphView        valueobjects.GraphView `json:"graphView,omitempty"`
}

// SnapshotStore persists the snapshot across restarts. Load must tolerate a
// missing or corrupt payload by returning ok=false, never an error that
// blocks startup.
type SnapshotStore interface {
	Load() (Snapshot, bool)
	Save(snapshot Snapshot) error
}
