// Package mocks provides in-memory mock implementations of the service
// ports for testing the coordinator without real storage.
package mocks

import (
	"context"
	"strconv"
	"sync"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
)

// methodTracker records call counts per method and lets tests configure
// error injection for specific methods.
type methodTracker struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func newTracker() methodTracker {
	return methodTracker{
		calls: make(map[string]int),
		fail:  make(map[string]error),
	}
}

// called increments the method counter and returns the configured error,
// if any.
func (t *methodTracker) called(method string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls[method]++
	return t.fail[method]
}

// FailWith configures the mock to return err from the given method.
func (t *methodTracker) FailWith(method string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fail[method] = err
}

// Calls reports how many times the given method was invoked.
func (t *methodTracker) Calls(method string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[method]
}

// MockKnowledgeService is an in-memory ports.KnowledgeService.
type MockKnowledgeService struct {
	methodTracker
	Nodes   []entities.KnowledgeNode
	Matches []ports.SearchMatch

	// SearchHook, when set, answers SearchNodes instead of Matches. It is
	// called without the mock's lock held so it may block to stage
	// overlapping searches.
	SearchHook func(query string) []ports.SearchMatch

	nextID int
}

func NewMockKnowledgeService() *MockKnowledgeService {
	return &MockKnowledgeService{methodTracker: newTracker()}
}

func (m *MockKnowledgeService) GetNodes(ctx context.Context) ([]entities.KnowledgeNode, error) {
	if err := m.called("GetNodes"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.KnowledgeNode(nil), m.Nodes...), nil
}

func (m *MockKnowledgeService) CreateNode(ctx context.Context, draft entities.KnowledgeNode) (entities.KnowledgeNode, error) {
	if err := m.called("CreateNode"); err != nil {
		return entities.KnowledgeNode{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if draft.ID == "" {
		m.nextID++
		draft.ID = "node-" + strconv.Itoa(m.nextID)
	}
	m.Nodes = append(m.Nodes, draft)
	return draft, nil
}

func (m *MockKnowledgeService) UpdateNode(ctx context.Context, id string, changes entities.NodeChanges) (entities.KnowledgeNode, error) {
	if err := m.called("UpdateNode"); err != nil {
		return entities.KnowledgeNode{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			m.Nodes[i] = changes.Apply(m.Nodes[i], m.Nodes[i].UpdatedAt)
			return m.Nodes[i], nil
		}
	}
	return entities.KnowledgeNode{}, errNotFound("node")
}

func (m *MockKnowledgeService) DeleteNode(ctx context.Context, id string) error {
	if err := m.called("DeleteNode"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			m.Nodes = append(m.Nodes[:i], m.Nodes[i+1:]...)
			return nil
		}
	}
	return errNotFound("node")
}

func (m *MockKnowledgeService) SearchNodes(ctx context.Context, query string) ([]ports.SearchMatch, error) {
	if err := m.called("SearchNodes"); err != nil {
		return nil, err
	}
	if m.SearchHook != nil {
		return m.SearchHook(query), nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.SearchMatch(nil), m.Matches...), nil
}

// MockLearningService is an in-memory ports.LearningService.
type MockLearningService struct {
	methodTracker
	Records []entities.LearningRecord

	nextID int
}

func NewMockLearningService() *MockLearningService {
	return &MockLearningService{methodTracker: newTracker()}
}

func (m *MockLearningService) GetRecords(ctx context.Context) ([]entities.LearningRecord, error) {
	if err := m.called("GetRecords"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.LearningRecord(nil), m.Records...), nil
}

func (m *MockLearningService) AddRecord(ctx context.Context, record entities.LearningRecord) (entities.LearningRecord, error) {
	if err := m.called("AddRecord"); err != nil {
		return entities.LearningRecord{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if record.ID == "" {
		m.nextID++
		record.ID = "record-" + strconv.Itoa(m.nextID)
	}
	m.Records = append(m.Records, record)
	return record, nil
}

// MockUserService is an in-memory ports.UserService.
type MockUserService struct {
	methodTracker
	Profile *entities.UserProfile
}

func NewMockUserService() *MockUserService {
	return &MockUserService{methodTracker: newTracker()}
}

func (m *MockUserService) Login(ctx context.Context, profile entities.UserProfile) (entities.UserProfile, error) {
	if err := m.called("Login"); err != nil {
		return entities.UserProfile{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile.ID == "" {
		profile.ID = "user-1"
	}
	m.Profile = &profile
	return profile, nil
}

func (m *MockUserService) Logout(ctx context.Context) error {
	if err := m.called("Logout"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Profile = nil
	return nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id string, changes entities.ProfileChanges) (entities.UserProfile, error) {
	if err := m.called("UpdateProfile"); err != nil {
		return entities.UserProfile{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Profile == nil || m.Profile.ID != id {
		return entities.UserProfile{}, errNotFound("user")
	}
	merged := changes.Apply(*m.Profile)
	m.Profile = &merged
	return merged, nil
}

// MockFileService is an in-memory ports.FileService. Progress steps are
// replayed through the callback before the upload settles.
type MockFileService struct {
	methodTracker
	Upload_   ports.FileUpload
	Progress_ []ports.UploadProgress
}

func NewMockFileService() *MockFileService {
	return &MockFileService{methodTracker: newTracker()}
}

func (m *MockFileService) Upload(ctx context.Context, path string, onProgress ports.ProgressFunc) (ports.FileUpload, error) {
	if err := m.called("Upload"); err != nil {
		return ports.FileUpload{}, err
	}
	if onProgress != nil {
		for _, p := range m.Progress_ {
			onProgress(p)
		}
	}
	return m.Upload_, nil
}

// MockDataService is an in-memory ports.DataService.
type MockDataService struct {
	methodTracker
	ImportResult_ ports.ImportResult
	Exported      []string
}

func NewMockDataService() *MockDataService {
	return &MockDataService{methodTracker: newTracker()}
}

func (m *MockDataService) ImportNodes(ctx context.Context, path string) (ports.ImportResult, error) {
	if err := m.called("ImportNodes"); err != nil {
		return ports.ImportResult{}, err
	}
	return m.ImportResult_, nil
}

func (m *MockDataService) ExportData(ctx context.Context, data any, filename string) error {
	if err := m.called("ExportData"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Exported = append(m.Exported, filename)
	return nil
}

// MockAnalyticsService returns canned analytics results.
type MockAnalyticsService struct {
	methodTracker
	Report_ ports.LearningReport
	Stats_  ports.LearningStats
}

func NewMockAnalyticsService() *MockAnalyticsService {
	return &MockAnalyticsService{methodTracker: newTracker()}
}

func (m *MockAnalyticsService) GenerateReport(ctx context.Context, records []entities.LearningRecord) (ports.LearningReport, error) {
	if err := m.called("GenerateReport"); err != nil {
		return ports.LearningReport{}, err
	}
	return m.Report_, nil
}

func (m *MockAnalyticsService) GetStats(ctx context.Context, records []entities.LearningRecord) (ports.LearningStats, error) {
	if err := m.called("GetStats"); err != nil {
		return ports.LearningStats{}, err
	}
	return m.Stats_, nil
}

// MockSkillStorage is an in-memory ports.SkillStorage.
type MockSkillStorage struct {
	methodTracker
	Skills []entities.Skill
}

func NewMockSkillStorage() *MockSkillStorage {
	return &MockSkillStorage{methodTracker: newTracker()}
}

func (m *MockSkillStorage) GetAll(ctx context.Context) ([]entities.Skill, error) {
	if err := m.called("GetAll"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.Skill(nil), m.Skills...), nil
}

func (m *MockSkillStorage) Save(ctx context.Context, id string, skill entities.Skill) error {
	if err := m.called("Save"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Skills {
		if m.Skills[i].ID == id {
			m.Skills[i] = skill
			return nil
		}
	}
	m.Skills = append(m.Skills, skill)
	return nil
}

// MockAchievementStorage is an in-memory ports.AchievementStorage.
type MockAchievementStorage struct {
	methodTracker
	Achievements []entities.Achievement
}

func NewMockAchievementStorage() *MockAchievementStorage {
	return &MockAchievementStorage{methodTracker: newTracker()}
}

func (m *MockAchievementStorage) GetAll(ctx context.Context) ([]entities.Achievement, error) {
	if err := m.called("GetAll"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.Achievement(nil), m.Achievements...), nil
}

func (m *MockAchievementStorage) Save(ctx context.Context, id string, achievement entities.Achievement) error {
	if err := m.called("Save"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Achievements {
		if m.Achievements[i].ID == id {
			m.Achievements[i] = achievement
			return nil
		}
	}
	m.Achievements = append(m.Achievements, achievement)
	return nil
}

// MockSnapshotStore keeps the persisted subset in memory.
type MockSnapshotStore struct {
	methodTracker
	Snapshot *ports.Snapshot
}

func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{methodTracker: newTracker()}
}

func (m *MockSnapshotStore) Load() (ports.Snapshot, bool) {
	m.called("Load")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Snapshot == nil {
		return ports.Snapshot{}, false
	}
	return *m.Snapshot, true
}

func (m *MockSnapshotStore) Save(snapshot ports.Snapshot) error {
	if err := m.called("Save"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := snapshot
	m.Snapshot = &snap
	return nil
}

type errNotFound string

func (e errNotFound) Error() string { return string(e) + " not found" }
