// Package store implements the application state coordinator: the single
// authoritative in-process model owning every domain entity and session.
// All mutating commands go through the store, which reconciles them with
// the external service layer, keeps derived views (selection, search
// results, stats) consistent, and persists a fixed subset of state across
// restarts.
package store

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
)

// LoadCategory names one per-resource busy flag. Categories are independent
// so one slow operation does not block progress indicators for another.
type LoadCategory string

const (
	LoadNodes   LoadCategory = "nodes"
	LoadSearch  LoadCategory = "search"
	LoadUpload  LoadCategory = "upload"
	LoadRecords LoadCategory = "records"
	LoadSkills  LoadCategory = "skills"
	LoadExport  LoadCategory = "export"
)

// Services bundles the external service boundary the coordinator talks to.
type Services struct {
	Knowledge    ports.KnowledgeService
	Learning     ports.LearningService
	User         ports.UserService
	File         ports.FileService
	Data         ports.DataService
	Analytics    ports.AnalyticsService
	Skills       ports.SkillStorage
	Achievements ports.AchievementStorage
}

// Store is the application state coordinator. All state lives behind one
// mutex; commands release it across external calls and apply results on
// settle, so two in-flight operations may finish in either order and the
// later completion wins on shared fields (error slot, selection).
type Store struct {
	mu sync.Mutex

	services  Services
	snapshots ports.SnapshotStore
	logger    *zap.Logger
	validate  *validator.Validate
	now       func() time.Time

	// Domain collections, insertion-ordered.
	user          *entities.UserProfile
	nodes         []entities.KnowledgeNode
	records       []entities.LearningRecord
	skills        []entities.Skill
	achievements  []entities.Achievement
	session       entities.Session
	selectedID    string
	searchQuery   string
	searchResults []ports.SearchMatch

	// UI state.
	sidebarCollapsed    bool
	currentView         valueobjects.View
	theme               valueobjects.Theme
	visualEffects       bool
	notifications       entities.Notifications
	graphView           valueobjects.GraphView
	selectedConnections []string

	loading        map[LoadCategory]bool
	lastError      error
	uploadProgress *ports.UploadProgress
	initialized    bool

	listeners    map[int]func()
	nextListener int
}

// New creates a coordinator with default state, then merges the persisted
// snapshot under it so a returning user sees their profile and theme before
// any remote load completes.
func New(services Services, snapshots ports.SnapshotStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		services:  services,
		snapshots: snapshots,
		logger:    logger,
		validate:  validator.New(),
		now:       time.Now,

		session:       entities.IdleSession{},
		currentView:   valueobjects.ViewKnowledge,
		theme:         valueobjects.ThemeDark,
		visualEffects: true,
		notifications: entities.Notifications{Email: true, Push: true, Desktop: true, Sound: true},
		graphView:     valueobjects.GraphView3D,

		loading:   make(map[LoadCategory]bool),
		listeners: make(map[int]func()),
	}
	s.restoreSnapshot()
	return s
}

// restoreSnapshot merges the persisted subset under the defaults. A missing
// or corrupt payload leaves the defaults untouched.
func (s *Store) restoreSnapshot() {
	if s.snapshots == nil {
		return
	}
	snap, ok := s.snapshots.Load()
	if !ok {
		return
	}
	if snap.User != nil {
		u := *snap.User
		s.user = &u
	}
	if snap.Theme != "" {
		s.theme = snap.Theme
	}
	if snap.VisualEffects != nil {
		s.visualEffects = *snap.VisualEffects
	}
	if snap.SidebarCollapsed != nil {
		s.sidebarCollapsed = *snap.SidebarCollapsed
	}
	if snap.GraphView != "" {
		s.graphView = snap.GraphView
	}
	s.logger.Debug("restored persisted state", zap.Bool("hasUser", snap.User != nil))
}

// Subscribe registers a listener called after every committed state change.
// The returned function unsubscribes it.
func (s *Store) Subscribe(listener func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// afterChange persists the subset and notifies subscribers. It must be
// called without the lock held: listeners are free to call back into the
// store, and the snapshot write happens outside the critical section.
func (s *Store) afterChange() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.Save(snap); err != nil {
			s.logger.Warn("failed to persist state subset", zap.Error(err))
		}
	}
	for _, l := range listeners {
		l()
	}
}

// snapshotLocked builds the persisted subset from current state.
func (s *Store) snapshotLocked() ports.Snapshot {
	snap := ports.Snapshot{
		Theme:     s.theme,
		GraphView: s.graphView,
	}
	ve, sc := s.visualEffects, s.sidebarCollapsed
	snap.VisualEffects = &ve
	snap.SidebarCollapsed = &sc
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Loading reports the busy flag for one resource category.
func (s *Store) Loading(category LoadCategory) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[category]
}

// Err returns the shared error slot. The slot holds the most recent failure
// only: concurrent failures exhibit last-write-wins visibility, and
// consumers should treat the value as ephemeral.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// ClearError empties the shared error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastError = nil
	s.mu.Unlock()
	s.afterChange()
}

// Initialized reports whether the bootstrap has settled.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// UploadProgress returns the progress of the upload in flight, if any.
func (s *Store) UploadProgress() *ports.UploadProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadProgress == nil {
		return nil
	}
	p := *s.uploadProgress
	return &p
}
