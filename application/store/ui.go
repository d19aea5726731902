package store

import (
	"mindvault/domain/core/entities"
	"mindvault/domain/core/valueobjects"
)

// ToggleSidebar flips the sidebar collapse flag.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.sidebarCollapsed = !s.sidebarCollapsed
	s.mu.Unlock()
	s.afterChange()
}

// SidebarCollapsed reports the sidebar collapse flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarCollapsed
}

// SetCurrentView switches the active application view.
func (s *Store) SetCurrentView(view valueobjects.View) {
	s.mu.Lock()
	s.currentView = view
	s.mu.Unlock()
	s.afterChange()
}

// CurrentView returns the active application view.
func (s *Store) CurrentView() valueobjects.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

// SetTheme switches the color scheme.
func (s *Store) SetTheme(theme valueobjects.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.afterChange()
}

// Theme returns the active color scheme.
func (s *Store) Theme() valueobjects.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetVisualEffects turns the particle and 3D effects on or off.
func (s *Store) SetVisualEffects(enabled bool) {
	s.mu.Lock()
	s.visualEffects = enabled
	s.mu.Unlock()
	s.afterChange()
}

// ToggleVisualEffects flips the visual effects flag.
func (s *Store) ToggleVisualEffects() {
	s.mu.Lock()
	s.visualEffects = !s.visualEffects
	s.mu.Unlock()
	s.afterChange()
}

// VisualEffects reports whether visual effects are enabled.
func (s *Store) VisualEffects() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visualEffects
}

// SetNotifications replaces the per-channel notification toggles.
func (s *Store) SetNotifications(n entities.Notifications) {
	s.mu.Lock()
	s.notifications = n
	s.mu.Unlock()
	s.afterChange()
}

// Notifications returns the per-channel notification toggles.
func (s *Store) Notifications() entities.Notifications {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

// SetGraphView switches between the 2D and 3D graph projections.
func (s *Store) SetGraphView(view valueobjects.GraphView) {
	s.mu.Lock()
	s.graphView = view
	s.mu.Unlock()
	s.afterChange()
}

// GraphView returns the active graph projection.
func (s *Store) GraphView() valueobjects.GraphView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graphView
}

// ToggleConnection adds the connection id to the highlighted set, or
// removes it when already present.
func (s *Store) ToggleConnection(connectionID string) {
	s.mu.Lock()
	kept := s.selectedConnections[:0]
	found := false
	for _, id := range s.selectedConnections {
		if id == connectionID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if found {
		s.selectedConnections = kept
	} else {
		s.selectedConnections = append(s.selectedConnections, connectionID)
	}
	s.mu.Unlock()
	s.afterChange()
}

// SelectedConnections returns a copy of the highlighted connection ids.
func (s *Store) SelectedConnections() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selectedConnections...)
}
