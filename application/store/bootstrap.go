package store

import (
	"context"
	"sync"
)

// Initialize bootstraps the collections: nodes, records and
// skills/achievements load concurrently, each owning its busy flag and
// reporting its own failure into the shared error slot. One category's
// failure neither cancels nor blocks the others; the store is considered
// initialized once all three loads have settled, so a fully failed
// bootstrap still yields a navigable application showing partial data plus
// an error instead of hanging.
func (s *Store) Initialize(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.LoadNodes(ctx)
	}()
	go func() {
		defer wg.Done()
		s.LoadRecords(ctx)
	}()
	go func() {
		defer wg.Done()
		s.LoadSkillsAndAchievements(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	s.afterChange()
	s.logger.Info("application state initialized")
}
