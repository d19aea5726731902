package store

import (
	"context"
	"sort"

	"mindvault/application/ports"
)

// Search derives the scored result view for the query. An empty query
// clears query and results synchronously without touching the knowledge
// service. On success the results replace the previous view, sorted by
// descending score and stable on ties in service order.
//
// Two overlapping searches may settle in either order and the later
// completion wins; there is deliberately no correlation token guarding a
// stale completion against a newer query.
func (s *Store) Search(ctx context.Context, query string) {
	if query == "" {
		s.ClearSearch()
		return
	}

	s.setLoading(LoadSearch, true)
	defer s.setLoading(LoadSearch, false)

	execute(s, ctx, "search",
		func(ctx context.Context) ([]ports.SearchMatch, error) {
			return s.services.Knowledge.SearchNodes(ctx, query)
		},
		func(matches []ports.SearchMatch) {
			sort.SliceStable(matches, func(i, j int) bool {
				return matches[i].Score > matches[j].Score
			})
			s.searchResults = matches
			s.searchQuery = query
		})
}

// ClearSearch empties the query and results atomically.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	s.searchQuery = ""
	s.searchResults = nil
	s.mu.Unlock()
	s.afterChange()
}

// SearchQuery returns the query the current results belong to.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SearchResults returns a copy of the current scored results.
func (s *Store) SearchResults() []ports.SearchMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.SearchMatch(nil), s.searchResults...)
}
