package store

import (
	"context"

	"go.uber.org/zap"

	"mindvault/domain/core/entities"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
)

// SetUser installs or clears the logged-in user directly, bypassing the
// user service. Authentication state is derived: a nil user means logged
// out.
func (s *Store) SetUser(user *entities.UserProfile) {
	s.mu.Lock()
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	s.mu.Unlock()
	s.afterChange()
}

// Login establishes the user through the user service. The profile is only
// installed on service success.
func (s *Store) Login(ctx context.Context, profile entities.UserProfile) result.Result[entities.UserProfile] {
	return execute(s, ctx, "login",
		func(ctx context.Context) (entities.UserProfile, error) {
			return s.services.User.Login(ctx, profile)
		},
		func(stored entities.UserProfile) {
			u := stored
			s.user = &u
		})
}

// Logout tears the session down through the user service and clears the
// user on success. A failed logout leaves the user in place; the failure
// is logged but does not reach the error slot.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.services.User.Logout(ctx); err != nil {
		s.logger.Warn("logout failed", zap.Error(err))
		return pkgerrors.Wrap(err, "logout failed")
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.afterChange()
	return nil
}

// UpdateUserProfile merges a partial change-set into the logged-in user
// through the user service. With no logged-in user the command fails with
// an invalid state error before any service call.
func (s *Store) UpdateUserProfile(ctx context.Context, changes entities.ProfileChanges) result.Result[entities.UserProfile] {
	s.mu.Lock()
	var userID string
	if s.user != nil {
		userID = s.user.ID
	}
	s.mu.Unlock()
	if userID == "" {
		return failBefore[entities.UserProfile](s, pkgerrors.NewInvalidStateError("no logged-in user"))
	}

	return execute(s, ctx, "update profile",
		func(ctx context.Context) (entities.UserProfile, error) {
			return s.services.User.UpdateProfile(ctx, userID, changes)
		},
		func(updated entities.UserProfile) {
			u := updated
			s.user = &u
		})
}

// UpdateUser merges a change-set into the user locally without a service
// round-trip; a no-op when logged out.
func (s *Store) UpdateUser(changes entities.ProfileChanges) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	merged := changes.Apply(*s.user)
	s.user = &merged
	s.mu.Unlock()
	s.afterChange()
}

// User returns a copy of the logged-in user, or nil.
func (s *Store) User() *entities.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
