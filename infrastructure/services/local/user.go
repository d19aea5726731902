package local

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindvault/domain/core/entities"
	"mindvault/infrastructure/persistence/sqlite"
	pkgerrors "mindvault/pkg/errors"
)

// UserService stores the user profile in the embedded document store.
// There is no real authentication here: login persists the profile and
// hands it back, which is all the coordinator's contract asks for.
type UserService struct {
	users *sqlite.Collection[entities.UserProfile]
}

// NewUserService creates a user service over db.
func NewUserService(db *sqlite.DB) *UserService {
	return &UserService{
		users: sqlite.NewCollection[entities.UserProfile](db, sqlite.KindUser),
	}
}

// Login assigns identity fields when absent and persists the profile.
func (s *UserService) Login(ctx context.Context, profile entities.UserProfile) (entities.UserProfile, error) {
	now := time.Now()
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.JoinedAt.IsZero() {
		profile.JoinedAt = now
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if err := s.users.Put(ctx, profile.ID, profile); err != nil {
		return entities.UserProfile{}, err
	}
	return profile, nil
}

// Logout has nothing to tear down locally.
func (s *UserService) Logout(ctx context.Context) error {
	return nil
}

// UpdateProfile merges the change-set into the stored profile and persists
// the result.
func (s *UserService) UpdateProfile(ctx context.Context, id string, changes entities.ProfileChanges) (entities.UserProfile, error) {
	profile, ok, err := s.users.Get(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if !ok {
		return entities.UserProfile{}, pkgerrors.NewNotFoundError("user")
	}
	merged := changes.Apply(profile)
	if err := s.users.Put(ctx, id, merged); err != nil {
		return entities.UserProfile{}, err
	}
	return merged, nil
}
