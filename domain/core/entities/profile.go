package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// UserStats are denormalized counters mutated transactionally alongside the
// entities they count. TotalLearningTime is seconds.
type UserStats struct {
	TotalNodes        int `json:"totalNodes"`
	TotalLearningTime int `json:"totalLearningTime"`
	StreakDays        int `json:"streakDays"`
	SkillsCount       int `json:"skillsCount"`
	AchievementsCount int `json:"achievementsCount"`
}

// Notifications holds the per-channel notification toggles.
type Notifications struct {
	Email   bool `json:"email"`
	Push    bool `json:"push"`
	Desktop bool `json:"desktop"`
	Sound   bool `json:"sound"`
}

// Preferences holds the user-tunable application settings.
type Preferences struct {
	Theme         valueobjects.Theme `json:"theme"`
	Language      string             `json:"language"`
	Notifications bool               `json:"notifications"`
	AutoSave      bool               `json:"autoSave"`
	VisualEffects bool               `json:"visualEffects"`
}

// UserProfile is the single logged-in user. At most one instance exists
// in the coordinator at a time.
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Avatar      string      `json:"avatar,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Email       string      `json:"email,omitempty"`
	Location    string      `json:"location,omitempty"`
	Website     string      `json:"website,omitempty"`
	JoinedAt    time.Time   `json:"joinedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
	Stats       UserStats   `json:"stats"`
}

// ProfileChanges is a partial update to the user profile. Nil fields are
// left untouched.
type ProfileChanges struct {
	Name        *string      `json:"name,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Website     *string      `json:"website,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Apply merges the change-set into the profile. Stats are never writable
// through a profile update; they only move with the entities they count.
func (c ProfileChanges) Apply(p UserProfile) UserProfile {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Avatar != nil {
		p.Avatar = *c.Avatar
	}
	if c.Bio != nil {
		p.Bio = *c.Bio
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Location != nil {
		p.Location = *c.Location
	}
	if c.Website != nil {
		p.Website = *c.Website
	}
	if c.Preferences != nil {
		p.Preferences = *c.Preferences
	}
	return p
}
