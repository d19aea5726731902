package entities

import (
	"time"

	"mindvault/domain/core/valueobjects"
)

// Skill tracks proficiency built up across related knowledge nodes.
type Skill struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Level         int       `json:"level"`
	Progress      int       `json:"progress"`
	Experience    int       `json:"experience"`
	LastPracticed time.Time `json:"lastPracticed"`
	RelatedNodes  []string  `json:"relatedNodes"`
	Color         string    `json:"color"`
}

// SkillChanges is a partial update to a skill. Nil fields are left untouched.
type SkillChanges struct {
	Name          *string    `json:"name,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Level         *int       `json:"level,omitempty"`
	Progress      *int       `json:"progress,omitempty"`
	Experience    *int       `json:"experience,omitempty"`
	LastPracticed *time.Time `json:"lastPracticed,omitempty"`
	RelatedNodes  []string   `json:"relatedNodes,omitempty"`
	Color         *string    `json:"color,omitempty"`
}

// Apply merges the change-set into the skill, clamping bounded fields.
// It returns the merged skill; the receiver is not mutated.
func (c SkillChanges) Apply(s Skill) Skill {
	if c.Name != nil {
		s.Name = *c.Name
	}
	if c.Category != nil {
		s.Category = *c.Category
	}
	if c.Level != nil {
		s.Level = valueobjects.ClampPercent(*c.Level)
	}
	if c.Progress != nil {
		s.Progress = valueobjects.ClampPercent(*c.Progress)
	}
	if c.Experience != nil {
		s.Experience = *c.Experience
	}
	if c.LastPracticed != nil {
		s.LastPracticed = *c.LastPracticed
	}
	if c.RelatedNodes != nil {
		s.RelatedNodes = append([]string(nil), c.RelatedNodes...)
	}
	if c.Color != nil {
		s.Color = *c.Color
	}
	return s
}
