package entity

import (
	"time"

	"github.com/google/uuid"
)

// Season is one fundraising campaign period. At most one season is active at
// a time; a locked season rejects new teams and field survey edits.
type Season struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	IsLocked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSeason creates a new inactive, unlocked Season entity.
func NewSeason(name string) *Season {
	now := time.Now().UTC()

	return &Season{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
