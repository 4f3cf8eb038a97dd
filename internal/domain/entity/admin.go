package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole controls what an account may do.
type AdminRole string

const (
	// RoleAdmin has full access including deletes and season management.
	RoleAdmin AdminRole = "admin"
	// RoleDataCollector may only manage its own field survey entries.
	RoleDataCollector AdminRole = "data_collector"
)

// Admin is a staff account for the campaign office.
type Admin struct {
	ID                  uuid.UUID
	Username            string
	PasswordHash        string
	DisplayName         string
	Role                AdminRole
	ForcePasswordChange bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewAdmin creates a new Admin entity with the given role.
func NewAdmin(username, passwordHash, displayName string, role AdminRole) *Admin {
	now := time.Now().UTC()

	return &Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
