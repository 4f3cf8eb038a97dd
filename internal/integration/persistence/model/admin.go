package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// AdminModel represents the admins table in the database.
type AdminModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username            string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	DisplayName         string    `gorm:"type:varchar(255)"`
	Role                string    `gorm:"type:varchar(20);not null"`
	ForcePasswordChange bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the AdminModel.
func (AdminModel) TableName() string {
	return "admins"
}

// ToEntity converts an AdminModel to a domain Admin entity.
func (m *AdminModel) ToEntity() *entity.Admin {
	return &entity.Admin{
		ID:                  m.ID,
		Username:            m.Username,
		PasswordHash:        m.PasswordHash,
		DisplayName:         m.DisplayName,
		Role:                entity.AdminRole(m.Role),
		ForcePasswordChange: m.ForcePasswordChange,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// AdminFromEntity creates an AdminModel from a domain Admin entity.
func AdminFromEntity(admin *entity.Admin) *AdminModel {
	return &AdminModel{
		ID:                  admin.ID,
		Username:            admin.Username,
		PasswordHash:        admin.PasswordHash,
		DisplayName:         admin.DisplayName,
		Role:                string(admin.Role),
		ForcePasswordChange: admin.ForcePasswordChange,
		CreatedAt:           admin.CreatedAt,
		UpdatedAt:           admin.UpdatedAt,
	}
}
