package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// SeasonModel represents the seasons table in the database.
type SeasonModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsActive  bool      `gorm:"not null;default:false;index"`
	IsLocked  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SeasonModel.
func (SeasonModel) TableName() string {
	return "seasons"
}

// ToEntity converts a SeasonModel to a domain Season entity.
func (m *SeasonModel) ToEntity() *entity.Season {
	return &entity.Season{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		IsLocked:  m.IsLocked,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SeasonFromEntity creates a SeasonModel from a domain Season entity.
func SeasonFromEntity(season *entity.Season) *SeasonModel {
	return &SeasonModel{
		ID:        season.ID,
		Name:      season.Name,
		IsActive:  season.IsActive,
		IsLocked:  season.IsLocked,
		CreatedAt: season.CreatedAt,
		UpdatedAt: season.UpdatedAt,
	}
}
