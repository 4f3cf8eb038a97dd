package dto

import (
	"time"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// CreateSeasonRequest is the payload for POST /seasons.
type CreateSeasonRequest struct {
	Name     string `json:"name" binding:"required"`
	Activate bool   `json:"activate"`
}

// LockSeasonRequest is the payload for PATCH /seasons/:id/lock.
type LockSeasonRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// SeasonResponse is the full season payload.
type SeasonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeasonListResponse wraps a list of seasons.
type SeasonListResponse struct {
	Seasons []SeasonResponse `json:"seasons"`
}

// LockSeasonResponse reports the season and how many field survey entries
// followed its lock.
type LockSeasonResponse struct {
	Season        SeasonResponse `json:"season"`
	LockedEntries int64          `json:"lockedEntries"`
}

// ToSeasonResponse converts a Season entity to a SeasonResponse.
func ToSeasonResponse(season *entity.Season) SeasonResponse {
	return SeasonResponse{
		ID:        season.ID.String(),
		Name:      season.Name,
		IsActive:  season.IsActive,
		IsLocked:  season.IsLocked,
		CreatedAt: season.CreatedAt,
		UpdatedAt: season.UpdatedAt,
	}
}

// ToSeasonListResponse converts a list of Season entities to a SeasonListResponse.
func ToSeasonListResponse(seasons []*entity.Season) SeasonListResponse {
	responses := make([]SeasonResponse, len(seasons))
	for i, season := range seasons {
		responses[i] = ToSeasonResponse(season)
	}
	return SeasonListResponse{Seasons: responses}
}
