package season

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// LockSeasonInput represents the input for locking or unlocking a season.
type LockSeasonInput struct {
	SeasonID uuid.UUID
	Locked   bool
}

// LockSeasonOutput represents the output of locking or unlocking a season.
type LockSeasonOutput struct {
	Season *entity.Season
	// LockedEntries is the number of field survey entries whose lock flag
	// followed the season's.
	LockedEntries int64
}

// LockSeasonUseCase closes or reopens a campaign. Locking a season blocks
// new teams and propagates the lock to the season's field survey entries.
// Already-finalized team settlements are unaffected either way.
type LockSeasonUseCase struct {
	seasonRepo    adapter.SeasonRepository
	fieldDataRepo adapter.FieldDataRepository
}

// NewLockSeasonUseCase creates a new LockSeasonUseCase instance.
func NewLockSeasonUseCase(seasonRepo adapter.SeasonRepository, fieldDataRepo adapter.FieldDataRepository) *LockSeasonUseCase {
	return &LockSeasonUseCase{
		seasonRepo:    seasonRepo,
		fieldDataRepo: fieldDataRepo,
	}
}

// Execute sets the season lock and cascades it to field survey entries.
func (uc *LockSeasonUseCase) Execute(ctx context.Context, input LockSeasonInput) (*LockSeasonOutput, error) {
	if _, err := uc.seasonRepo.FindByID(ctx, input.SeasonID); err != nil {
		return nil, err
	}

	season, err := uc.seasonRepo.SetLocked(ctx, input.SeasonID, input.Locked)
	if err != nil {
		return nil, fmt.Errorf("failed to set season lock: %w", err)
	}

	locked, err := uc.fieldDataRepo.SetLockedBySeason(ctx, input.SeasonID, input.Locked)
	if err != nil {
		return nil, fmt.Errorf("failed to propagate season lock: %w", err)
	}

	return &LockSeasonOutput{Season: season, LockedEntries: locked}, nil
}
