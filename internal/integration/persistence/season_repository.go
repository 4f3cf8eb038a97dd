package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
)

// seasonRepository implements the adapter.SeasonRepository interface.
type seasonRepository struct {
	db *gorm.DB
}

// NewSeasonRepository creates a new season repository instance.
func NewSeasonRepository(db *gorm.DB) adapter.SeasonRepository {
	return &seasonRepository{
		db: db,
	}
}

// Create creates a new season in the database.
func (r *seasonRepository) Create(ctx context.Context, season *entity.Season) error {
	seasonModel := model.SeasonFromEntity(season)
	result := r.db.WithContext(ctx).Create(seasonModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a season by its ID.
func (r *seasonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Season, error) {
	var seasonModel model.SeasonModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&seasonModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSeasonError(
				domainerror.ErrCodeSeasonNotFound,
				"season not found",
				domainerror.ErrSeasonNotFound,
			)
		}
		return nil, result.Error
	}
	return seasonModel.ToEntity(), nil
}

// FindAll retrieves all seasons, newest first.
func (r *seasonRepository) FindAll(ctx context.Context) ([]*entity.Season, error) {
	var seasonModels []model.SeasonModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&seasonModels)
	if result.Error != nil {
		return nil, result.Error
	}

	seasons := make([]*entity.Season, len(seasonModels))
	for i, sm := range seasonModels {
		seasons[i] = sm.ToEntity()
	}
	return seasons, nil
}

// FindActive retrieves the currently active season.
func (r *seasonRepository) FindActive(ctx context.Context) (*entity.Season, error) {
	var seasonModel model.SeasonModel
	result := r.db.WithContext(ctx).Where("is_active = ?", true).First(&seasonModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSeasonError(
				domainerror.ErrCodeNoActiveSeason,
				"no active season",
				domainerror.ErrNoActiveSeason,
			)
		}
		return nil, result.Error
	}
	return seasonModel.ToEntity(), nil
}

// Activate marks the given season active and deactivates every other season
// in the same transaction.
func (r *seasonRepository) Activate(ctx context.Context, id uuid.UUID) (*entity.Season, error) {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SeasonModel{}).
			Where("is_active = ? AND id <> ?", true, id).
			Updates(map[string]interface{}{"is_active": false, "updated_at": now}).Error; err != nil {
			return err
		}

		result := tx.Model(&model.SeasonModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"is_active": true, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewSeasonError(
				domainerror.ErrCodeSeasonNotFound,
				"season not found",
				domainerror.ErrSeasonNotFound,
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// SetLocked sets the season's locked flag.
func (r *seasonRepository) SetLocked(ctx context.Context, id uuid.UUID, locked bool) (*entity.Season, error) {
	result := r.db.WithContext(ctx).Model(&model.SeasonModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_locked": locked, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeSeasonNotFound,
			"season not found",
			domainerror.ErrSeasonNotFound,
		)
	}
	return r.FindByID(ctx, id)
}
