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

// fieldDataRepository implements the adapter.FieldDataRepository interface.
type fieldDataRepository struct {
	db *gorm.DB
}

// NewFieldDataRepository creates a new field data repository instance.
func NewFieldDataRepository(db *gorm.DB) adapter.FieldDataRepository {
	return &fieldDataRepository{
		db: db,
	}
}

// Create creates a new field survey entry in the database.
func (r *fieldDataRepository) Create(ctx context.Context, data *entity.FieldData) error {
	dataModel := model.FieldDataFromEntity(data)
	result := r.db.WithContext(ctx).Create(dataModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a field survey entry by its ID.
func (r *fieldDataRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FieldData, error) {
	var dataModel model.FieldDataModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&dataModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewFieldDataError(
				domainerror.ErrCodeFieldDataNotFound,
				"field data not found",
				domainerror.ErrFieldDataNotFound,
			)
		}
		return nil, result.Error
	}
	return dataModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, newest first.
func (r *fieldDataRepository) FindByFilter(ctx context.Context, filter adapter.FieldDataFilter) ([]*entity.FieldData, error) {
	query := r.db.WithContext(ctx).Model(&model.FieldDataModel{})

	if filter.SeasonID != nil {
		query = query.Where("season_id = ?", *filter.SeasonID)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}

	var dataModels []model.FieldDataModel
	result := query.Order("created_at DESC").Find(&dataModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FieldData, len(dataModels))
	for i, dm := range dataModels {
		entries[i] = dm.ToEntity()
	}
	return entries, nil
}

// Update updates an existing field survey entry.
func (r *fieldDataRepository) Update(ctx context.Context, data *entity.FieldData) error {
	data.UpdatedAt = time.Now().UTC()
	dataModel := model.FieldDataFromEntity(data)
	result := r.db.WithContext(ctx).Save(dataModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a field survey entry.
func (r *fieldDataRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FieldDataModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SetLockedBySeason locks or unlocks every entry of a season.
func (r *fieldDataRepository) SetLockedBySeason(ctx context.Context, seasonID uuid.UUID, locked bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.FieldDataModel{}).
		Where("season_id = ?", seasonID).
		Updates(map[string]interface{}{"is_locked": locked, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ExistsForPlace reports whether any survey entry in the season references
// the given place name.
func (r *fieldDataRepository) ExistsForPlace(ctx context.Context, seasonID uuid.UUID, place string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.FieldDataModel{}).
		Where("season_id = ? AND place = ?", seasonID, place).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
