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

// adminRepository implements the adapter.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance.
func NewAdminRepository(db *gorm.DB) adapter.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// Create creates a new admin account in the database.
func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := model.AdminFromEntity(admin)
	result := r.db.WithContext(ctx).Create(adminModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an admin by its ID.
func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminModel model.AdminModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeAdminNotFound,
				"admin not found",
				domainerror.ErrAdminNotFound,
			)
		}
		return nil, result.Error
	}
	return adminModel.ToEntity(), nil
}

// FindByUsername retrieves an admin by username.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeAdminNotFound,
				"admin not found",
				domainerror.ErrAdminNotFound,
			)
		}
		return nil, result.Error
	}
	return adminModel.ToEntity(), nil
}

// Count returns the number of admin accounts.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.AdminModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing admin account.
func (r *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	admin.UpdatedAt = time.Now().UTC()
	adminModel := model.AdminFromEntity(admin)
	result := r.db.WithContext(ctx).Save(adminModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
