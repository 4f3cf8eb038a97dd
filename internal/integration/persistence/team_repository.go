// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
)

// teamRepository implements the adapter.TeamRepository interface.
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository instance.
func NewTeamRepository(db *gorm.DB) adapter.TeamRepository {
	return &teamRepository{
		db: db,
	}
}

// Create creates a new team with its members in the database.
func (r *teamRepository) Create(ctx context.Context, team *entity.Team) error {
	teamModel := model.TeamFromEntity(team)
	result := r.db.WithContext(ctx).Create(teamModel)
	if result.Error != nil {
		return mapUniqueViolation(result.Error)
	}
	return nil
}

// FindByID retrieves a team with its members and receipt books.
func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var teamModel model.TeamModel
	result := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("ReceiptBooks", func(db *gorm.DB) *gorm.DB {
			return db.Order("book_number ASC")
		}).
		Where("id = ?", id).
		First(&teamModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTeamError(
				domainerror.ErrCodeTeamNotFound,
				"team not found",
				domainerror.ErrTeamNotFound,
			)
		}
		return nil, result.Error
	}
	return teamModel.ToEntity(), nil
}

// FindByFilter retrieves teams matching the filter, newest first.
func (r *teamRepository) FindByFilter(ctx context.Context, filter adapter.TeamFilter) ([]*entity.Team, error) {
	query := r.db.WithContext(ctx).Model(&model.TeamModel{})

	if filter.SeasonID != nil {
		query = query.Where("season_id = ?", *filter.SeasonID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var teamModels []model.TeamModel
	result := query.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("ReceiptBooks", func(db *gorm.DB) *gorm.DB {
			return db.Order("book_number ASC")
		}).
		Order("created_at DESC").
		Find(&teamModels)
	if result.Error != nil {
		return nil, result.Error
	}

	teams := make([]*entity.Team, len(teamModels))
	for i, tm := range teamModels {
		teams[i] = tm.ToEntity()
	}
	return teams, nil
}

// Update persists the team row with its members and receipt books in one
// transaction. The team row write carries an is_locked guard: a record that
// was finalized between read and write matches no rows, and the update is
// rejected instead of silently overwriting the settled state.
func (r *teamRepository) Update(ctx context.Context, team *entity.Team) error {
	team.UpdatedAt = time.Now().UTC()
	teamModel := model.TeamFromEntity(team)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TeamModel{}).
			Where("id = ? AND is_locked = ?", team.ID, false).
			Updates(map[string]interface{}{
				"place_name":       teamModel.PlaceName,
				"state":            teamModel.State,
				"season_id":        teamModel.SeasonID,
				"total_collection": teamModel.TotalCollection,
				"cash_amount":      teamModel.CashAmount,
				"cash_ref":         teamModel.CashRef,
				"bank_amount":      teamModel.BankAmount,
				"bank_ref":         teamModel.BankRef,
				"advance_amount":   teamModel.AdvanceAmount,
				"expense":          teamModel.Expense,
				"balance":          teamModel.Balance,
				"status":           teamModel.Status,
				"is_locked":        teamModel.IsLocked,
				"updated_at":       teamModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.TeamModel{}).Where("id = ?", team.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerror.NewTeamError(
					domainerror.ErrCodeTeamNotFound,
					"team not found",
					domainerror.ErrTeamNotFound,
				)
			}
			return domainerror.NewTeamError(
				domainerror.ErrCodeTeamLocked,
				"team is locked",
				domainerror.ErrTeamLocked,
			)
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&model.TeamMemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", team.ID).Delete(&model.ReceiptBookModel{}).Error; err != nil {
			return err
		}

		if len(teamModel.Members) > 0 {
			if err := tx.Create(&teamModel.Members).Error; err != nil {
				return err
			}
		}
		if len(teamModel.ReceiptBooks) > 0 {
			if err := tx.Create(&teamModel.ReceiptBooks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// Delete removes the team and its embedded members and books.
func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&model.TeamMemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&model.ReceiptBookModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.TeamModel{}).Error
	})
}

// FindEnteredBook scans the season for another team holding the given book
// with recorded collection. Returns (nil, nil) when the book is free.
func (r *teamRepository) FindEnteredBook(ctx context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error) {
	return r.findBookHolder(ctx, seasonID, bookNumber, excludeTeamID, true)
}

// FindAssignedBook matches any assignment of the book in the season, entered
// or not.
func (r *teamRepository) FindAssignedBook(ctx context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error) {
	return r.findBookHolder(ctx, seasonID, bookNumber, excludeTeamID, false)
}

func (r *teamRepository) findBookHolder(ctx context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID, enteredOnly bool) (*entity.Team, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN receipt_books ON receipt_books.team_id = teams.id").
		Where("receipt_books.season_id = ?", seasonID).
		Where("receipt_books.book_number = ?", bookNumber).
		Where("teams.id <> ?", excludeTeamID)
	if enteredOnly {
		query = query.Where("receipt_books.is_entered = ?", true)
	}

	var teamModel model.TeamModel
	result := query.First(&teamModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return teamModel.ToEntity(), nil
}

// mapUniqueViolation translates a duplicate-key failure on the entered-books
// index into the conflict error the callers expect. The index is the
// commit-time backstop behind the application-level conflict scan, so hitting
// it means two entries raced.
func mapUniqueViolation(err error) error {
	if !isUniqueViolation(err) {
		return err
	}
	return domainerror.NewSettlementError(
		domainerror.ErrCodeBookConflict,
		"receipt book already entered under another team",
		domainerror.ErrBookConflict,
	)
}

func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// sqlite, used by the test suites
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
