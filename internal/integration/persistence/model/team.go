// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// TeamModel represents the teams table in the database.
type TeamModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlaceName       string          `gorm:"type:varchar(255);not null"`
	State           string          `gorm:"type:varchar(100);not null"`
	SeasonID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalCollection decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CashAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CashRef         string          `gorm:"type:varchar(255)"`
	BankAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BankRef         string          `gorm:"type:varchar(255)"`
	AdvanceAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Expense         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Balance         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status          string          `gorm:"type:varchar(10);not null;index"`
	IsLocked        bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Members      []TeamMemberModel  `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
	ReceiptBooks []ReceiptBookModel `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TeamModel.
func (TeamModel) TableName() string {
	return "teams"
}

// TeamMemberModel represents the team_members table. Position preserves the
// order members were entered in.
type TeamMemberModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Class    string    `gorm:"type:varchar(50);not null"`
	Phone    string    `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for the TeamMemberModel.
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// ReceiptBookModel represents the receipt_books table. SeasonID is
// denormalized from the team so the partial unique index can enforce
// book exclusivity per season for entered books at commit time.
type ReceiptBookModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TeamID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SeasonID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_books_entered,where:is_entered"`
	BookNumber      int             `gorm:"not null;uniqueIndex:idx_receipt_books_entered,where:is_entered"`
	StartPage       int             `gorm:"not null"`
	EndPage         int             `gorm:"not null"`
	UsedStartPage   *int            `gorm:"type:integer"`
	UsedEndPage     *int            `gorm:"type:integer"`
	CollectedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsEntered       bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for the ReceiptBookModel.
func (ReceiptBookModel) TableName() string {
	return "receipt_books"
}

// ToEntity converts a TeamModel with preloaded members and books to a domain
// Team entity.
func (m *TeamModel) ToEntity() *entity.Team {
	members := make([]entity.TeamMember, len(m.Members))
	for i, member := range m.Members {
		members[i] = entity.TeamMember{
			Name:  member.Name,
			Class: member.Class,
			Phone: member.Phone,
		}
	}

	books := make([]entity.ReceiptBook, len(m.ReceiptBooks))
	for i, book := range m.ReceiptBooks {
		books[i] = entity.ReceiptBook{
			BookNumber:      book.BookNumber,
			StartPage:       book.StartPage,
			EndPage:         book.EndPage,
			UsedStartPage:   book.UsedStartPage,
			UsedEndPage:     book.UsedEndPage,
			CollectedAmount: book.CollectedAmount,
			IsEntered:       book.IsEntered,
		}
	}

	return &entity.Team{
		ID:              m.ID,
		PlaceName:       m.PlaceName,
		State:           m.State,
		SeasonID:        m.SeasonID,
		Members:         members,
		ReceiptBooks:    books,
		TotalCollection: m.TotalCollection,
		CashAmount:      m.CashAmount,
		CashRef:         m.CashRef,
		BankAmount:      m.BankAmount,
		BankRef:         m.BankRef,
		AdvanceAmount:   m.AdvanceAmount,
		Expense:         m.Expense,
		Balance:         m.Balance,
		Status:          entity.TeamStatus(m.Status),
		IsLocked:        m.IsLocked,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TeamFromEntity creates a TeamModel with child rows from a domain Team entity.
func TeamFromEntity(team *entity.Team) *TeamModel {
	members := make([]TeamMemberModel, len(team.Members))
	for i, member := range team.Members {
		members[i] = TeamMemberModel{
			ID:       uuid.New(),
			TeamID:   team.ID,
			Position: i,
			Name:     member.Name,
			Class:    member.Class,
			Phone:    member.Phone,
		}
	}

	books := make([]ReceiptBookModel, len(team.ReceiptBooks))
	for i, book := range team.ReceiptBooks {
		books[i] = ReceiptBookModel{
			ID:              uuid.New(),
			TeamID:          team.ID,
			SeasonID:        team.SeasonID,
			BookNumber:      book.BookNumber,
			StartPage:       book.StartPage,
			EndPage:         book.EndPage,
			UsedStartPage:   book.UsedStartPage,
			UsedEndPage:     book.UsedEndPage,
			CollectedAmount: book.CollectedAmount,
			IsEntered:       book.IsEntered,
		}
	}

	return &TeamModel{
		ID:              team.ID,
		PlaceName:       team.PlaceName,
		State:           team.State,
		SeasonID:        team.SeasonID,
		TotalCollection: team.TotalCollection,
		CashAmount:      team.CashAmount,
		CashRef:         team.CashRef,
		BankAmount:      team.BankAmount,
		BankRef:         team.BankRef,
		AdvanceAmount:   team.AdvanceAmount,
		Expense:         team.Expense,
		Balance:         team.Balance,
		Status:          string(team.Status),
		IsLocked:        team.IsLocked,
		CreatedAt:       team.CreatedAt,
		UpdatedAt:       team.UpdatedAt,
		Members:         members,
		ReceiptBooks:    books,
	}
}
