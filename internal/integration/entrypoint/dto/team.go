package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// TeamMemberPayload is one member in a create or update request.
type TeamMemberPayload struct {
	Name  string `json:"name" binding:"required"`
	Class string `json:"class" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CreateTeamRequest is the payload for POST /teams.
type CreateTeamRequest struct {
	PlaceName     string              `json:"placeName" binding:"required"`
	State         string              `json:"state" binding:"required"`
	Members       []TeamMemberPayload `json:"members" binding:"required"`
	AdvanceAmount decimal.Decimal     `json:"advanceAmount"`
}

// UpdateTeamRequest is the payload for PATCH /teams/:id. Nil fields are left
// unchanged.
type UpdateTeamRequest struct {
	PlaceName     *string              `json:"placeName"`
	State         *string              `json:"state"`
	Members       *[]TeamMemberPayload `json:"members"`
	AdvanceAmount *decimal.Decimal     `json:"advanceAmount"`
}

// AssignBooksRequest is the payload for PUT /teams/:id/books.
type AssignBooksRequest struct {
	BookNumbers []int `json:"bookNumbers" binding:"required"`
}

// TeamMemberResponse is one member in a team response.
type TeamMemberResponse struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Phone string `json:"phone"`
}

// ReceiptBookResponse is one receipt book in a team response.
type ReceiptBookResponse struct {
	BookNumber      int             `json:"bookNumber"`
	StartPage       int             `json:"startPage"`
	EndPage         int             `json:"endPage"`
	UsedStartPage   *int            `json:"usedStartPage"`
	UsedEndPage     *int            `json:"usedEndPage"`
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
	IsEntered       bool            `json:"isEntered"`
}

// TeamResponse is the full team payload.
type TeamResponse struct {
	ID              string                `json:"id"`
	PlaceName       string                `json:"placeName"`
	State           string                `json:"state"`
	SeasonID        string                `json:"seasonId"`
	Members         []TeamMemberResponse  `json:"members"`
	ReceiptBooks    []ReceiptBookResponse `json:"receiptBooks"`
	TotalCollection decimal.Decimal       `json:"totalCollection"`
	CashAmount      decimal.Decimal       `json:"cashAmount"`
	CashRef         string                `json:"cashRef,omitempty"`
	BankAmount      decimal.Decimal       `json:"bankAmount"`
	BankRef         string                `json:"bankRef,omitempty"`
	AdvanceAmount   decimal.Decimal       `json:"advanceAmount"`
	Expense         decimal.Decimal       `json:"expense"`
	Balance         decimal.Decimal       `json:"balance"`
	Status          string                `json:"status"`
	IsLocked        bool                  `json:"isLocked"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// TeamListResponse wraps a list of teams.
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToTeamResponse converts a Team entity to a TeamResponse.
func ToTeamResponse(team *entity.Team) TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i, member := range team.Members {
		members[i] = TeamMemberResponse{
			Name:  member.Name,
			Class: member.Class,
			Phone: member.Phone,
		}
	}

	books := make([]ReceiptBookResponse, len(team.ReceiptBooks))
	for i, book := range team.ReceiptBooks {
		books[i] = ReceiptBookResponse{
			BookNumber:      book.BookNumber,
			StartPage:       book.StartPage,
			EndPage:         book.EndPage,
			UsedStartPage:   book.UsedStartPage,
			UsedEndPage:     book.UsedEndPage,
			CollectedAmount: book.CollectedAmount,
			IsEntered:       book.IsEntered,
		}
	}

	return TeamResponse{
		ID:              team.ID.String(),
		PlaceName:       team.PlaceName,
		State:           team.State,
		SeasonID:        team.SeasonID.String(),
		Members:         members,
		ReceiptBooks:    books,
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
	}
}

// ToTeamListResponse converts a list of Team entities to a TeamListResponse.
func ToTeamListResponse(teams []*entity.Team) TeamListResponse {
	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = ToTeamResponse(team)
	}
	return TeamListResponse{Teams: responses}
}
