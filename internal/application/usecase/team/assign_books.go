package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/domain/valueobject"
)

// AssignBooksInput represents the input for receipt book assignment. The
// requested list replaces the team's assignment; books already on the team
// keep their recorded collection data.
type AssignBooksInput struct {
	TeamID      uuid.UUID
	BookNumbers []int
}

// AssignBooksOutput represents the output of receipt book assignment.
type AssignBooksOutput struct {
	Team *entity.Team
}

// AssignBooksUseCase handles receipt book assignment for a team.
//
// With strictAssignment enabled a book number already assigned to another
// team in the season is rejected even when no collection was recorded
// against it yet. The default is the lenient policy: books may be
// pre-assigned to several teams until one of them records a collection.
type AssignBooksUseCase struct {
	teamRepo         adapter.TeamRepository
	strictAssignment bool
}

// NewAssignBooksUseCase creates a new AssignBooksUseCase instance.
func NewAssignBooksUseCase(teamRepo adapter.TeamRepository, strictAssignment bool) *AssignBooksUseCase {
	return &AssignBooksUseCase{
		teamRepo:         teamRepo,
		strictAssignment: strictAssignment,
	}
}

// Execute performs the assignment: canonical page ranges are derived from the
// book numbers, data of books that stay on the team is preserved, and a book
// with recorded collection can never be dropped from the list.
func (uc *AssignBooksUseCase) Execute(ctx context.Context, input AssignBooksInput) (*AssignBooksOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.IsLocked {
		return nil, domainerror.NewTeamError(
			domainerror.ErrCodeTeamLocked,
			"team is locked",
			domainerror.ErrTeamLocked,
		)
	}

	requested := make(map[int]bool, len(input.BookNumbers))
	books := make([]entity.ReceiptBook, 0, len(input.BookNumbers))

	for _, bookNumber := range input.BookNumbers {
		if requested[bookNumber] {
			continue
		}
		requested[bookNumber] = true

		pages, err := valueobject.NewReceiptBookRange(bookNumber)
		if err != nil {
			return nil, domainerror.NewSettlementError(
				domainerror.ErrCodeInvalidBookNumber,
				fmt.Sprintf("book number %d is invalid", bookNumber),
				err,
			)
		}

		book := entity.ReceiptBook{
			BookNumber: bookNumber,
			StartPage:  pages.StartPage,
			EndPage:    pages.EndPage,
		}
		// A book that already existed on the team keeps its collection data.
		if existing := team.BookByNumber(bookNumber); existing != nil {
			book.UsedStartPage = existing.UsedStartPage
			book.UsedEndPage = existing.UsedEndPage
			book.CollectedAmount = existing.CollectedAmount
			book.IsEntered = existing.IsEntered
		} else if uc.strictAssignment {
			other, err := uc.teamRepo.FindAssignedBook(ctx, team.SeasonID, bookNumber, team.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check book assignment: %w", err)
			}
			if other != nil {
				return nil, domainerror.NewTeamError(
					domainerror.ErrCodeBookAlreadyAssigned,
					fmt.Sprintf("book %d is already assigned to team %q", bookNumber, other.PlaceName),
					domainerror.ErrBookAlreadyAssigned,
				)
			}
		}

		books = append(books, book)
	}

	// Dropping a book that has recorded collection would orphan money.
	for _, existing := range team.ReceiptBooks {
		if !requested[existing.BookNumber] && existing.IsEntered {
			return nil, domainerror.NewTeamError(
				domainerror.ErrCodeBookInUse,
				fmt.Sprintf("book %d has recorded collection and cannot be removed", existing.BookNumber),
				domainerror.ErrBookInUse,
			)
		}
	}

	team.ReceiptBooks = books
	team.RecomputeTotals()

	if err := uc.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to assign books: %w", err)
	}

	return &AssignBooksOutput{Team: team}, nil
}
