package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// fakeTeamRepo is an in-memory TeamRepository. FindByID hands out copies so
// the stored state only changes through Update, mirroring a real store.
type fakeTeamRepo struct {
	teams     map[uuid.UUID]*entity.Team
	updateErr error
}

func newFakeTeamRepo(teams ...*entity.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[uuid.UUID]*entity.Team)}
	for _, t := range teams {
		repo.teams[t.ID] = cloneTeam(t)
	}
	return repo
}

func cloneTeam(t *entity.Team) *entity.Team {
	clone := *t
	clone.Members = append([]entity.TeamMember(nil), t.Members...)
	clone.ReceiptBooks = append([]entity.ReceiptBook(nil), t.ReceiptBooks...)
	return &clone
}

func (r *fakeTeamRepo) Create(_ context.Context, team *entity.Team) error {
	r.teams[team.ID] = cloneTeam(team)
	return nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, domainerror.NewTeamError(domainerror.ErrCodeTeamNotFound, "team not found", domainerror.ErrTeamNotFound)
	}
	return cloneTeam(team), nil
}

func (r *fakeTeamRepo) FindByFilter(_ context.Context, filter adapter.TeamFilter) ([]*entity.Team, error) {
	var result []*entity.Team
	for _, team := range r.teams {
		if filter.SeasonID != nil && team.SeasonID != *filter.SeasonID {
			continue
		}
		if filter.Status != nil && team.Status != *filter.Status {
			continue
		}
		result = append(result, cloneTeam(team))
	}
	return result, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *entity.Team) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.teams[team.ID]
	if !ok {
		return domainerror.NewTeamError(domainerror.ErrCodeTeamNotFound, "team not found", domainerror.ErrTeamNotFound)
	}
	if stored.IsLocked {
		return domainerror.NewTeamError(domainerror.ErrCodeTeamLocked, "team is locked", domainerror.ErrTeamLocked)
	}
	r.teams[team.ID] = cloneTeam(team)
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) FindEnteredBook(_ context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.SeasonID != seasonID || team.ID == excludeTeamID {
			continue
		}
		if book := team.BookByNumber(bookNumber); book != nil && book.IsEntered {
			return cloneTeam(team), nil
		}
	}
	return nil, nil
}

func (r *fakeTeamRepo) FindAssignedBook(_ context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.SeasonID != seasonID || team.ID == excludeTeamID {
			continue
		}
		if team.BookByNumber(bookNumber) != nil {
			return cloneTeam(team), nil
		}
	}
	return nil, nil
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pendingTeam(seasonID uuid.UUID, place string, advance string) *entity.Team {
	return entity.NewTeam(place, "Kerala", seasonID, []entity.TeamMember{
		{Name: "Anas", Class: "10", Phone: "9000000001"},
	}, amount(advance))
}

func TestRecordCollection(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "1000")
	repo := newFakeTeamRepo(team)
	uc := NewRecordCollectionUseCase(repo)

	output, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{
				{BookNumber: 1, CollectedAmount: amount("5000")},
				{BookNumber: 2, CollectedAmount: amount("3000")},
				{BookNumber: 3, CollectedAmount: decimal.Zero},
			},
			CashAmount: amount("6000"),
			BankAmount: amount("2000"),
			BankRef:    "UTR-445",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Team.TotalCollection.Equal(amount("8000")) {
		t.Errorf("total = %s, want 8000", output.Team.TotalCollection)
	}
	if output.Team.Status != entity.TeamStatusPending {
		t.Errorf("status = %s, collection entry must not settle", output.Team.Status)
	}
	if output.Team.IsLocked {
		t.Error("collection entry must not lock the team")
	}

	stored, _ := repo.FindByID(context.Background(), team.ID)
	if len(stored.ReceiptBooks) != 3 {
		t.Fatalf("stored books = %d, want 3", len(stored.ReceiptBooks))
	}
	if !stored.ReceiptBooks[0].IsEntered || stored.ReceiptBooks[2].IsEntered {
		t.Error("entered markers must follow collected amounts")
	}
	if stored.BankRef != "UTR-445" {
		t.Errorf("bank ref = %q, want UTR-445", stored.BankRef)
	}
}

func TestRecordCollectionCanonicalPages(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(team)
	uc := NewRecordCollectionUseCase(repo)

	output, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 7, CollectedAmount: amount("100")}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	book := output.Team.BookByNumber(7)
	if book.StartPage != 301 || book.EndPage != 350 {
		t.Errorf("book 7 pages = %d-%d, want 301-350", book.StartPage, book.EndPage)
	}
}

func TestRecordCollectionBookConflict(t *testing.T) {
	seasonID := uuid.New()
	holder := pendingTeam(seasonID, "Hilltop", "0")
	holder.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, StartPage: 151, EndPage: 200, CollectedAmount: amount("900"), IsEntered: true},
	}
	holder.RecomputeTotals()
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(holder, team)
	uc := NewRecordCollectionUseCase(repo)

	_, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 4, CollectedAmount: amount("500")}},
		},
	})

	var conflictErr *domainerror.BookConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected BookConflictError, got %v", err)
	}
	if conflictErr.BookNumber != 4 || conflictErr.TeamName != "Hilltop" {
		t.Errorf("conflict = book %d team %q, want book 4 team Hilltop", conflictErr.BookNumber, conflictErr.TeamName)
	}
}

func TestRecordCollectionZeroAmountSkipsConflictCheck(t *testing.T) {
	seasonID := uuid.New()
	holder := pendingTeam(seasonID, "Hilltop", "0")
	holder.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, CollectedAmount: amount("900"), IsEntered: true},
	}
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(holder, team)
	uc := NewRecordCollectionUseCase(repo)

	// Assigning the same number with no money recorded is allowed; only
	// entered books are exclusive.
	_, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 4, CollectedAmount: decimal.Zero}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordCollectionAllOrNothing(t *testing.T) {
	seasonID := uuid.New()
	holder := pendingTeam(seasonID, "Hilltop", "0")
	holder.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 9, CollectedAmount: amount("900"), IsEntered: true},
	}
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(holder, team)
	uc := NewRecordCollectionUseCase(repo)

	// Second entry conflicts, so the valid first entry must not stick either.
	_, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{
				{BookNumber: 1, CollectedAmount: amount("5000")},
				{BookNumber: 9, CollectedAmount: amount("500")},
			},
		},
	})
	if !errors.Is(err, domainerror.ErrBookConflict) {
		t.Fatalf("expected book conflict, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), team.ID)
	if len(stored.ReceiptBooks) != 0 {
		t.Error("rejected entry must not persist any book")
	}
	if !stored.TotalCollection.IsZero() {
		t.Error("rejected entry must not change the collection total")
	}
}

func TestRecordCollectionRejectsDroppingEnteredBook(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 2, CollectedAmount: amount("700"), IsEntered: true},
	}
	team.RecomputeTotals()
	repo := newFakeTeamRepo(team)
	uc := NewRecordCollectionUseCase(repo)

	_, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 3, CollectedAmount: amount("100")}},
		},
	})
	if !errors.Is(err, domainerror.ErrBookInUse) {
		t.Fatalf("expected ErrBookInUse, got %v", err)
	}
}

func TestRecordCollectionValidation(t *testing.T) {
	seasonID := uuid.New()
	usedStart, usedEnd := 40, 60

	tests := []struct {
		name    string
		input   CollectionInput
		wantErr error
	}{
		{
			name: "invalid book number",
			input: CollectionInput{
				Books: []BookEntry{{BookNumber: 0, CollectedAmount: amount("100")}},
			},
			wantErr: domainerror.ErrInvalidBookNumber,
		},
		{
			name: "duplicate book number",
			input: CollectionInput{
				Books: []BookEntry{
					{BookNumber: 1, CollectedAmount: amount("100")},
					{BookNumber: 1, CollectedAmount: amount("200")},
				},
			},
			wantErr: domainerror.ErrInvalidBookNumber,
		},
		{
			name: "negative collected amount",
			input: CollectionInput{
				Books: []BookEntry{{BookNumber: 1, CollectedAmount: amount("-5")}},
			},
			wantErr: domainerror.ErrNegativeCollection,
		},
		{
			name: "negative cash",
			input: CollectionInput{
				CashAmount: amount("-1"),
			},
			wantErr: domainerror.ErrNegativeCollection,
		},
		{
			name: "used pages outside book range",
			input: CollectionInput{
				Books: []BookEntry{{
					BookNumber:      1,
					UsedStartPage:   &usedStart,
					UsedEndPage:     &usedEnd,
					CollectedAmount: amount("100"),
				}},
			},
			wantErr: domainerror.ErrUsedPagesOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := pendingTeam(seasonID, "Riverside", "0")
			repo := newFakeTeamRepo(team)
			uc := NewRecordCollectionUseCase(repo)

			_, err := uc.Execute(context.Background(), RecordCollectionInput{
				TeamID:          team.ID,
				CollectionInput: tt.input,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordCollectionLockedTeam(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	team.IsLocked = true
	repo := newFakeTeamRepo(team)
	uc := NewRecordCollectionUseCase(repo)

	_, err := uc.Execute(context.Background(), RecordCollectionInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 1, CollectedAmount: amount("100")}},
		},
	})
	if !errors.Is(err, domainerror.ErrTeamLocked) {
		t.Fatalf("expected ErrTeamLocked, got %v", err)
	}
}

func TestFinalizeSettled(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "1000")
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 1, CollectedAmount: amount("5000")},
		{BookNumber: 2, CollectedAmount: amount("3000")},
	}
	team.RecomputeTotals()
	team.CashAmount = amount("4000")
	team.BankAmount = amount("3000")
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeUseCase(repo)

	output, err := uc.Execute(context.Background(), FinalizeInput{
		TeamID:  team.ID,
		Expense: amount("2000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Team.Balance.Equal(amount("7000")) {
		t.Errorf("balance = %s, want 7000", output.Team.Balance)
	}
	if output.Team.Status != entity.TeamStatusSettled {
		t.Errorf("status = %s, want SETTLED", output.Team.Status)
	}
	if !output.Team.IsLocked {
		t.Error("finalized team must be locked")
	}
	if !output.Reconciled {
		t.Error("4000 cash + 3000 bank against 7000 balance must reconcile")
	}

	stored, _ := repo.FindByID(context.Background(), team.ID)
	if !stored.IsLocked {
		t.Error("lock must be persisted")
	}
}

func TestFinalizeShortageAndMismatch(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "1000")
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 1, CollectedAmount: amount("8000")},
	}
	team.RecomputeTotals()
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeUseCase(repo)

	output, err := uc.Execute(context.Background(), FinalizeInput{
		TeamID:  team.ID,
		Expense: amount("10000"),
	})
	if err != nil {
		t.Fatalf("shortage must finalize, got error: %v", err)
	}

	if output.Team.Status != entity.TeamStatusShortage {
		t.Errorf("status = %s, want SHORTAGE", output.Team.Status)
	}
	if !output.Team.Balance.Equal(amount("-1000")) {
		t.Errorf("balance = %s, want -1000", output.Team.Balance)
	}
	if output.Reconciled {
		t.Error("zero breakup against -1000 balance must not reconcile")
	}
	if !output.CashBankDifference.Equal(amount("-1000")) {
		t.Errorf("difference = %s, want -1000", output.CashBankDifference)
	}
}

func TestFinalizeNegativeExpense(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeUseCase(repo)

	_, err := uc.Execute(context.Background(), FinalizeInput{
		TeamID:  team.ID,
		Expense: amount("-1"),
	})
	if !errors.Is(err, domainerror.ErrNegativeExpense) {
		t.Fatalf("expected ErrNegativeExpense, got %v", err)
	}
}

func TestFinalizeTwiceRejected(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 1, CollectedAmount: amount("500")},
	}
	team.RecomputeTotals()
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeUseCase(repo)

	if _, err := uc.Execute(context.Background(), FinalizeInput{TeamID: team.ID, Expense: decimal.Zero}); err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), FinalizeInput{TeamID: team.ID, Expense: decimal.Zero})
	if !errors.Is(err, domainerror.ErrTeamLocked) {
		t.Fatalf("expected ErrTeamLocked on second finalize, got %v", err)
	}
}

func TestFinalizeComplete(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "1000")
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeCompleteUseCase(repo)

	output, err := uc.Execute(context.Background(), FinalizeCompleteInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{
				{BookNumber: 1, CollectedAmount: amount("5000")},
				{BookNumber: 2, CollectedAmount: amount("3000")},
			},
			CashAmount: amount("5000"),
			BankAmount: amount("2000"),
		},
		Expense: amount("2000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Team.Balance.Equal(amount("7000")) {
		t.Errorf("balance = %s, want 7000", output.Team.Balance)
	}
	if output.Team.Status != entity.TeamStatusSettled {
		t.Errorf("status = %s, want SETTLED", output.Team.Status)
	}
	if !output.Team.IsLocked {
		t.Error("combined settlement must lock the team")
	}
	if !output.Reconciled {
		t.Error("5000 cash + 2000 bank against 7000 balance must reconcile")
	}
	if !output.CashBankDifference.IsZero() {
		t.Errorf("difference = %s, want 0", output.CashBankDifference)
	}
}

func TestFinalizeCompleteConflictLeavesTeamUntouched(t *testing.T) {
	seasonID := uuid.New()
	holder := pendingTeam(seasonID, "Hilltop", "0")
	holder.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 5, CollectedAmount: amount("900"), IsEntered: true},
	}
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(holder, team)
	uc := NewFinalizeCompleteUseCase(repo)

	_, err := uc.Execute(context.Background(), FinalizeCompleteInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 5, CollectedAmount: amount("100")}},
		},
		Expense: decimal.Zero,
	})
	if !errors.Is(err, domainerror.ErrBookConflict) {
		t.Fatalf("expected book conflict, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), team.ID)
	if stored.IsLocked || stored.Status != entity.TeamStatusPending || len(stored.ReceiptBooks) != 0 {
		t.Error("failed combined settlement must leave the stored team untouched")
	}
}

func TestFinalizeCompleteValidatesExpenseBeforeCollection(t *testing.T) {
	seasonID := uuid.New()
	team := pendingTeam(seasonID, "Riverside", "0")
	repo := newFakeTeamRepo(team)
	uc := NewFinalizeCompleteUseCase(repo)

	_, err := uc.Execute(context.Background(), FinalizeCompleteInput{
		TeamID: team.ID,
		CollectionInput: CollectionInput{
			Books: []BookEntry{{BookNumber: 0, CollectedAmount: amount("100")}},
		},
		Expense: amount("-1"),
	})
	if !errors.Is(err, domainerror.ErrNegativeExpense) {
		t.Fatalf("expense is checked first, got %v", err)
	}
}
