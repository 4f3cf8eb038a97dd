package team

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

type fakeTeamRepo struct {
	teams map[uuid.UUID]*entity.Team
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

type fakeSeasonRepo struct {
	seasons map[uuid.UUID]*entity.Season
}

func newFakeSeasonRepo(seasons ...*entity.Season) *fakeSeasonRepo {
	repo := &fakeSeasonRepo{seasons: make(map[uuid.UUID]*entity.Season)}
	for _, s := range seasons {
		clone := *s
		repo.seasons[s.ID] = &clone
	}
	return repo
}

func (r *fakeSeasonRepo) Create(_ context.Context, season *entity.Season) error {
	clone := *season
	r.seasons[season.ID] = &clone
	return nil
}

func (r *fakeSeasonRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Season, error) {
	season, ok := r.seasons[id]
	if !ok {
		return nil, domainerror.NewSeasonError(domainerror.ErrCodeSeasonNotFound, "season not found", domainerror.ErrSeasonNotFound)
	}
	clone := *season
	return &clone, nil
}

func (r *fakeSeasonRepo) FindAll(_ context.Context) ([]*entity.Season, error) {
	var result []*entity.Season
	for _, season := range r.seasons {
		clone := *season
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeSeasonRepo) FindActive(_ context.Context) (*entity.Season, error) {
	for _, season := range r.seasons {
		if season.IsActive {
			clone := *season
			return &clone, nil
		}
	}
	return nil, domainerror.NewSeasonError(domainerror.ErrCodeNoActiveSeason, "no active season", domainerror.ErrNoActiveSeason)
}

func (r *fakeSeasonRepo) Activate(ctx context.Context, id uuid.UUID) (*entity.Season, error) {
	target, ok := r.seasons[id]
	if !ok {
		return nil, domainerror.NewSeasonError(domainerror.ErrCodeSeasonNotFound, "season not found", domainerror.ErrSeasonNotFound)
	}
	for _, season := range r.seasons {
		season.IsActive = season.ID == id
	}
	clone := *target
	return &clone, nil
}

func (r *fakeSeasonRepo) SetLocked(_ context.Context, id uuid.UUID, locked bool) (*entity.Season, error) {
	season, ok := r.seasons[id]
	if !ok {
		return nil, domainerror.NewSeasonError(domainerror.ErrCodeSeasonNotFound, "season not found", domainerror.ErrSeasonNotFound)
	}
	season.IsLocked = locked
	clone := *season
	return &clone, nil
}

type fakeFieldDataRepo struct {
	entries map[uuid.UUID]*entity.FieldData
}

func newFakeFieldDataRepo(entries ...*entity.FieldData) *fakeFieldDataRepo {
	repo := &fakeFieldDataRepo{entries: make(map[uuid.UUID]*entity.FieldData)}
	for _, e := range entries {
		clone := *e
		repo.entries[e.ID] = &clone
	}
	return repo
}

func (r *fakeFieldDataRepo) Create(_ context.Context, data *entity.FieldData) error {
	clone := *data
	r.entries[data.ID] = &clone
	return nil
}

func (r *fakeFieldDataRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FieldData, error) {
	data, ok := r.entries[id]
	if !ok {
		return nil, domainerror.NewFieldDataError(domainerror.ErrCodeFieldDataNotFound, "field data not found", domainerror.ErrFieldDataNotFound)
	}
	clone := *data
	return &clone, nil
}

func (r *fakeFieldDataRepo) FindByFilter(_ context.Context, filter adapter.FieldDataFilter) ([]*entity.FieldData, error) {
	var result []*entity.FieldData
	for _, data := range r.entries {
		if filter.SeasonID != nil && data.SeasonID != *filter.SeasonID {
			continue
		}
		if filter.CreatedBy != nil && data.CreatedBy != *filter.CreatedBy {
			continue
		}
		clone := *data
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeFieldDataRepo) Update(_ context.Context, data *entity.FieldData) error {
	clone := *data
	r.entries[data.ID] = &clone
	return nil
}

func (r *fakeFieldDataRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeFieldDataRepo) SetLockedBySeason(_ context.Context, seasonID uuid.UUID, locked bool) (int64, error) {
	var affected int64
	for _, data := range r.entries {
		if data.SeasonID == seasonID {
			data.IsLocked = locked
			affected++
		}
	}
	return affected, nil
}

func (r *fakeFieldDataRepo) ExistsForPlace(_ context.Context, seasonID uuid.UUID, place string) (bool, error) {
	for _, data := range r.entries {
		if data.SeasonID == seasonID && data.Place == place {
			return true, nil
		}
	}
	return false, nil
}

func activeSeason() *entity.Season {
	season := entity.NewSeason("Ramadan 2026")
	season.IsActive = true
	return season
}

func members() []entity.TeamMember {
	return []entity.TeamMember{
		{Name: "Anas", Class: "10", Phone: "9000000001"},
		{Name: "Basheer", Class: "9", Phone: "9000000002"},
	}
}

func TestCreateTeam(t *testing.T) {
	season := activeSeason()
	teamRepo := newFakeTeamRepo()
	uc := NewCreateTeamUseCase(teamRepo, newFakeSeasonRepo(season))

	output, err := uc.Execute(context.Background(), CreateTeamInput{
		PlaceName:     "  Riverside ",
		State:         "Kerala",
		SeasonID:      season.ID,
		Members:       members(),
		AdvanceAmount: decimal.RequireFromString("1000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Team.PlaceName != "Riverside" {
		t.Errorf("place = %q, want trimmed Riverside", output.Team.PlaceName)
	}
	if output.Team.Status != entity.TeamStatusPending {
		t.Errorf("status = %s, want PENDING", output.Team.Status)
	}
	if _, err := teamRepo.FindByID(context.Background(), output.Team.ID); err != nil {
		t.Error("created team must be persisted")
	}
}

func TestCreateTeamValidation(t *testing.T) {
	season := activeSeason()

	tests := []struct {
		name    string
		input   CreateTeamInput
		wantErr error
	}{
		{
			name:    "missing place name",
			input:   CreateTeamInput{PlaceName: "  ", State: "Kerala", SeasonID: season.ID, Members: members()},
			wantErr: domainerror.ErrMissingTeamFields,
		},
		{
			name:    "no members",
			input:   CreateTeamInput{PlaceName: "Riverside", State: "Kerala", SeasonID: season.ID},
			wantErr: domainerror.ErrNoTeamMembers,
		},
		{
			name: "incomplete member",
			input: CreateTeamInput{
				PlaceName: "Riverside", State: "Kerala", SeasonID: season.ID,
				Members: []entity.TeamMember{{Name: "Anas", Class: "", Phone: "9000000001"}},
			},
			wantErr: domainerror.ErrIncompleteMember,
		},
		{
			name: "negative advance",
			input: CreateTeamInput{
				PlaceName: "Riverside", State: "Kerala", SeasonID: season.ID,
				Members: members(), AdvanceAmount: decimal.RequireFromString("-10"),
			},
			wantErr: domainerror.ErrNegativeAdvance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateTeamUseCase(newFakeTeamRepo(), newFakeSeasonRepo(season))
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTeamSeasonGate(t *testing.T) {
	inactive := entity.NewSeason("Old season")
	locked := activeSeason()
	locked.IsLocked = true
	seasonRepo := newFakeSeasonRepo(inactive, locked)

	uc := NewCreateTeamUseCase(newFakeTeamRepo(), seasonRepo)

	_, err := uc.Execute(context.Background(), CreateTeamInput{
		PlaceName: "Riverside", State: "Kerala", SeasonID: inactive.ID, Members: members(),
	})
	if !errors.Is(err, domainerror.ErrSeasonNotActive) {
		t.Errorf("inactive season: got %v, want ErrSeasonNotActive", err)
	}

	_, err = uc.Execute(context.Background(), CreateTeamInput{
		PlaceName: "Riverside", State: "Kerala", SeasonID: locked.ID, Members: members(),
	})
	if !errors.Is(err, domainerror.ErrSeasonLocked) {
		t.Errorf("locked season: got %v, want ErrSeasonLocked", err)
	}
}

func TestUpdateTeamPartial(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	repo := newFakeTeamRepo(team)
	uc := NewUpdateTeamUseCase(repo)

	newPlace := "Hilltop"
	output, err := uc.Execute(context.Background(), UpdateTeamInput{
		TeamID:    team.ID,
		PlaceName: &newPlace,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Team.PlaceName != "Hilltop" {
		t.Errorf("place = %q, want Hilltop", output.Team.PlaceName)
	}
	if output.Team.State != "Kerala" {
		t.Error("omitted fields must be preserved")
	}
}

func TestUpdateTeamLocked(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	team.IsLocked = true
	uc := NewUpdateTeamUseCase(newFakeTeamRepo(team))

	newPlace := "Hilltop"
	_, err := uc.Execute(context.Background(), UpdateTeamInput{TeamID: team.ID, PlaceName: &newPlace})
	if !errors.Is(err, domainerror.ErrTeamLocked) {
		t.Fatalf("expected ErrTeamLocked, got %v", err)
	}
}

func TestAssignBooks(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	repo := newFakeTeamRepo(team)
	uc := NewAssignBooksUseCase(repo, false)

	output, err := uc.Execute(context.Background(), AssignBooksInput{
		TeamID:      team.ID,
		BookNumbers: []int{3, 1, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Team.ReceiptBooks) != 2 {
		t.Fatalf("books = %d, duplicates must collapse to 2", len(output.Team.ReceiptBooks))
	}
	book := output.Team.BookByNumber(3)
	if book.StartPage != 101 || book.EndPage != 150 {
		t.Errorf("book 3 pages = %d-%d, want 101-150", book.StartPage, book.EndPage)
	}
}

func TestAssignBooksPreservesCollectionData(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 2, StartPage: 51, EndPage: 100, CollectedAmount: decimal.RequireFromString("700"), IsEntered: true},
	}
	team.RecomputeTotals()
	repo := newFakeTeamRepo(team)
	uc := NewAssignBooksUseCase(repo, false)

	output, err := uc.Execute(context.Background(), AssignBooksInput{
		TeamID:      team.ID,
		BookNumbers: []int{2, 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept := output.Team.BookByNumber(2)
	if !kept.CollectedAmount.Equal(decimal.RequireFromString("700")) || !kept.IsEntered {
		t.Error("re-assigned book must keep its collection data")
	}
	if !output.Team.TotalCollection.Equal(decimal.RequireFromString("700")) {
		t.Errorf("total = %s, want 700", output.Team.TotalCollection)
	}
}

func TestAssignBooksCannotDropEnteredBook(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 2, CollectedAmount: decimal.RequireFromString("700"), IsEntered: true},
	}
	uc := NewAssignBooksUseCase(newFakeTeamRepo(team), false)

	_, err := uc.Execute(context.Background(), AssignBooksInput{
		TeamID:      team.ID,
		BookNumbers: []int{5},
	})
	if !errors.Is(err, domainerror.ErrBookInUse) {
		t.Fatalf("expected ErrBookInUse, got %v", err)
	}
}

func TestAssignBooksStrictPolicy(t *testing.T) {
	season := activeSeason()
	holder := entity.NewTeam("Hilltop", "Kerala", season.ID, members(), decimal.Zero)
	holder.ReceiptBooks = []entity.ReceiptBook{{BookNumber: 6, StartPage: 251, EndPage: 300}}
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	repo := newFakeTeamRepo(holder, team)

	// Lenient policy: pre-assignment to a second team is allowed.
	lenient := NewAssignBooksUseCase(repo, false)
	if _, err := lenient.Execute(context.Background(), AssignBooksInput{TeamID: team.ID, BookNumbers: []int{6}}); err != nil {
		t.Fatalf("lenient assignment failed: %v", err)
	}

	// Strict policy: the same assignment is rejected.
	team2 := entity.NewTeam("Lakeside", "Kerala", season.ID, members(), decimal.Zero)
	repo.Create(context.Background(), team2)
	strict := NewAssignBooksUseCase(repo, true)
	_, err := strict.Execute(context.Background(), AssignBooksInput{TeamID: team2.ID, BookNumbers: []int{6}})
	if !errors.Is(err, domainerror.ErrBookAlreadyAssigned) {
		t.Fatalf("expected ErrBookAlreadyAssigned, got %v", err)
	}
}

func TestDeleteTeam(t *testing.T) {
	season := activeSeason()
	team := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	repo := newFakeTeamRepo(team)
	uc := NewDeleteTeamUseCase(repo, newFakeFieldDataRepo())

	if _, err := uc.Execute(context.Background(), DeleteTeamInput{TeamID: team.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), team.ID); !errors.Is(err, domainerror.ErrTeamNotFound) {
		t.Error("deleted team must be gone")
	}
}

func TestDeleteTeamDenied(t *testing.T) {
	season := activeSeason()

	locked := entity.NewTeam("Riverside", "Kerala", season.ID, members(), decimal.Zero)
	locked.IsLocked = true

	withCollection := entity.NewTeam("Hilltop", "Kerala", season.ID, members(), decimal.Zero)
	withCollection.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 1, CollectedAmount: decimal.RequireFromString("500")},
	}
	withCollection.RecomputeTotals()

	referenced := entity.NewTeam("Lakeside", "Kerala", season.ID, members(), decimal.Zero)
	survey := entity.NewFieldData("Town Masjid", "Lakeside", entity.FieldLocation{}, entity.FieldContact{Name: "Iqbal"}, "", nil, "", season.ID, uuid.New())

	tests := []struct {
		name       string
		team       *entity.Team
		wantReason domainerror.DeletionReason
	}{
		{name: "locked team", team: locked, wantReason: domainerror.DeletionReasonLocked},
		{name: "recorded collection", team: withCollection, wantReason: domainerror.DeletionReasonHasCollection},
		{name: "field survey reference", team: referenced, wantReason: domainerror.DeletionReasonFieldData},
	}

	repo := newFakeTeamRepo(locked, withCollection, referenced)
	uc := NewDeleteTeamUseCase(repo, newFakeFieldDataRepo(survey))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), DeleteTeamInput{TeamID: tt.team.ID})

			var denied *domainerror.DeletionDeniedError
			if !errors.As(err, &denied) {
				t.Fatalf("expected DeletionDeniedError, got %v", err)
			}
			if denied.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", denied.Reason, tt.wantReason)
			}
			if _, err := repo.FindByID(context.Background(), tt.team.ID); err != nil {
				t.Error("denied deletion must leave the team in place")
			}
		})
	}
}
