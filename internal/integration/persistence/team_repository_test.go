package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.SeasonModel{},
		&model.TeamModel{},
		&model.TeamMemberModel{},
		&model.ReceiptBookModel{},
		&model.FieldDataModel{},
		&model.AdminModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedSeason(t *testing.T, db *gorm.DB, active bool) *entity.Season {
	t.Helper()
	season := entity.NewSeason("Ramadan 2026")
	season.IsActive = active
	if err := NewSeasonRepository(db).Create(context.Background(), season); err != nil {
		t.Fatalf("failed to seed season: %v", err)
	}
	return season
}

func sampleTeam(seasonID uuid.UUID, place string) *entity.Team {
	return entity.NewTeam(place, "Kerala", seasonID, []entity.TeamMember{
		{Name: "Anas", Class: "10", Phone: "9000000001"},
		{Name: "Basheer", Class: "9", Phone: "9000000002"},
	}, decimal.RequireFromString("1000"))
}

func TestTeamRepositoryCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := sampleTeam(season.ID, "Riverside")
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 2, StartPage: 51, EndPage: 100},
		{BookNumber: 1, StartPage: 1, EndPage: 50},
	}
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, team.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PlaceName != "Riverside" || found.Status != entity.TeamStatusPending {
		t.Errorf("loaded team = %q %s", found.PlaceName, found.Status)
	}
	if len(found.Members) != 2 || found.Members[0].Name != "Anas" {
		t.Error("members must load in entry order")
	}
	if len(found.ReceiptBooks) != 2 || found.ReceiptBooks[0].BookNumber != 1 {
		t.Error("books must load ordered by book number")
	}
	if !found.AdvanceAmount.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("advance = %s, want 1000", found.AdvanceAmount)
	}
}

func TestTeamRepositoryFindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamRepositoryUpdateReplacesChildren(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := sampleTeam(season.ID, "Riverside")
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	team.Members = []entity.TeamMember{{Name: "Salim", Class: "8", Phone: "9000000003"}}
	team.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 5, StartPage: 201, EndPage: 250, CollectedAmount: decimal.RequireFromString("1200"), IsEntered: true},
	}
	team.RecomputeTotals()
	if err := repo.Update(ctx, team); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, _ := repo.FindByID(ctx, team.ID)
	if len(found.Members) != 1 || found.Members[0].Name != "Salim" {
		t.Error("update must replace the member list")
	}
	if len(found.ReceiptBooks) != 1 || !found.ReceiptBooks[0].CollectedAmount.Equal(decimal.RequireFromString("1200")) {
		t.Error("update must replace the book list")
	}
	if !found.TotalCollection.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("total = %s, want 1200", found.TotalCollection)
	}
}

func TestTeamRepositoryUpdateLockGuard(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := sampleTeam(season.ID, "Riverside")
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// First writer finalizes.
	finalized := *team
	finalized.Finalize(decimal.Zero)
	if err := repo.Update(ctx, &finalized); err != nil {
		t.Fatalf("finalize write failed: %v", err)
	}

	// Second writer read the team before the lock and now loses the race.
	stale := *team
	stale.PlaceName = "Overwritten"
	err := repo.Update(ctx, &stale)
	if !errors.Is(err, domainerror.ErrTeamLocked) {
		t.Fatalf("expected ErrTeamLocked, got %v", err)
	}

	found, _ := repo.FindByID(ctx, team.ID)
	if found.PlaceName != "Riverside" {
		t.Error("losing writer must not overwrite the settled record")
	}
}

func TestTeamRepositoryUpdateNotFound(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)

	team := sampleTeam(season.ID, "Riverside")
	err := repo.Update(context.Background(), team)
	if !errors.Is(err, domainerror.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := sampleTeam(season.ID, "Riverside")
	team.ReceiptBooks = []entity.ReceiptBook{{BookNumber: 1, StartPage: 1, EndPage: 50}}
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(ctx, team.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, team.ID); !errors.Is(err, domainerror.ErrTeamNotFound) {
		t.Error("deleted team must be gone")
	}

	var bookCount int64
	db.Model(&model.ReceiptBookModel{}).Where("team_id = ?", team.ID).Count(&bookCount)
	if bookCount != 0 {
		t.Error("delete must remove child book rows")
	}
}

func TestTeamRepositoryFindByFilter(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	other := entity.NewSeason("Ramadan 2025")
	if err := NewSeasonRepository(db).Create(context.Background(), other); err != nil {
		t.Fatalf("failed to seed second season: %v", err)
	}
	repo := NewTeamRepository(db)
	ctx := context.Background()

	inSeason := sampleTeam(season.ID, "Riverside")
	settled := sampleTeam(season.ID, "Hilltop")
	settled.Finalize(decimal.Zero)
	elsewhere := sampleTeam(other.ID, "Lakeside")
	for _, team := range []*entity.Team{inSeason, settled, elsewhere} {
		if err := repo.Create(ctx, team); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	teams, err := repo.FindByFilter(ctx, adapter.TeamFilter{SeasonID: &season.ID})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(teams) != 2 {
		t.Errorf("season filter returned %d teams, want 2", len(teams))
	}

	settledStatus := entity.TeamStatusSettled
	teams, err = repo.FindByFilter(ctx, adapter.TeamFilter{SeasonID: &season.ID, Status: &settledStatus})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(teams) != 1 || teams[0].PlaceName != "Hilltop" {
		t.Error("status filter must narrow to the settled team")
	}
}

func TestTeamRepositoryFindEnteredBook(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	holder := sampleTeam(season.ID, "Hilltop")
	holder.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, StartPage: 151, EndPage: 200, CollectedAmount: decimal.RequireFromString("900"), IsEntered: true},
		{BookNumber: 6, StartPage: 251, EndPage: 300},
	}
	holder.RecomputeTotals()
	if err := repo.Create(ctx, holder); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other, err := repo.FindEnteredBook(ctx, season.ID, 4, uuid.New())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if other == nil || other.PlaceName != "Hilltop" {
		t.Fatal("entered book must name its holder")
	}

	// The holder itself is excluded from the scan.
	if other, _ := repo.FindEnteredBook(ctx, season.ID, 4, holder.ID); other != nil {
		t.Error("scan must exclude the requesting team")
	}

	// Assigned-but-unentered books are free in the entered scan, held in the
	// assignment scan.
	if other, _ := repo.FindEnteredBook(ctx, season.ID, 6, uuid.New()); other != nil {
		t.Error("book without collection must be free in the entered scan")
	}
	if other, _ := repo.FindAssignedBook(ctx, season.ID, 6, uuid.New()); other == nil {
		t.Error("assignment scan must match unentered books")
	}

	// A different season is a different book space.
	if other, _ := repo.FindEnteredBook(ctx, uuid.New(), 4, uuid.New()); other != nil {
		t.Error("scan must be season-scoped")
	}
}

func TestTeamRepositoryUniqueIndexBackstop(t *testing.T) {
	db := openTestDB(t)
	season := seedSeason(t, db, true)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	first := sampleTeam(season.ID, "Hilltop")
	first.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, StartPage: 151, EndPage: 200, CollectedAmount: decimal.RequireFromString("900"), IsEntered: true},
	}
	first.RecomputeTotals()
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Same entered book in the same season hits the partial unique index.
	second := sampleTeam(season.ID, "Riverside")
	second.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, StartPage: 151, EndPage: 200, CollectedAmount: decimal.RequireFromString("100"), IsEntered: true},
	}
	second.RecomputeTotals()
	err := repo.Create(ctx, second)
	if !errors.Is(err, domainerror.ErrBookConflict) {
		t.Fatalf("expected ErrBookConflict from the index backstop, got %v", err)
	}

	// Unentered duplicates are fine.
	third := sampleTeam(season.ID, "Lakeside")
	third.ReceiptBooks = []entity.ReceiptBook{
		{BookNumber: 4, StartPage: 151, EndPage: 200},
	}
	if err := repo.Create(ctx, third); err != nil {
		t.Fatalf("unentered duplicate must be allowed, got %v", err)
	}
}
