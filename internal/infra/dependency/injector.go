// Package dependency wires up application dependencies.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/campaign-tracker/backend/config"
	"github.com/campaign-tracker/backend/internal/application/usecase/auth"
	"github.com/campaign-tracker/backend/internal/application/usecase/dashboard"
	"github.com/campaign-tracker/backend/internal/application/usecase/fielddata"
	"github.com/campaign-tracker/backend/internal/application/usecase/season"
	"github.com/campaign-tracker/backend/internal/application/usecase/settlement"
	"github.com/campaign-tracker/backend/internal/application/usecase/team"
	"github.com/campaign-tracker/backend/internal/integration/adapters"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/campaign-tracker/backend/internal/infra/server/router"
	"github.com/campaign-tracker/backend/internal/integration/persistence"
)

// Injector holds all wired application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates and wires all application dependencies.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthCheck func() bool) *Injector {
	// Repositories
	teamRepo := persistence.NewTeamRepository(db)
	seasonRepo := persistence.NewSeasonRepository(db)
	fieldDataRepo := persistence.NewFieldDataRepository(db)
	adminRepo := persistence.NewAdminRepository(db)

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	passwordService := adapters.NewPasswordService()

	// Use cases
	listTeamsUseCase := team.NewListTeamsUseCase(teamRepo)
	getTeamUseCase := team.NewGetTeamUseCase(teamRepo)
	createTeamUseCase := team.NewCreateTeamUseCase(teamRepo, seasonRepo)
	updateTeamUseCase := team.NewUpdateTeamUseCase(teamRepo)
	deleteTeamUseCase := team.NewDeleteTeamUseCase(teamRepo, fieldDataRepo)
	assignBooksUseCase := team.NewAssignBooksUseCase(teamRepo, cfg.Settlement.StrictBookAssignment)

	recordCollectionUseCase := settlement.NewRecordCollectionUseCase(teamRepo)
	finalizeUseCase := settlement.NewFinalizeUseCase(teamRepo)
	finalizeCompleteUseCase := settlement.NewFinalizeCompleteUseCase(teamRepo)

	listSeasonsUseCase := season.NewListSeasonsUseCase(seasonRepo)
	createSeasonUseCase := season.NewCreateSeasonUseCase(seasonRepo)
	activateSeasonUseCase := season.NewActivateSeasonUseCase(seasonRepo)
	getActiveSeasonUseCase := season.NewGetActiveSeasonUseCase(seasonRepo)
	lockSeasonUseCase := season.NewLockSeasonUseCase(seasonRepo, fieldDataRepo)

	listFieldDataUseCase := fielddata.NewListFieldDataUseCase(fieldDataRepo)
	getFieldDataUseCase := fielddata.NewGetFieldDataUseCase(fieldDataRepo)
	createFieldDataUseCase := fielddata.NewCreateFieldDataUseCase(fieldDataRepo, seasonRepo)
	updateFieldDataUseCase := fielddata.NewUpdateFieldDataUseCase(fieldDataRepo)
	deleteFieldDataUseCase := fielddata.NewDeleteFieldDataUseCase(fieldDataRepo)

	getStatsUseCase := dashboard.NewGetStatsUseCase(teamRepo, seasonRepo)

	loginUseCase := auth.NewLoginUseCase(adminRepo, tokenService, passwordService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(adminRepo, passwordService)

	// Controllers
	healthController := controller.NewHealthController(dbHealthCheck)
	authController := controller.NewAuthController(loginUseCase, changePasswordUseCase)
	teamController := controller.NewTeamController(
		listTeamsUseCase,
		getTeamUseCase,
		createTeamUseCase,
		updateTeamUseCase,
		deleteTeamUseCase,
		assignBooksUseCase,
		getActiveSeasonUseCase,
	)
	settlementController := controller.NewSettlementController(
		recordCollectionUseCase,
		finalizeUseCase,
		finalizeCompleteUseCase,
	)
	seasonController := controller.NewSeasonController(
		listSeasonsUseCase,
		createSeasonUseCase,
		activateSeasonUseCase,
		getActiveSeasonUseCase,
		lockSeasonUseCase,
	)
	fieldDataController := controller.NewFieldDataController(
		listFieldDataUseCase,
		getFieldDataUseCase,
		createFieldDataUseCase,
		updateFieldDataUseCase,
		deleteFieldDataUseCase,
	)
	dashboardController := controller.NewDashboardController(getStatsUseCase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	loginRateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		// Relaxed limits so test suites can hammer the login endpoint
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, time.Minute)
	}

	// Router
	appRouter := router.NewRouter(
		healthController,
		authController,
		teamController,
		settlementController,
		seasonController,
		fieldDataController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
