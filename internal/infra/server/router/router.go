// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/campaign-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	teamController       *controller.TeamController
	settlementController *controller.SettlementController
	seasonController     *controller.SeasonController
	fieldDataController  *controller.FieldDataController
	dashboardController  *controller.DashboardController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	teamController *controller.TeamController,
	settlementController *controller.SettlementController,
	seasonController *controller.SeasonController,
	fieldDataController *controller.FieldDataController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		teamController:       teamController,
		settlementController: settlementController,
		seasonController:     seasonController,
		fieldDataController:  fieldDataController,
		dashboardController:  dashboardController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/change-password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
			}
		}

		// Team routes (admin only)
		if r.teamController != nil && r.authMiddleware != nil {
			teams := v1.Group("/teams")
			teams.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				teams.GET("", r.teamController.List)
				teams.POST("", r.teamController.Create)
				teams.GET("/:id", r.teamController.Get)
				teams.PATCH("/:id", r.teamController.Update)
				teams.DELETE("/:id", r.teamController.Delete)
				teams.PUT("/:id/books", r.teamController.AssignBooks)
			}
		}

		// Settlement routes (admin only)
		if r.settlementController != nil && r.authMiddleware != nil {
			settlements := v1.Group("/settlements")
			settlements.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				settlements.PUT("/:teamId/collection", r.settlementController.RecordCollection)
				settlements.POST("/:teamId/finalize", r.settlementController.Finalize)
				settlements.POST("/:teamId/finalize-complete", r.settlementController.FinalizeComplete)
			}
		}

		// Season routes (admin only)
		if r.seasonController != nil && r.authMiddleware != nil {
			seasons := v1.Group("/seasons")
			seasons.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				seasons.GET("", r.seasonController.List)
				seasons.POST("", r.seasonController.Create)
				seasons.GET("/active", r.seasonController.GetActive)
				seasons.POST("/:id/activate", r.seasonController.Activate)
				seasons.PATCH("/:id/lock", r.seasonController.Lock)
			}
		}

		// Field survey routes (any authenticated role; per-entry access rules
		// are enforced in the use cases)
		if r.fieldDataController != nil && r.authMiddleware != nil {
			fieldData := v1.Group("/field-data")
			fieldData.Use(r.authMiddleware.Authenticate())
			{
				fieldData.GET("", r.fieldDataController.List)
				fieldData.POST("", r.fieldDataController.Create)
				fieldData.GET("/:id", r.fieldDataController.Get)
				fieldData.PATCH("/:id", r.fieldDataController.Update)
				fieldData.DELETE("/:id", r.fieldDataController.Delete)
			}
		}

		// Dashboard routes (admin only)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				dashboard.GET("/stats", r.dashboardController.GetStats)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
