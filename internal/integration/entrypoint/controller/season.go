package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/usecase/season"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
)

// SeasonController handles season endpoints.
type SeasonController struct {
	listUseCase     *season.ListSeasonsUseCase
	createUseCase   *season.CreateSeasonUseCase
	activateUseCase *season.ActivateSeasonUseCase
	activeUseCase   *season.GetActiveSeasonUseCase
	lockUseCase     *season.LockSeasonUseCase
}

// NewSeasonController creates a new season controller instance.
func NewSeasonController(
	listUseCase *season.ListSeasonsUseCase,
	createUseCase *season.CreateSeasonUseCase,
	activateUseCase *season.ActivateSeasonUseCase,
	activeUseCase *season.GetActiveSeasonUseCase,
	lockUseCase *season.LockSeasonUseCase,
) *SeasonController {
	return &SeasonController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		activateUseCase: activateUseCase,
		activeUseCase:   activeUseCase,
		lockUseCase:     lockUseCase,
	}
}

// List handles GET /seasons requests.
func (c *SeasonController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonListResponse(output.Seasons))
}

// Create handles POST /seasons requests.
func (c *SeasonController) Create(ctx *gin.Context) {
	var req dto.CreateSeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), season.CreateSeasonInput{
		Name:     req.Name,
		Activate: req.Activate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSeasonResponse(output.Season))
}

// GetActive handles GET /seasons/active requests.
func (c *SeasonController) GetActive(ctx *gin.Context) {
	output, err := c.activeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonResponse(output.Season))
}

// Activate handles POST /seasons/:id/activate requests.
func (c *SeasonController) Activate(ctx *gin.Context) {
	seasonID, ok := parseSeasonID(ctx)
	if !ok {
		return
	}

	output, err := c.activateUseCase.Execute(ctx.Request.Context(), season.ActivateSeasonInput{
		SeasonID: seasonID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonResponse(output.Season))
}

// Lock handles PATCH /seasons/:id/lock requests.
func (c *SeasonController) Lock(ctx *gin.Context) {
	seasonID, ok := parseSeasonID(ctx)
	if !ok {
		return
	}

	var req dto.LockSeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.lockUseCase.Execute(ctx.Request.Context(), season.LockSeasonInput{
		SeasonID: seasonID,
		Locked:   *req.Locked,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LockSeasonResponse{
		Season:        dto.ToSeasonResponse(output.Season),
		LockedEntries: output.LockedEntries,
	})
}

func parseSeasonID(ctx *gin.Context) (uuid.UUID, bool) {
	seasonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid season ID format",
		})
		return uuid.Nil, false
	}
	return seasonID, true
}
