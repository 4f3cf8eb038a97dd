package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/usecase/dashboard"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	statsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(statsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{statsUseCase: statsUseCase}
}

// GetStats handles GET /dashboard/stats requests. Without a seasonId query
// parameter the active season is summarized.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	input := dashboard.GetStatsInput{}

	if seasonIDStr := ctx.Query("seasonId"); seasonIDStr != "" {
		seasonID, err := uuid.Parse(seasonIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid season ID format",
			})
			return
		}
		input.SeasonID = &seasonID
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}
