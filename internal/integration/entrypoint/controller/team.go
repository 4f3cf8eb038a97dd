package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/usecase/season"
	"github.com/campaign-tracker/backend/internal/application/usecase/team"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
)

// TeamController handles team endpoints.
type TeamController struct {
	listUseCase        *team.ListTeamsUseCase
	getUseCase         *team.GetTeamUseCase
	createUseCase      *team.CreateTeamUseCase
	updateUseCase      *team.UpdateTeamUseCase
	deleteUseCase      *team.DeleteTeamUseCase
	assignBooksUseCase *team.AssignBooksUseCase
	activeSeasonUseCase *season.GetActiveSeasonUseCase
}

// NewTeamController creates a new team controller instance.
func NewTeamController(
	listUseCase *team.ListTeamsUseCase,
	getUseCase *team.GetTeamUseCase,
	createUseCase *team.CreateTeamUseCase,
	updateUseCase *team.UpdateTeamUseCase,
	deleteUseCase *team.DeleteTeamUseCase,
	assignBooksUseCase *team.AssignBooksUseCase,
	activeSeasonUseCase *season.GetActiveSeasonUseCase,
) *TeamController {
	return &TeamController{
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		assignBooksUseCase:  assignBooksUseCase,
		activeSeasonUseCase: activeSeasonUseCase,
	}
}

// List handles GET /teams requests. Without a seasonId query parameter the
// active season is used.
func (c *TeamController) List(ctx *gin.Context) {
	input := team.ListTeamsInput{}

	if seasonIDStr := ctx.Query("seasonId"); seasonIDStr != "" {
		seasonID, err := uuid.Parse(seasonIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid season ID format",
			})
			return
		}
		input.SeasonID = &seasonID
	} else {
		active, err := c.activeSeasonUseCase.Execute(ctx.Request.Context())
		if err != nil {
			handleDomainError(ctx, err)
			return
		}
		input.SeasonID = &active.Season.ID
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.TeamStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamListResponse(output.Teams))
}

// Get handles GET /teams/:id requests.
func (c *TeamController) Get(ctx *gin.Context) {
	teamID, ok := parseTeamID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), team.GetTeamInput{TeamID: teamID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(output.Team))
}

// Create handles POST /teams requests. New teams always land in the active
// season.
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	active, err := c.activeSeasonUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	input := team.CreateTeamInput{
		PlaceName:     req.PlaceName,
		State:         req.State,
		SeasonID:      active.Season.ID,
		Members:       toMembers(req.Members),
		AdvanceAmount: req.AdvanceAmount,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTeamResponse(output.Team))
}

// Update handles PATCH /teams/:id requests.
func (c *TeamController) Update(ctx *gin.Context) {
	teamID, ok := parseTeamID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := team.UpdateTeamInput{
		TeamID:        teamID,
		PlaceName:     req.PlaceName,
		State:         req.State,
		AdvanceAmount: req.AdvanceAmount,
	}
	if req.Members != nil {
		input.Members = toMembers(*req.Members)
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(output.Team))
}

// Delete handles DELETE /teams/:id requests.
func (c *TeamController) Delete(ctx *gin.Context) {
	teamID, ok := parseTeamID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), team.DeleteTeamInput{TeamID: teamID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignBooks handles PUT /teams/:id/books requests.
func (c *TeamController) AssignBooks(ctx *gin.Context) {
	teamID, ok := parseTeamID(ctx)
	if !ok {
		return
	}

	var req dto.AssignBooksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.assignBooksUseCase.Execute(ctx.Request.Context(), team.AssignBooksInput{
		TeamID:      teamID,
		BookNumbers: req.BookNumbers,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(output.Team))
}

func parseTeamID(ctx *gin.Context) (uuid.UUID, bool) {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid team ID format",
		})
		return uuid.Nil, false
	}
	return teamID, true
}

func toMembers(payloads []dto.TeamMemberPayload) []entity.TeamMember {
	members := make([]entity.TeamMember, len(payloads))
	for i, p := range payloads {
		members[i] = entity.TeamMember{
			Name:  p.Name,
			Class: p.Class,
			Phone: p.Phone,
		}
	}
	return members
}
