package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/usecase/fielddata"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/middleware"
)

// FieldDataController handles field survey endpoints.
type FieldDataController struct {
	listUseCase   *fielddata.ListFieldDataUseCase
	getUseCase    *fielddata.GetFieldDataUseCase
	createUseCase *fielddata.CreateFieldDataUseCase
	updateUseCase *fielddata.UpdateFieldDataUseCase
	deleteUseCase *fielddata.DeleteFieldDataUseCase
}

// NewFieldDataController creates a new field data controller instance.
func NewFieldDataController(
	listUseCase *fielddata.ListFieldDataUseCase,
	getUseCase *fielddata.GetFieldDataUseCase,
	createUseCase *fielddata.CreateFieldDataUseCase,
	updateUseCase *fielddata.UpdateFieldDataUseCase,
	deleteUseCase *fielddata.DeleteFieldDataUseCase,
) *FieldDataController {
	return &FieldDataController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /field-data requests.
func (c *FieldDataController) List(ctx *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	input := fielddata.ListFieldDataInput{Actor: claims}
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFieldDataListResponse(output.Entries))
}

// Get handles GET /field-data/:id requests.
func (c *FieldDataController) Get(ctx *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	fieldDataID, ok := parseFieldDataID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), fielddata.GetFieldDataInput{
		Actor:       claims,
		FieldDataID: fieldDataID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFieldDataResponse(output.FieldData))
}

// Create handles POST /field-data requests.
func (c *FieldDataController) Create(ctx *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	var req dto.CreateFieldDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fielddata.CreateFieldDataInput{
		Actor:      claims,
		MasjidName: req.MasjidName,
		Place:      req.Place,
		Location: entity.FieldLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		},
		ContactPerson: entity.FieldContact{
			Name:        req.ContactPerson.Name,
			Designation: req.ContactPerson.Designation,
			Phone:       req.ContactPerson.Phone,
		},
		CollectionInfo:    req.CollectionInfo,
		YearsOfCollection: req.YearsOfCollection,
		Remarks:           req.Remarks,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFieldDataResponse(output.FieldData))
}

// Update handles PATCH /field-data/:id requests.
func (c *FieldDataController) Update(ctx *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	fieldDataID, ok := parseFieldDataID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFieldDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := fielddata.UpdateFieldDataInput{
		Actor:             claims,
		FieldDataID:       fieldDataID,
		MasjidName:        req.MasjidName,
		Place:             req.Place,
		CollectionInfo:    req.CollectionInfo,
		YearsOfCollection: req.YearsOfCollection,
		Remarks:           req.Remarks,
	}
	if req.Location != nil {
		input.Location = &entity.FieldLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		}
	}
	if req.ContactPerson != nil {
		input.ContactPerson = &entity.FieldContact{
			Name:        req.ContactPerson.Name,
			Designation: req.ContactPerson.Designation,
			Phone:       req.ContactPerson.Phone,
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFieldDataResponse(output.FieldData))
}

// Delete handles DELETE /field-data/:id requests.
func (c *FieldDataController) Delete(ctx *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	fieldDataID, ok := parseFieldDataID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), fielddata.DeleteFieldDataInput{
		Actor:       claims,
		FieldDataID: fieldDataID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseFieldDataID(ctx *gin.Context) (uuid.UUID, bool) {
	fieldDataID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid field data ID format",
		})
		return uuid.Nil, false
	}
	return fieldDataID, true
}

func respondNotAuthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
