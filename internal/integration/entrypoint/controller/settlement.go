package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/usecase/settlement"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
)

// SettlementController handles settlement endpoints.
type SettlementController struct {
	recordUseCase           *settlement.RecordCollectionUseCase
	finalizeUseCase         *settlement.FinalizeUseCase
	finalizeCompleteUseCase *settlement.FinalizeCompleteUseCase
}

// NewSettlementController creates a new settlement controller instance.
func NewSettlementController(
	recordUseCase *settlement.RecordCollectionUseCase,
	finalizeUseCase *settlement.FinalizeUseCase,
	finalizeCompleteUseCase *settlement.FinalizeCompleteUseCase,
) *SettlementController {
	return &SettlementController{
		recordUseCase:           recordUseCase,
		finalizeUseCase:         finalizeUseCase,
		finalizeCompleteUseCase: finalizeCompleteUseCase,
	}
}

// RecordCollection handles PUT /settlements/:teamId/collection requests.
func (c *SettlementController) RecordCollection(ctx *gin.Context) {
	teamID, ok := parseSettlementTeamID(ctx)
	if !ok {
		return
	}

	var req dto.CollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), settlement.RecordCollectionInput{
		TeamID:          teamID,
		CollectionInput: toCollectionInput(req.Books, req.CashAmount, req.CashRef, req.BankAmount, req.BankRef),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(output.Team))
}

// Finalize handles POST /settlements/:teamId/finalize requests.
func (c *SettlementController) Finalize(ctx *gin.Context) {
	teamID, ok := parseSettlementTeamID(ctx)
	if !ok {
		return
	}

	var req dto.FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.finalizeUseCase.Execute(ctx.Request.Context(), settlement.FinalizeInput{
		TeamID:  teamID,
		Expense: req.Expense,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toSettlementResponse(output))
}

// FinalizeComplete handles POST /settlements/:teamId/finalize-complete
// requests: collection entry and finalization in one atomic step.
func (c *SettlementController) FinalizeComplete(ctx *gin.Context) {
	teamID, ok := parseSettlementTeamID(ctx)
	if !ok {
		return
	}

	var req dto.FinalizeCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.finalizeCompleteUseCase.Execute(ctx.Request.Context(), settlement.FinalizeCompleteInput{
		TeamID:          teamID,
		CollectionInput: toCollectionInput(req.Books, req.CashAmount, req.CashRef, req.BankAmount, req.BankRef),
		Expense:         req.Expense,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toSettlementResponse(output))
}

func parseSettlementTeamID(ctx *gin.Context) (uuid.UUID, bool) {
	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid team ID format",
		})
		return uuid.Nil, false
	}
	return teamID, true
}

func toCollectionInput(books []dto.BookEntryPayload, cashAmount decimal.Decimal, cashRef string, bankAmount decimal.Decimal, bankRef string) settlement.CollectionInput {
	entries := make([]settlement.BookEntry, len(books))
	for i, book := range books {
		entries[i] = settlement.BookEntry{
			BookNumber:      book.BookNumber,
			UsedStartPage:   book.UsedStartPage,
			UsedEndPage:     book.UsedEndPage,
			CollectedAmount: book.CollectedAmount,
		}
	}
	return settlement.CollectionInput{
		Books:      entries,
		CashAmount: cashAmount,
		CashRef:    cashRef,
		BankAmount: bankAmount,
		BankRef:    bankRef,
	}
}

func toSettlementResponse(output *settlement.FinalizeOutput) dto.SettlementResponse {
	return dto.SettlementResponse{
		Team:               dto.ToTeamResponse(output.Team),
		Reconciled:         output.Reconciled,
		CashBankDifference: output.CashBankDifference,
	}
}
