// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps coded domain errors to HTTP responses. Endpoints can
// surface errors from several areas (a team mutation can fail on a season
// gate), so the mapping is shared across controllers.
func handleDomainError(ctx *gin.Context, err error) {
	var conflictErr *domainerror.BookConflictError
	if errors.As(err, &conflictErr) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: conflictErr.Error(),
			Code:  string(domainerror.ErrCodeBookConflict),
		})
		return
	}

	var deletionErr *domainerror.DeletionDeniedError
	if errors.As(err, &deletionErr) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: deletionErr.Error(),
			Code:  string(domainerror.ErrCodeTeamDeletionDenied),
		})
		return
	}

	var teamErr *domainerror.TeamError
	if errors.As(err, &teamErr) {
		ctx.JSON(teamStatusCode(teamErr.Code), dto.ErrorResponse{
			Error: teamErr.Message,
			Code:  string(teamErr.Code),
		})
		return
	}

	var settlementErr *domainerror.SettlementError
	if errors.As(err, &settlementErr) {
		ctx.JSON(settlementStatusCode(settlementErr.Code), dto.ErrorResponse{
			Error: settlementErr.Message,
			Code:  string(settlementErr.Code),
		})
		return
	}

	var seasonErr *domainerror.SeasonError
	if errors.As(err, &seasonErr) {
		ctx.JSON(seasonStatusCode(seasonErr.Code), dto.ErrorResponse{
			Error: seasonErr.Message,
			Code:  string(seasonErr.Code),
		})
		return
	}

	var fieldErr *domainerror.FieldDataError
	if errors.As(err, &fieldErr) {
		ctx.JSON(fieldDataStatusCode(fieldErr.Code), dto.ErrorResponse{
			Error: fieldErr.Message,
			Code:  string(fieldErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authStatusCode(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func teamStatusCode(code domainerror.TeamErrorCode) int {
	switch code {
	case domainerror.ErrCodeTeamNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTeamLocked:
		return http.StatusForbidden
	case domainerror.ErrCodeBookInUse,
		domainerror.ErrCodeBookAlreadyAssigned,
		domainerror.ErrCodeTeamDeletionDenied:
		return http.StatusConflict
	case domainerror.ErrCodeMissingTeamFields,
		domainerror.ErrCodeNoTeamMembers,
		domainerror.ErrCodeIncompleteMember,
		domainerror.ErrCodeNegativeAdvance,
		domainerror.ErrCodeMissingTeamID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func settlementStatusCode(code domainerror.SettlementErrorCode) int {
	switch code {
	case domainerror.ErrCodeBookConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBookNumber,
		domainerror.ErrCodeNegativeCollection,
		domainerror.ErrCodeNegativeExpense,
		domainerror.ErrCodeUsedPagesOutOfRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func seasonStatusCode(code domainerror.SeasonErrorCode) int {
	switch code {
	case domainerror.ErrCodeSeasonNotFound, domainerror.ErrCodeNoActiveSeason:
		return http.StatusNotFound
	case domainerror.ErrCodeSeasonNotActive, domainerror.ErrCodeSeasonLocked:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingSeasonName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fieldDataStatusCode(code domainerror.FieldDataErrorCode) int {
	switch code {
	case domainerror.ErrCodeFieldDataNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFieldDataLocked, domainerror.ErrCodeFieldDataAccessDenied:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingFieldDataFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func authStatusCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeAdminNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsufficientRole:
		return http.StatusForbidden
	case domainerror.ErrCodePasswordTooShort, domainerror.ErrCodeWrongCurrentPassword:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
