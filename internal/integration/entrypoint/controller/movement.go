package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/application/usecase/ledger"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
	"github.com/savings-goals/backend/internal/integration/entrypoint/dto"
	"github.com/savings-goals/backend/internal/integration/entrypoint/middleware"
)

// MovementController handles goal balance movement endpoints.
type MovementController struct {
	applyUseCase *ledger.ApplyMovementUseCase
	listUseCase  *ledger.ListMovementsUseCase
	notifier     adapter.AlertNotifier
}

// NewMovementController creates a new movement controller instance.
func NewMovementController(
	applyUseCase *ledger.ApplyMovementUseCase,
	listUseCase *ledger.ListMovementsUseCase,
	notifier adapter.AlertNotifier,
) *MovementController {
	return &MovementController{
		applyUseCase: applyUseCase,
		listUseCase:  listUseCase,
		notifier:     notifier,
	}
}

// UpdateBalance handles POST /goals/:id/balance requests.
func (c *MovementController) UpdateBalance(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Owner not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	occurredOn, err := dto.ParseDate(req.OccurredOn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid occurred_on date format, expected YYYY-MM-DD",
		})
		return
	}

	input := ledger.ApplyMovementInput{
		GoalID:     goalID,
		OwnerID:    ownerID,
		Action:     req.Action,
		Amount:     req.Amount,
		OccurredOn: occurredOn,
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	// Completion propagation is synchronous and caller-driven: the
	// notifier runs here, after the transaction committed.
	if output.CompletedNow && c.notifier != nil {
		c.notifier.GoalCompleted(ctx.Request.Context(), output.Goal)
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// ListMovements handles GET /goals/:id/movements requests.
func (c *MovementController) ListMovements(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Owner not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input := ledger.ListMovementsInput{
		GoalID:  goalID,
		OwnerID: ownerID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(output.Movements))
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *MovementController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Error(),
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
// ErrCodeConcurrentUpdate maps to 409 so clients know to retry.
func (c *MovementController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeLedgerGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLedgerUnauthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAction, domainerror.ErrCodeInvalidAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeConcurrentUpdate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
