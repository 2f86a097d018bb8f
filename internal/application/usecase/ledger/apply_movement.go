// Package ledger contains the goal balance ledger use cases. A goal's
// balance is a derived quantity: every change goes through
// ApplyMovement, which updates the goal and appends one immutable
// movement record in a single transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// ApplyMovementInput represents one requested balance change. Amount is
// normalized to its absolute value: direction comes from Action only.
// OccurredOn is the caller-supplied effective date of the movement.
type ApplyMovementInput struct {
	GoalID     uuid.UUID
	OwnerID    uuid.UUID
	Action     string
	Amount     decimal.Decimal
	OccurredOn time.Time
}

// ApplyMovementOutput represents the result of a balance change.
// CompletedNow is true only when this call transitioned the goal from
// in_progress to completed, so callers can trigger downstream alerts.
type ApplyMovementOutput struct {
	Goal         *entity.Goal
	Movement     *entity.Movement
	CompletedNow bool
}

// ApplyMovementUseCase orchestrates one goal balance update.
type ApplyMovementUseCase struct {
	goalRepo     adapter.GoalRepository
	movementRepo adapter.MovementRepository
	txManager    adapter.TxManager
	now          func() time.Time
}

// NewApplyMovementUseCase creates a new ApplyMovementUseCase instance.
func NewApplyMovementUseCase(
	goalRepo adapter.GoalRepository,
	movementRepo adapter.MovementRepository,
	txManager adapter.TxManager,
) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{
		goalRepo:     goalRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

// Execute applies one movement to a goal's balance.
//
// Every validation happens before any persistent write: a rejected call
// leaves the goal balance, status and movement count untouched. The
// goal update and the movement append commit atomically; a version
// conflict on the goal row surfaces as the retryable ErrConcurrentUpdate.
func (uc *ApplyMovementUseCase) Execute(ctx context.Context, input ApplyMovementInput) (*ApplyMovementOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.OwnerID != input.OwnerID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerUnauthorized,
			"not authorized to move this goal's balance",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	action := entity.MovementAction(input.Action)
	if !entity.IsValidMovementAction(action) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAction,
			"action must be 'added' or 'withdrawn'",
			domainerror.ErrInvalidMovementAction,
		)
	}

	// The sign of the caller's amount carries no meaning
	amount := input.Amount.Abs()
	if !amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidMovementAmount,
		)
	}

	var tentative decimal.Decimal
	switch action {
	case entity.MovementAdded:
		tentative = goal.CurrentAmount.Add(amount)
	case entity.MovementWithdrawn:
		tentative = goal.CurrentAmount.Sub(amount)
	}

	if tentative.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInsufficientBalance,
			"withdrawal exceeds the goal balance",
			domainerror.NewInsufficientBalanceError(goal.CurrentAmount, amount),
		)
	}

	now := uc.now()

	goal.CurrentAmount = tentative
	completedNow := false
	// Completion is a one-time achievement marker: a later withdrawal
	// below target never reverts it.
	if goal.Status == entity.GoalStatusInProgress && goal.TargetReached() {
		goal.Status = entity.GoalStatusCompleted
		completedNow = true
	}
	goal.UpdatedAt = now.UTC()

	movement := entity.NewMovement(goal.ID, amount, action, input.OccurredOn, now)

	err = uc.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.goalRepo.Update(txCtx, goal); err != nil {
			return err
		}
		return uc.movementRepo.Create(txCtx, movement)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrConcurrentUpdate) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeConcurrentUpdate,
				"goal was modified concurrently, retry the movement",
				domainerror.ErrConcurrentUpdate,
			)
		}
		return nil, fmt.Errorf("failed to apply movement: %w", err)
	}

	return &ApplyMovementOutput{
		Goal:         goal,
		Movement:     movement,
		CompletedNow: completedNow,
	}, nil
}
