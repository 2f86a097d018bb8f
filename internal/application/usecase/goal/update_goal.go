package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Each field is
// independently optional; absent fields are left untouched. The input
// deliberately lists only the fields an owner may edit: id, owner_id,
// created_on and the ledger-derived balance are not patchable.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	OwnerID      uuid.UUID
	Title        *string
	Category     *string
	TargetAmount *decimal.Decimal
	DueOn        *time.Time
	Status       *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal field edits.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.OwnerID != input.OwnerID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeEmptyGoalTitle,
				"title must not be empty",
				domainerror.ErrEmptyGoalTitle,
			)
		}
		goal.Title = *input.Title
	}

	if input.Category != nil {
		goal.Category = entity.NormalizeCategory(*input.Category)
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.DueOn != nil {
		dueOn := entity.TruncateToDate(*input.DueOn)
		if dueOn.Before(goal.CreatedOn) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidDueDate,
				"due date must not precede the creation date",
				domainerror.ErrInvalidDueDate,
			)
		}
		goal.DueOn = dueOn
	}

	if input.Status != nil {
		status := entity.GoalStatus(*input.Status)
		if !entity.IsValidGoalStatus(status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'in_progress', 'completed', 'canceled' or 'overdue'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = status
	}

	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
