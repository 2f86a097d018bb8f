// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. Balance,
// status and creation date are never taken from the caller: the balance
// starts at zero, the status at in_progress and created_on at today.
type CreateGoalInput struct {
	OwnerID      uuid.UUID
	Title        string
	Category     string
	TargetAmount decimal.Decimal
	DueOn        time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate title
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title must not be empty",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	// Validate target amount
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	now := uc.now()

	// Validate due date against today
	if entity.TruncateToDate(input.DueOn).Before(entity.TruncateToDate(now)) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDueDate,
			"due date must not be in the past",
			domainerror.ErrInvalidDueDate,
		)
	}

	// Create goal entity; the category is normalized inside NewGoal
	goal := entity.NewGoal(
		input.OwnerID,
		input.Title,
		input.Category,
		input.TargetAmount,
		input.DueOn,
		now,
	)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
