package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// ListMovementsInput represents the input for listing a goal's ledger.
type ListMovementsInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// ListMovementsOutput represents the output of listing a goal's ledger.
type ListMovementsOutput struct {
	Movements []*entity.Movement
}

// ListMovementsUseCase handles the read path of the ledger.
type ListMovementsUseCase struct {
	goalRepo     adapter.GoalRepository
	movementRepo adapter.MovementRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(goalRepo adapter.GoalRepository, movementRepo adapter.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{
		goalRepo:     goalRepo,
		movementRepo: movementRepo,
	}
}

// Execute lists a goal's movements, most recent first. Read-only.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
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
			"not authorized to read this goal's movements",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	movements, err := uc.movementRepo.FindByGoalID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return &ListMovementsOutput{
		Movements: movements,
	}, nil
}
