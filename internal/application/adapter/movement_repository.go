package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// MovementRepository defines the interface for movement persistence.
// The movement ledger is append-only: there is deliberately no update
// or delete operation here.
type MovementRepository interface {
	// Create appends a new movement to the goal's ledger.
	Create(ctx context.Context, movement *entity.Movement) error

	// FindByGoalID retrieves all movements for a goal, most recent
	// first: occurred_on descending, ties broken by id descending.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Movement, error)
}
