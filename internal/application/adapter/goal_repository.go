// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// All writes participate in the transaction installed by TxManager when
// one is present on the context.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID. Returns domain
	// error.ErrGoalNotFound when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByOwnerID retrieves all goals belonging to an owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error)

	// Update persists an existing goal. The write is guarded by the
	// goal's version: a stale version yields error.ErrConcurrentUpdate.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal. Its movements are removed by cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
