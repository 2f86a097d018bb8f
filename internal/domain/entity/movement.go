package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementAction represents the direction of a goal balance movement.
// Direction is carried by the action, never by the sign of the amount.
type MovementAction string

const (
	MovementAdded     MovementAction = "added"
	MovementWithdrawn MovementAction = "withdrawn"
)

// IsValidMovementAction reports whether the action is one of the two
// recognized values.
func IsValidMovementAction(action MovementAction) bool {
	return action == MovementAdded || action == MovementWithdrawn
}

// Movement is one immutable ledger record of a goal balance change.
// Movements are append-only: they are created as a side effect of a
// successful balance update and removed only when their goal is deleted.
type Movement struct {
	ID         uuid.UUID
	GoalID     uuid.UUID
	Amount     decimal.Decimal
	Action     MovementAction
	OccurredOn time.Time
	CreatedAt  time.Time
}

// NewMovement creates a new Movement entity. OccurredOn is the
// caller-supplied effective date of the movement, not necessarily today.
func NewMovement(goalID uuid.UUID, amount decimal.Decimal, action MovementAction, occurredOn time.Time, now time.Time) *Movement {
	return &Movement{
		ID:         uuid.New(),
		GoalID:     goalID,
		Amount:     amount,
		Action:     action,
		OccurredOn: TruncateToDate(occurredOn),
		CreatedAt:  now.UTC(),
	}
}
