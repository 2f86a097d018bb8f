package adapter

import (
	"context"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// AlertNotifier is the hook the alert subsystem plugs into. Propagation
// is synchronous and caller-driven: the HTTP layer invokes it after a
// balance update completes a goal. Implementations must not fail the
// request; notification errors are their own concern.
type AlertNotifier interface {
	// GoalCompleted signals that the goal just reached its target.
	GoalCompleted(ctx context.Context, goal *entity.Goal)
}
