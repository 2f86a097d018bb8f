package adapters

import (
	"context"
	"log/slog"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
)

// logNotifier implements adapter.AlertNotifier by logging the event.
// The real alert subsystem lives outside this service and replaces this
// implementation at wiring time.
type logNotifier struct{}

// NewLogNotifier creates an AlertNotifier that records completions in the log.
func NewLogNotifier() adapter.AlertNotifier {
	return &logNotifier{}
}

// GoalCompleted logs that the goal just reached its target.
func (n *logNotifier) GoalCompleted(_ context.Context, goal *entity.Goal) {
	slog.Info("goal completed",
		"goal_id", goal.ID,
		"owner_id", goal.OwnerID,
		"target_amount", goal.TargetAmount.StringFixed(2),
		"current_amount", goal.CurrentAmount.StringFixed(2),
	)
}
