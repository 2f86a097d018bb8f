// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusCanceled   GoalStatus = "canceled"
	GoalStatusOverdue    GoalStatus = "overdue"
)

// IsValidGoalStatus reports whether the status is one of the recognized values.
func IsValidGoalStatus(status GoalStatus) bool {
	return status == GoalStatusInProgress ||
		status == GoalStatusCompleted ||
		status == GoalStatusCanceled ||
		status == GoalStatusOverdue
}

// GoalCategory represents the category label of a savings goal.
type GoalCategory string

const (
	CategoryTravel        GoalCategory = "travel"
	CategoryEducation     GoalCategory = "education"
	CategoryEmergencyFund GoalCategory = "emergency_fund"
	CategoryHome          GoalCategory = "home"
	CategoryVehicle       GoalCategory = "vehicle"
	CategoryHealth        GoalCategory = "health"
	CategoryDebtPayoff    GoalCategory = "debt_payoff"
	CategoryOther         GoalCategory = "other"
)

// goalCategories is the closed set of accepted category labels.
var goalCategories = map[GoalCategory]struct{}{
	CategoryTravel:        {},
	CategoryEducation:     {},
	CategoryEmergencyFund: {},
	CategoryHome:          {},
	CategoryVehicle:       {},
	CategoryHealth:        {},
	CategoryDebtPayoff:    {},
	CategoryOther:         {},
}

// NormalizeCategory maps a caller-supplied category to the closed set.
// Blank input and labels outside the set fall back to CategoryOther;
// matching is exact and case-sensitive. Normalization never fails.
func NormalizeCategory(input string) GoalCategory {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return CategoryOther
	}
	if _, ok := goalCategories[GoalCategory(trimmed)]; ok {
		return GoalCategory(trimmed)
	}
	return CategoryOther
}

// Goal represents a tracked savings objective. CurrentAmount is the
// ledger-derived balance: it only changes through applied movements.
type Goal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Category      GoalCategory
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	CreatedOn     time.Time
	DueOn         time.Time
	Status        GoalStatus
	Version       int // Optimistic-locking counter, bumped on every update
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity. The balance always starts at zero
// and the status at in_progress regardless of caller input; created_on
// is taken from the supplied clock value so callers control "today".
func NewGoal(ownerID uuid.UUID, title string, category string, targetAmount decimal.Decimal, dueOn time.Time, now time.Time) *Goal {
	return &Goal{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         title,
		Category:      NormalizeCategory(category),
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		CreatedOn:     TruncateToDate(now),
		DueOn:         TruncateToDate(dueOn),
		Status:        GoalStatusInProgress,
		Version:       1,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
}

// TargetReached reports whether the current balance meets the target.
func (g *Goal) TargetReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// TruncateToDate strips the time-of-day component, keeping a UTC date.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
