package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// CreateGoalRequest represents the request body for goal creation.
// Balance, status and creation date are server-controlled and absent here.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required"`
	Category     string          `json:"category"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	DueOn        string          `json:"due_on" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title        *string          `json:"title,omitempty"`
	Category     *string          `json:"category,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	DueOn        *string          `json:"due_on,omitempty"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=in_progress completed canceled overdue"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	CreatedOn     string `json:"created_on"`
	DueOn         string `json:"due_on"`
	Status        string `json:"status"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		OwnerID:       g.OwnerID.String(),
		Title:         g.Title,
		Category:      string(g.Category),
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		CreatedOn:     g.CreatedOn.Format(dateLayout),
		DueOn:         g.DueOn.Format(dateLayout),
		Status:        string(g.Status),
	}
}

// ToGoalListResponse converts a list of goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

// ParseDate parses a date-only wire value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
