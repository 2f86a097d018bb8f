package dto

import (
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// UpdateBalanceRequest represents the request body for a balance movement.
// The amount's sign is ignored: direction travels in the action field.
type UpdateBalanceRequest struct {
	Action     string          `json:"action" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	OccurredOn string          `json:"occurred_on" binding:"required"`
}

// MovementResponse represents a single movement in API responses.
type MovementResponse struct {
	ID         string `json:"id"`
	GoalID     string `json:"goal_id"`
	Amount     string `json:"amount"`
	Action     string `json:"action"`
	OccurredOn string `json:"occurred_on"`
}

// MovementListResponse represents the response for listing a goal's movements.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// ToMovementResponse converts a domain Movement entity to a MovementResponse DTO.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID.String(),
		GoalID:     m.GoalID.String(),
		Amount:     m.Amount.StringFixed(2),
		Action:     string(m.Action),
		OccurredOn: m.OccurredOn.Format(dateLayout),
	}
}

// ToMovementListResponse converts a list of movements to a MovementListResponse.
func ToMovementListResponse(movements []*entity.Movement) MovementListResponse {
	responses := make([]MovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ToMovementResponse(m)
	}
	return MovementListResponse{
		Movements: responses,
	}
}
