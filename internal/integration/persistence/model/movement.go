package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// MovementModel represents the goal_movements table in the database.
// Rows are append-only; deleting a goal cascades over its movements.
type MovementModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Action     string          `gorm:"type:varchar(20);not null"`
	OccurredOn time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`

	Goal *GoalModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the MovementModel.
func (MovementModel) TableName() string {
	return "goal_movements"
}

// ToEntity converts a MovementModel to a domain Movement entity.
func (m *MovementModel) ToEntity() *entity.Movement {
	return &entity.Movement{
		ID:         m.ID,
		GoalID:     m.GoalID,
		Amount:     m.Amount,
		Action:     entity.MovementAction(m.Action),
		OccurredOn: m.OccurredOn,
		CreatedAt:  m.CreatedAt,
	}
}

// MovementFromEntity creates a MovementModel from a domain Movement entity.
func MovementFromEntity(movement *entity.Movement) *MovementModel {
	return &MovementModel{
		ID:         movement.ID,
		GoalID:     movement.GoalID,
		Amount:     movement.Amount,
		Action:     string(movement.Action),
		OccurredOn: movement.OccurredOn,
		CreatedAt:  movement.CreatedAt,
	}
}
