// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Category      string          `gorm:"type:varchar(30);not null;default:'other'"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedOn     time.Time       `gorm:"type:date;not null"`
	DueOn         time.Time       `gorm:"type:date;not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'in_progress'"`
	Version       int             `gorm:"not null;default:1"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Title:         m.Title,
		Category:      entity.GoalCategory(m.Category),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		CreatedOn:     m.CreatedOn,
		DueOn:         m.DueOn,
		Status:        entity.GoalStatus(m.Status),
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		OwnerID:       goal.OwnerID,
		Title:         goal.Title,
		Category:      string(goal.Category),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		CreatedOn:     goal.CreatedOn,
		DueOn:         goal.DueOn,
		Status:        string(goal.Status),
		Version:       goal.Version,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
