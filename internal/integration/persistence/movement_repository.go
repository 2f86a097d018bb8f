package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	"github.com/savings-goals/backend/internal/integration/persistence/model"
)

// movementRepository implements the adapter.MovementRepository interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository instance.
func NewMovementRepository(db *gorm.DB) adapter.MovementRepository {
	return &movementRepository{
		db: db,
	}
}

// Create appends a new movement row.
func (r *movementRepository) Create(ctx context.Context, movement *entity.Movement) error {
	movementModel := model.MovementFromEntity(movement)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(movementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByGoalID retrieves all movements for a goal, most recent first.
// Ties on the effective date are broken by id so the order is stable.
func (r *movementRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Movement, error) {
	var movementModels []model.MovementModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("occurred_on DESC, id DESC").
		Find(&movementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.Movement, len(movementModels))
	for i, mm := range movementModels {
		movements[i] = mm.ToEntity()
	}
	return movements, nil
}
