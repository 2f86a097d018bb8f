package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savings-goals/backend/internal/application/adapter"
	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
	"github.com/savings-goals/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create persists a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByOwnerID retrieves all goals for a given owner.
func (r *goalRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update persists an existing goal. The write carries the version the
// goal was loaded with; when another writer got there first the
// where-clause matches nothing and the update reports a lost-update
// race instead of silently overwriting.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	db := dbFromContext(ctx, r.db).WithContext(ctx)

	result := db.Model(&model.GoalModel{}).
		Where("id = ? AND version = ?", goal.ID, goal.Version).
		Updates(map[string]interface{}{
			"title":          goal.Title,
			"category":       string(goal.Category),
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"due_on":         goal.DueOn,
			"status":         string(goal.Status),
			"version":        goal.Version + 1,
			"updated_at":     goal.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.GoalModel{}).Where("id = ?", goal.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrGoalNotFound
		}
		return domainerror.ErrConcurrentUpdate
	}

	goal.Version++
	return nil
}

// Delete removes a goal from the database. Movements are removed by the
// cascade constraint on the goal_movements foreign key.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
