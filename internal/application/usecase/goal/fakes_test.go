package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// fakeGoalRepository is an in-memory GoalRepository for use case tests.
type fakeGoalRepository struct {
	goals     map[uuid.UUID]*entity.Goal
	createErr error
	updateErr error
}

func newFakeGoalRepository(goals ...*entity.Goal) *fakeGoalRepository {
	repo := &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		copied := *g
		repo.goals[g.ID] = &copied
	}
	return repo
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepository) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.OwnerID == ownerID {
			copied := *goal
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepository) stored(id uuid.UUID) *entity.Goal {
	return r.goals[id]
}
