package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

// fakeGoalRepository is an in-memory GoalRepository for use case tests.
type fakeGoalRepository struct {
	goals       map[uuid.UUID]*entity.Goal
	updateErr   error
	updateCalls int
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
	r.updateCalls++
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

// stored returns the persisted state of a goal, bypassing FindByID's copy.
func (r *fakeGoalRepository) stored(id uuid.UUID) *entity.Goal {
	return r.goals[id]
}

// fakeMovementRepository is an in-memory MovementRepository.
type fakeMovementRepository struct {
	movements []*entity.Movement
	createErr error
}

func newFakeMovementRepository() *fakeMovementRepository {
	return &fakeMovementRepository{}
}

func (r *fakeMovementRepository) Create(_ context.Context, movement *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *movement
	r.movements = append(r.movements, &copied)
	return nil
}

func (r *fakeMovementRepository) FindByGoalID(_ context.Context, goalID uuid.UUID) ([]*entity.Movement, error) {
	var result []*entity.Movement
	for _, m := range r.movements {
		if m.GoalID == goalID {
			copied := *m
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].OccurredOn.Equal(result[j].OccurredOn) {
			return result[i].OccurredOn.After(result[j].OccurredOn)
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	return result, nil
}

func (r *fakeMovementRepository) countForGoal(goalID uuid.UUID) int {
	count := 0
	for _, m := range r.movements {
		if m.GoalID == goalID {
			count++
		}
	}
	return count
}

// fakeTxManager runs the function directly. A non-nil err is returned
// without invoking the function, simulating a transaction that cannot
// start.
type fakeTxManager struct {
	err error
}

func (tx *fakeTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}
