package ledger

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savings-goals/backend/internal/domain/entity"
	domainerror "github.com/savings-goals/backend/internal/domain/error"
)

var testClock = func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestGoal(ownerID uuid.UUID, balance, target int64) *entity.Goal {
	goal := entity.NewGoal(ownerID, "Trip to Patagonia", "travel", decimal.NewFromInt(target),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), testClock())
	goal.CurrentAmount = decimal.NewFromInt(balance)
	return goal
}

func newApplyFixture(goal *entity.Goal) (*ApplyMovementUseCase, *fakeGoalRepository, *fakeMovementRepository) {
	goalRepo := newFakeGoalRepository(goal)
	movementRepo := newFakeMovementRepository()
	uc := NewApplyMovementUseCase(goalRepo, movementRepo, &fakeTxManager{})
	uc.now = testClock
	return uc, goalRepo, movementRepo
}

func TestApplyMovement_Add(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 100, 1000)
	uc, goalRepo, movementRepo := newApplyFixture(goal)

	occurredOn := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "added",
		Amount:     decimal.NewFromInt(250),
		OccurredOn: occurredOn,
	})

	require.NoError(t, err)
	assert.True(t, output.Goal.CurrentAmount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, entity.GoalStatusInProgress, output.Goal.Status)
	assert.False(t, output.CompletedNow)

	require.NotNil(t, output.Movement)
	assert.Equal(t, entity.MovementAdded, output.Movement.Action)
	assert.True(t, output.Movement.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, occurredOn, output.Movement.OccurredOn)

	assert.True(t, goalRepo.stored(goal.ID).CurrentAmount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 1, movementRepo.countForGoal(goal.ID))
}

func TestApplyMovement_Withdraw(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 500, 1000)
	uc, goalRepo, movementRepo := newApplyFixture(goal)

	output, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "withdrawn",
		Amount:     decimal.NewFromInt(200),
		OccurredOn: testClock(),
	})

	require.NoError(t, err)
	assert.True(t, output.Goal.CurrentAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, entity.MovementWithdrawn, output.Movement.Action)
	assert.True(t, goalRepo.stored(goal.ID).CurrentAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 1, movementRepo.countForGoal(goal.ID))
}

func TestApplyMovement_WithdrawToExactlyZero(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 500, 1000)
	uc, goalRepo, _ := newApplyFixture(goal)

	output, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "withdrawn",
		Amount:     decimal.NewFromInt(500),
		OccurredOn: testClock(),
	})

	require.NoError(t, err)
	assert.True(t, output.Goal.CurrentAmount.IsZero())
	assert.True(t, goalRepo.stored(goal.ID).CurrentAmount.IsZero())
}

func TestApplyMovement_AmountSignIsIgnored(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 500, 1000)
	uc, _, _ := newApplyFixture(goal)

	// A negative amount on a withdrawal still withdraws; direction
	// comes only from the action.
	output, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "withdrawn",
		Amount:     decimal.NewFromInt(-200),
		OccurredOn: testClock(),
	})

	require.NoError(t, err)
	assert.True(t, output.Goal.CurrentAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, output.Movement.Amount.Equal(decimal.NewFromInt(200)))
}

func TestApplyMovement_InsufficientBalance(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 100, 1000)
	uc, goalRepo, movementRepo := newApplyFixture(goal)

	input := ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "withdrawn",
		Amount:     decimal.NewFromInt(150),
		OccurredOn: testClock(),
	}

	_, err := uc.Execute(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrInsufficientBalance))

	var ledgerErr *domainerror.LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, domainerror.ErrCodeInsufficientBalance, ledgerErr.Code)

	var balanceErr *domainerror.InsufficientBalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.True(t, balanceErr.CurrentBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, balanceErr.Requested.Equal(decimal.NewFromInt(150)))
	assert.True(t, balanceErr.Floor.IsZero())

	t.Run("nothing is written", func(t *testing.T) {
		stored := goalRepo.stored(goal.ID)
		assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, entity.GoalStatusInProgress, stored.Status)
		assert.Equal(t, 0, movementRepo.countForGoal(goal.ID))
		assert.Equal(t, 0, goalRepo.updateCalls)
	})

	t.Run("retrying yields the same rejection", func(t *testing.T) {
		_, retryErr := uc.Execute(context.Background(), input)
		require.Error(t, retryErr)
		assert.True(t, errors.Is(retryErr, domainerror.ErrInsufficientBalance))
		assert.True(t, goalRepo.stored(goal.ID).CurrentAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 0, movementRepo.countForGoal(goal.ID))
	})
}

func TestApplyMovement_InvalidAction(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 100, 1000)
	uc, goalRepo, movementRepo := newApplyFixture(goal)

	for _, action := range []string{"", "deposited", "Added", "removed"} {
		_, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     action,
			Amount:     decimal.NewFromInt(10),
			OccurredOn: testClock(),
		})

		require.Error(t, err, "action %q", action)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidMovementAction))

		var ledgerErr *domainerror.LedgerError
		require.True(t, errors.As(err, &ledgerErr))
		assert.Equal(t, domainerror.ErrCodeInvalidAction, ledgerErr.Code)
	}

	assert.Equal(t, 0, movementRepo.countForGoal(goal.ID))
	assert.Equal(t, 0, goalRepo.updateCalls)
}

func TestApplyMovement_InvalidAmount(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 100, 1000)
	uc, _, movementRepo := newApplyFixture(goal)

	_, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "added",
		Amount:     decimal.Zero,
		OccurredOn: testClock(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrInvalidMovementAmount))

	var ledgerErr *domainerror.LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, domainerror.ErrCodeInvalidAmount, ledgerErr.Code)
	assert.Equal(t, 0, movementRepo.countForGoal(goal.ID))
}

func TestApplyMovement_GoalNotFound(t *testing.T) {
	uc, _, _ := newApplyFixture(newTestGoal(uuid.New(), 0, 100))

	_, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     uuid.New(),
		OwnerID:    uuid.New(),
		Action:     "added",
		Amount:     decimal.NewFromInt(10),
		OccurredOn: testClock(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrGoalNotFound))

	var ledgerErr *domainerror.LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, domainerror.ErrCodeLedgerGoalNotFound, ledgerErr.Code)
}

func TestApplyMovement_OtherOwner(t *testing.T) {
	goal := newTestGoal(uuid.New(), 100, 1000)
	uc, goalRepo, _ := newApplyFixture(goal)

	_, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    uuid.New(),
		Action:     "added",
		Amount:     decimal.NewFromInt(10),
		OccurredOn: testClock(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrUnauthorizedGoalAccess))

	var ledgerErr *domainerror.LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, domainerror.ErrCodeLedgerUnauthorized, ledgerErr.Code)
	assert.Equal(t, 0, goalRepo.updateCalls)
}

func TestApplyMovement_Completion(t *testing.T) {
	ownerID := uuid.New()

	t.Run("reaching the target completes the goal once", func(t *testing.T) {
		goal := newTestGoal(ownerID, 900, 1000)
		uc, goalRepo, _ := newApplyFixture(goal)

		output, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "added",
			Amount:     decimal.NewFromInt(100),
			OccurredOn: testClock(),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, output.Goal.Status)
		assert.True(t, output.CompletedNow)
		assert.Equal(t, entity.GoalStatusCompleted, goalRepo.stored(goal.ID).Status)
	})

	t.Run("overshooting the target also completes", func(t *testing.T) {
		goal := newTestGoal(ownerID, 900, 1000)
		uc, _, _ := newApplyFixture(goal)

		output, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "added",
			Amount:     decimal.NewFromInt(500),
			OccurredOn: testClock(),
		})

		require.NoError(t, err)
		assert.True(t, output.CompletedNow)
		assert.True(t, output.Goal.CurrentAmount.Equal(decimal.NewFromInt(1400)))
	})

	t.Run("withdrawing below target does not revert completion", func(t *testing.T) {
		goal := newTestGoal(ownerID, 1000, 1000)
		goal.Status = entity.GoalStatusCompleted
		uc, goalRepo, _ := newApplyFixture(goal)

		output, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "withdrawn",
			Amount:     decimal.NewFromInt(400),
			OccurredOn: testClock(),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, output.Goal.Status)
		assert.False(t, output.CompletedNow)
		assert.Equal(t, entity.GoalStatusCompleted, goalRepo.stored(goal.ID).Status)
	})

	t.Run("re-crossing the target on a completed goal is not a new completion", func(t *testing.T) {
		goal := newTestGoal(ownerID, 600, 1000)
		goal.Status = entity.GoalStatusCompleted
		uc, _, _ := newApplyFixture(goal)

		output, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "added",
			Amount:     decimal.NewFromInt(400),
			OccurredOn: testClock(),
		})

		require.NoError(t, err)
		assert.False(t, output.CompletedNow)
	})

	t.Run("a canceled goal reaching the target stays canceled", func(t *testing.T) {
		goal := newTestGoal(ownerID, 900, 1000)
		goal.Status = entity.GoalStatusCanceled
		uc, _, _ := newApplyFixture(goal)

		output, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "added",
			Amount:     decimal.NewFromInt(100),
			OccurredOn: testClock(),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCanceled, output.Goal.Status)
		assert.False(t, output.CompletedNow)
	})
}

func TestApplyMovement_ConcurrentUpdate(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 100, 1000)
	goalRepo := newFakeGoalRepository(goal)
	goalRepo.updateErr = domainerror.ErrConcurrentUpdate
	movementRepo := newFakeMovementRepository()
	uc := NewApplyMovementUseCase(goalRepo, movementRepo, &fakeTxManager{})
	uc.now = testClock

	_, err := uc.Execute(context.Background(), ApplyMovementInput{
		GoalID:     goal.ID,
		OwnerID:    ownerID,
		Action:     "added",
		Amount:     decimal.NewFromInt(10),
		OccurredOn: testClock(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrConcurrentUpdate))

	var ledgerErr *domainerror.LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, domainerror.ErrCodeConcurrentUpdate, ledgerErr.Code)

	// The movement append shares the aborted transaction.
	assert.Equal(t, 0, movementRepo.countForGoal(goal.ID))
}

func TestApplyMovement_LedgerIsAppendOnly(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 0, 10000)
	uc, _, movementRepo := newApplyFixture(goal)

	for i := 0; i < 5; i++ {
		_, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     "added",
			Amount:     decimal.NewFromInt(10),
			OccurredOn: testClock(),
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 5, movementRepo.countForGoal(goal.ID))
}

func TestApplyMovement_BalanceNeverGoesNegative(t *testing.T) {
	ownerID := uuid.New()
	goal := newTestGoal(ownerID, 0, 100000)
	uc, goalRepo, movementRepo := newApplyFixture(goal)

	rng := rand.New(rand.NewSource(42))
	accepted := 0

	for i := 0; i < 200; i++ {
		action := "added"
		if rng.Intn(2) == 0 {
			action = "withdrawn"
		}
		amount := decimal.NewFromInt(rng.Int63n(500) + 1)

		_, err := uc.Execute(context.Background(), ApplyMovementInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			Action:     action,
			Amount:     amount,
			OccurredOn: testClock(),
		})
		if err != nil {
			require.True(t, errors.Is(err, domainerror.ErrInsufficientBalance))
		} else {
			accepted++
		}

		stored := goalRepo.stored(goal.ID)
		require.False(t, stored.CurrentAmount.IsNegative(),
			"balance went negative after %d operations", i+1)
	}

	// Only accepted movements reach the ledger.
	assert.Equal(t, accepted, movementRepo.countForGoal(goal.ID))

	// The balance equals the replayed ledger.
	replayed := decimal.Zero
	movements, err := movementRepo.FindByGoalID(context.Background(), goal.ID)
	require.NoError(t, err)
	for _, m := range movements {
		if m.Action == entity.MovementAdded {
			replayed = replayed.Add(m.Amount)
		} else {
			replayed = replayed.Sub(m.Amount)
		}
	}
	assert.True(t, goalRepo.stored(goal.ID).CurrentAmount.Equal(replayed))
}
