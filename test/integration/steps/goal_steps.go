package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-goals/backend/internal/domain/entity"
	"github.com/savings-goals/backend/internal/integration/persistence/model"
)

// iAmAuthenticatedAsAGoalOwner signs an access token for a fresh owner id.
// Tokens are normally issued by the external identity service; the suite
// forges them with the shared test secret.
func (t *testContext) iAmAuthenticatedAsAGoalOwner() error {
	t.currentOwnerID = uuid.New()
	return t.signInAs(t.currentOwnerID)
}

// anotherOwnerIsAuthenticated switches the token to a different owner
// while leaving the current goal untouched.
func (t *testContext) anotherOwnerIsAuthenticated() error {
	return t.signInAs(uuid.New())
}

func (t *testContext) signInAs(ownerID uuid.UUID) error {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"owner_id":   ownerID.String(),
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"sub":        ownerID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}
	t.accessToken = tokenString
	return nil
}

func (t *testContext) aGoalExistsWithTitleAndTarget(title, target string) error {
	return t.aGoalExistsWithTitleTargetAndBalance(title, target, "0")
}

func (t *testContext) aGoalExistsWithTitleTargetAndBalance(title, target, balance string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target '%s': %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance '%s': %w", balance, err)
	}

	if t.currentOwnerID == uuid.Nil {
		t.currentOwnerID = uuid.New()
	}

	now := time.Now().UTC()
	goal := entity.NewGoal(t.currentOwnerID, title, "other", targetAmount, now.AddDate(0, 6, 0), now)
	goal.CurrentAmount = currentAmount
	t.currentGoalID = goal.ID

	return t.db.DbConn.Create(model.GoalFromEntity(goal)).Error
}

func (t *testContext) theGoalStatusIs(status string) error {
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("status", status).Error
}

// theGoalBelongsToADifferentOwner reassigns the current goal to a fresh
// owner so the authenticated caller no longer owns it.
func (t *testContext) theGoalBelongsToADifferentOwner() error {
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("owner_id", uuid.New()).Error
}

func (t *testContext) theGoalHasAMovementOf(amount, action, occurredOn string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	date, err := time.Parse("2006-01-02", occurredOn)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", occurredOn, err)
	}

	movement := entity.NewMovement(t.currentGoalID, value, entity.MovementAction(action), date, time.Now().UTC())
	return t.db.DbConn.Create(model.MovementFromEntity(movement)).Error
}
