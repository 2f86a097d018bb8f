package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savings-goals/backend/internal/domain/entity"
	"github.com/savings-goals/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// SQLite only enforces cascades with the pragma on.
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(&model.GoalModel{}, &model.MovementModel{}))

	return db
}

func seedGoal(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *entity.Goal {
	t.Helper()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	goal := entity.NewGoal(ownerID, "Emergency fund", "emergency_fund",
		decimal.NewFromInt(10000), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), now)

	require.NoError(t, db.Create(model.GoalFromEntity(goal)).Error)
	return goal
}
