// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/savings-goals/backend/config"
	"github.com/savings-goals/backend/internal/application/usecase/goal"
	"github.com/savings-goals/backend/internal/application/usecase/ledger"
	"github.com/savings-goals/backend/internal/infra/server/router"
	"github.com/savings-goals/backend/internal/integration/adapters"
	"github.com/savings-goals/backend/internal/integration/entrypoint/controller"
	"github.com/savings-goals/backend/internal/integration/entrypoint/middleware"
	"github.com/savings-goals/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	movementRepo := persistence.NewMovementRepository(db)
	txManager := persistence.NewTxManager(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	notifier := adapters.NewLogNotifier()

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create ledger use cases
	applyMovementUseCase := ledger.NewApplyMovementUseCase(goalRepo, movementRepo, txManager)
	listMovementsUseCase := ledger.NewListMovementsUseCase(goalRepo, movementRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	movementController := controller.NewMovementController(
		applyMovementUseCase,
		listMovementsUseCase,
		notifier,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var balanceRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		balanceRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		balanceRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, goalController, movementController, balanceRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
