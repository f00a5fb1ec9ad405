package service

import (
	"context"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/types"
)

// ITokenService validates bearer tokens issued by the identity provider
type ITokenService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IGoalService defines the interface for nutrition goal operations
type IGoalService interface {
	SaveManualGoal(ctx context.Context, userID string, plan planner.ManualPlan) (*models.NutritionGoal, error)
	SavePlannedGoal(ctx context.Context, userID string, b planner.Biometrics, level planner.ActivityLevel, goal planner.Goal) (*models.NutritionGoal, error)
	GetCurrentGoal(ctx context.Context, userID string) (*models.NutritionGoal, error)
	ListGoalHistory(ctx context.Context, userID string, limit int) ([]*models.NutritionGoal, error)
	DailyTargets(ctx context.Context, userID string) (planner.DailyTargets, error)
}
