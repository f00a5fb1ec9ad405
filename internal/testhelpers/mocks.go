package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/types"
)

// MockTokenService is a mock implementation of service.ITokenService
type MockTokenService struct {
	mock.Mock
}

var _ service.ITokenService = (*MockTokenService)(nil)

func (m *MockTokenService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockGoalService is a mock implementation of service.IGoalService
type MockGoalService struct {
	mock.Mock
}

var _ service.IGoalService = (*MockGoalService)(nil)

func (m *MockGoalService) SaveManualGoal(ctx context.Context, userID string, plan planner.ManualPlan) (*models.NutritionGoal, error) {
	args := m.Called(ctx, userID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionGoal), args.Error(1)
}

func (m *MockGoalService) SavePlannedGoal(ctx context.Context, userID string, b planner.Biometrics, level planner.ActivityLevel, goal planner.Goal) (*models.NutritionGoal, error) {
	args := m.Called(ctx, userID, b, level, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionGoal), args.Error(1)
}

func (m *MockGoalService) GetCurrentGoal(ctx context.Context, userID string) (*models.NutritionGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionGoal), args.Error(1)
}

func (m *MockGoalService) ListGoalHistory(ctx context.Context, userID string, limit int) ([]*models.NutritionGoal, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NutritionGoal), args.Error(1)
}

func (m *MockGoalService) DailyTargets(ctx context.Context, userID string) (planner.DailyTargets, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(planner.DailyTargets), args.Error(1)
}
