package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/planner"
)

var ErrGoalNotFound = errors.New("nutrition goal not found")

const defaultHistoryLimit = 30

// GoalService stores the nutrition goals users pick from the manual form
// or the macro planner.
type GoalService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Ensure GoalService implements IGoalService
var _ IGoalService = (*GoalService)(nil)

// NewGoalService creates a new GoalService instance
func NewGoalService(db *gorm.DB, logger *zap.Logger) *GoalService {
	return &GoalService{
		db:     db,
		logger: logger,
	}
}

// SaveManualGoal stores grams typed in by the user. The stored calories
// are always derived from the grams; a differing stated figure is only
// ever a preview warning.
func (s *GoalService) SaveManualGoal(ctx context.Context, userID string, plan planner.ManualPlan) (*models.NutritionGoal, error) {
	goal := &models.NutritionGoal{
		UserID:   userID,
		Source:   models.GoalSourceManual,
		Calories: planner.DeriveCaloriesFromMacros(plan.Protein, plan.Carbs, plan.Fat),
		Protein:  plan.Protein,
		Carbs:    plan.Carbs,
		Fat:      plan.Fat,
	}
	return s.create(ctx, goal)
}

// SavePlannedGoal runs the energy planner and stores its result.
func (s *GoalService) SavePlannedGoal(ctx context.Context, userID string, b planner.Biometrics, level planner.ActivityLevel, g planner.Goal) (*models.NutritionGoal, error) {
	plan, err := planner.ComputeEnergyPlan(b, level, g)
	if err != nil {
		return nil, err
	}

	goal := &models.NutritionGoal{
		UserID:         userID,
		Source:         models.GoalSourcePlanner,
		Goal:           string(g),
		ActivityLevel:  string(level),
		TargetCalories: plan.TargetCalories,
		Calories:       plan.TotalCalories,
		Protein:        plan.Macros.Protein,
		Carbs:          plan.Macros.Carbs,
		Fat:            plan.Macros.Fat,
	}
	return s.create(ctx, goal)
}

func (s *GoalService) create(ctx context.Context, goal *models.NutritionGoal) (*models.NutritionGoal, error) {
	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, fmt.Errorf("failed to save nutrition goal: %w", err)
	}
	s.logger.Info("Saved nutrition goal",
		zap.String("user_id", goal.UserID),
		zap.String("source", string(goal.Source)),
		zap.Int("calories", goal.Calories))
	return goal, nil
}

// GetCurrentGoal returns the most recently saved goal.
func (s *GoalService) GetCurrentGoal(ctx context.Context, userID string) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition goal: %w", err)
	}
	return &goal, nil
}

// ListGoalHistory returns saved goals newest first. A non-positive limit
// uses the default of 30.
func (s *GoalService) ListGoalHistory(ctx context.Context, userID string, limit int) ([]*models.NutritionGoal, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var goals []*models.NutritionGoal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list nutrition goals: %w", err)
	}
	return goals, nil
}

// DailyTargets returns the user's current goal as daily targets, or the
// defaults when nothing has been saved.
func (s *GoalService) DailyTargets(ctx context.Context, userID string) (planner.DailyTargets, error) {
	goal, err := s.GetCurrentGoal(ctx, userID)
	if errors.Is(err, ErrGoalNotFound) {
		return planner.DefaultDailyTargets, nil
	}
	if err != nil {
		return planner.DailyTargets{}, err
	}
	return goal.Targets(), nil
}
