package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/planner"
)

// GoalSource records how a nutrition goal was produced.
type GoalSource string

const (
	GoalSourceManual  GoalSource = "manual"
	GoalSourcePlanner GoalSource = "planner"
)

// NutritionGoal is a daily calorie and macro target chosen by a user.
// Every save adds a row; the newest row is the current goal.
type NutritionGoal struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         string         `gorm:"size:128;not null;index" json:"user_id"`
	Source         GoalSource     `gorm:"size:16;not null" json:"source"`
	Goal           string         `gorm:"size:16" json:"goal,omitempty"`
	ActivityLevel  string         `gorm:"size:16" json:"activity_level,omitempty"`
	TargetCalories float64        `json:"target_calories,omitempty"`
	Calories       int            `gorm:"not null" json:"calories"`
	Protein        int            `gorm:"not null" json:"protein"`
	Carbs          int            `gorm:"not null" json:"carbs"`
	Fat            int            `gorm:"not null" json:"fat"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the NutritionGoal model
func (NutritionGoal) TableName() string {
	return "nutrition_goals"
}

// BeforeCreate assigns an ID when none was set.
func (g *NutritionGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Targets converts the goal into the targets used for daily progress.
func (g *NutritionGoal) Targets() planner.DailyTargets {
	return planner.DailyTargets{
		Calories: g.Calories,
		Protein:  g.Protein,
		Carbs:    g.Carbs,
		Fat:      g.Fat,
	}
}
