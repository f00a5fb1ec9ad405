package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/types"
)

// maxHistoryLimit caps ?limit= on GET /goals/history.
const maxHistoryLimit = 100

type GoalHandler struct {
	goals  service.IGoalService
	tokens service.ITokenService
	logger *zap.Logger
}

func NewGoalHandler(goals service.IGoalService, tokens service.ITokenService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goals:  goals,
		tokens: tokens,
		logger: logger,
	}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	goals.Use(middleware.AuthMiddleware(h.tokens))
	{
		goals.GET("", h.GetGoal)
		goals.PUT("", h.SaveGoal)
		goals.GET("/history", h.ListHistory)
	}
}

// GetGoal handles GET /goals
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goals.GetCurrentGoal(c.Request.Context(), middleware.UserID(c))
	if errors.Is(err, service.ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no nutrition goal saved"})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SaveGoal handles PUT /goals
func (h *GoalHandler) SaveGoal(c *gin.Context) {
	var req types.SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	var (
		goal *models.NutritionGoal
		err  error
	)
	switch models.GoalSource(req.Source) {
	case models.GoalSourceManual:
		p, carbs, f := req.Grams()
		goal, err = h.goals.SaveManualGoal(ctx, userID, planner.NewManualPlan(p, carbs, f))
	case models.GoalSourcePlanner:
		b, level, g, perr := req.EnergyPlanRequest.Parse()
		if perr != nil {
			respondError(c, h.logger, perr)
			return
		}
		goal, err = h.goals.SavePlannedGoal(ctx, userID, b, level, g)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// ListHistory handles GET /goals/history?limit=N
func (h *GoalHandler) ListHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	goals, err := h.goals.ListGoalHistory(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
