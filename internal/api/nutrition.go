package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/types"
)

// NutritionHandler sums logged meals against the day's targets.
// Signed-in callers are recognised through the optional auth middleware
// installed on the API group.
type NutritionHandler struct {
	goals  service.IGoalService
	logger *zap.Logger
}

func NewNutritionHandler(goals service.IGoalService, logger *zap.Logger) *NutritionHandler {
	return &NutritionHandler{
		goals:  goals,
		logger: logger,
	}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/nutrition/summary", h.Summary)
}

// Summary handles POST /nutrition/summary. Targets come from the body, then
// the caller's saved goal, then the defaults.
func (h *NutritionHandler) Summary(c *gin.Context) {
	var req types.NutritionSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, h.logger, err)
		return
	}

	targets := planner.DefaultDailyTargets
	switch userID := middleware.UserID(c); {
	case req.Targets != nil:
		targets = *req.Targets
	case userID != "":
		saved, err := h.goals.DailyTargets(c.Request.Context(), userID)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		targets = saved
	}

	c.JSON(http.StatusOK, planner.DailyProgress(planner.SumNutrition(req.Items), targets))
}
