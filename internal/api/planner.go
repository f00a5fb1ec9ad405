package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/types"
)

// PlannerHandler serves the stateless calculators. Every request is
// recomputed from its body; nothing is stored.
type PlannerHandler struct {
	logger *zap.Logger
}

func NewPlannerHandler(logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{logger: logger}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	p := router.Group("/planner")
	{
		p.POST("/bmi", h.BMI)
		p.POST("/body-metrics", h.BodyMetrics)
		p.POST("/energy-plan", h.EnergyPlan)
		p.POST("/macros/derive", h.DeriveMacros)
		p.POST("/macros/validate", h.ValidateManual)
	}
}

// BMI handles POST /planner/bmi
func (h *PlannerHandler) BMI(c *gin.Context) {
	var req types.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	weight, err := planner.ParseMeasurement(req.Weight.String())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	height, err := planner.ParseMeasurement(req.Height.String())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := planner.ComputeBMI(weight, height)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BodyMetrics handles POST /planner/body-metrics
func (h *PlannerHandler) BodyMetrics(c *gin.Context) {
	var req types.BodyMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, level, err := req.Parse()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	metrics, err := planner.ComputeBodyMetrics(b, level)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// EnergyPlan handles POST /planner/energy-plan
func (h *PlannerHandler) EnergyPlan(c *gin.Context) {
	var req types.EnergyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, level, goal, err := req.Parse()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	plan, err := planner.ComputeEnergyPlan(b, level, goal)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeriveMacros handles POST /planner/macros/derive. Blank or non-numeric
// grams count as zero.
func (h *PlannerHandler) DeriveMacros(c *gin.Context) {
	var req types.MacroGramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, carbs, f := req.Grams()
	c.JSON(http.StatusOK, types.CaloriesResponse{
		Calories: planner.DeriveCaloriesFromMacros(p, carbs, f),
		Macros:   planner.Macros{Protein: p, Carbs: carbs, Fat: f},
	})
}

// ValidateManual handles POST /planner/macros/validate. A mismatch between
// the stated calories and the grams is reported, never corrected.
func (h *PlannerHandler) ValidateManual(c *gin.Context) {
	var req types.ManualPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	c.JSON(http.StatusOK, req.Plan().Check())
}
