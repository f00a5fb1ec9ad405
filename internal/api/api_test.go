package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/healthtrack/backend/internal/api"
	"github.com/healthtrack/backend/internal/models"
	"github.com/healthtrack/backend/internal/planner"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/testhelpers"
	"github.com/healthtrack/backend/internal/types"
)

const invalidInputBody = `{"error":"Please enter valid information."}`

type testEnv struct {
	router *gin.Engine
	goals  *testhelpers.MockGoalService
	tokens *testhelpers.MockTokenService
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	goals := new(testhelpers.MockGoalService)
	tokens := new(testhelpers.MockTokenService)
	tokens.On("ValidateToken", "valid-token").Return(&types.TokenClaims{UserID: "user_1"}, nil)
	tokens.On("ValidateToken", mock.Anything).Return(nil, service.ErrInvalidToken)

	router := gin.New()
	api.RegisterRoutes(router, api.Dependencies{
		Tokens: tokens,
		Goals:  goals,
		Logger: zaptest.NewLogger(t),
	})

	t.Cleanup(func() {
		goals.AssertExpectations(t)
	})
	return &testEnv{router: router, goals: goals, tokens: tokens}
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, w)["status"])
}

func TestHealthCheckWithDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.RegisterRoutes(router, api.Dependencies{
		DB:     testhelpers.NewSQLiteDB(t),
		Tokens: new(testhelpers.MockTokenService),
		Goals:  new(testhelpers.MockGoalService),
		Logger: zaptest.NewLogger(t),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","checks":{"database":"ok"}}`, w.Body.String())
}

func TestBMI(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/planner/bmi", `{"weight":"165","height":"70"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[planner.BMIResult](t, w)
	assert.InDelta(t, 23.67, res.BMI, 0.01)
	assert.Equal(t, planner.NormalWeight, res.Category)
}

func TestBMIAcceptsJSONNumbers(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/planner/bmi", `{"weight":165,"height":70}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBMIInvalidInput(t *testing.T) {
	env := setupRouter(t)

	for _, body := range []string{
		`{"weight":"abc","height":"70"}`,
		`{"weight":"165","height":"0"}`,
		`{"weight":"-5","height":"70"}`,
		`{"weight":"","height":"70"}`,
		`{}`,
	} {
		w := env.do(http.MethodPost, "/api/v1/planner/bmi", body, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
		assert.JSONEq(t, invalidInputBody, w.Body.String(), body)
	}
}

func TestMalformedBody(t *testing.T) {
	env := setupRouter(t)

	for _, path := range []string{
		"/api/v1/planner/bmi",
		"/api/v1/planner/body-metrics",
		"/api/v1/planner/energy-plan",
		"/api/v1/planner/macros/derive",
		"/api/v1/planner/macros/validate",
		"/api/v1/nutrition/summary",
	} {
		w := env.do(http.MethodPost, path, `{"weight":`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String(), path)
	}
}

func TestBodyMetrics(t *testing.T) {
	env := setupRouter(t)

	body := `{"weight":"165","height":"70","age":"30","sex":"male","activity_level":"moderate"}`
	w := env.do(http.MethodPost, "/api/v1/planner/body-metrics", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[map[string]any](t, w)
	assert.InDelta(t, 1714.6768, res["bmr"], 1e-6)
	assert.InDelta(t, 2657.74904, res["tdee"], 1e-6)
	assert.Equal(t, planner.NormalWeight, res["category"])
}

func TestEnergyPlan(t *testing.T) {
	env := setupRouter(t)

	tests := []struct {
		goal  string
		want  planner.Macros
		total int
	}{
		{"cut", planner.Macros{Protein: 198, Carbs: 218, Fat: 66}, 2258},
		{"maintain", planner.Macros{Protein: 165, Carbs: 351, Fat: 66}, 2658},
		{"bulk", planner.Macros{Protein: 165, Carbs: 413, Fat: 83}, 3059},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			body := `{"weight":"165","height":"70","age":"30","sex":"male","activity_level":"moderate","goal":"` + tt.goal + `"}`
			w := env.do(http.MethodPost, "/api/v1/planner/energy-plan", body, "")
			require.Equal(t, http.StatusOK, w.Code)

			plan := decode[planner.EnergyPlan](t, w)
			assert.Equal(t, tt.want, plan.Macros)
			assert.Equal(t, tt.total, plan.TotalCalories)
		})
	}
}

func TestEnergyPlanInvalidInput(t *testing.T) {
	env := setupRouter(t)

	for _, body := range []string{
		`{"weight":"165","height":"70","age":"30","sex":"male","activity_level":"couch","goal":"cut"}`,
		`{"weight":"165","height":"70","age":"30","sex":"male","activity_level":"moderate","goal":"shred"}`,
		`{"weight":"165","height":"70","age":"0","sex":"male","activity_level":"moderate","goal":"cut"}`,
		`{"weight":"165","height":"70","age":"30","sex":"","activity_level":"moderate","goal":"cut"}`,
	} {
		w := env.do(http.MethodPost, "/api/v1/planner/energy-plan", body, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
		assert.JSONEq(t, invalidInputBody, w.Body.String(), body)
	}
}

func TestDeriveMacros(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/planner/macros/derive", `{"protein":"150","carbs":"200","fat":""}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"calories":1400,"macros":{"protein":150,"carbs":200,"fat":0}}`, w.Body.String())
}

func TestValidateManualPlan(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/planner/macros/validate",
		`{"calories":"2000","protein":"150","carbs":"200","fat":"60"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	check := decode[planner.ManualPlanCheck](t, w)
	assert.Equal(t, 1940, check.DerivedCalories)
	assert.Equal(t, 2000, check.EnteredCalories)
	require.NotNil(t, check.Difference)
	assert.Equal(t, 60, *check.Difference)
	assert.Contains(t, check.Warning, "1940 kcal")

	w = env.do(http.MethodPost, "/api/v1/planner/macros/validate",
		`{"calories":"1940","protein":"150","carbs":"200","fat":"60"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	check = decode[planner.ManualPlanCheck](t, w)
	assert.Nil(t, check.Difference)
	assert.Empty(t, check.Warning)
}

func TestNutritionSummaryAnonymous(t *testing.T) {
	env := setupRouter(t)

	body := `{"items":[{"name":"oats","calories":150,"protein":5,"carbs":27,"fat":3,"quantity":2},{"calories":700,"protein":40,"carbs":60,"fat":30,"quantity":1}]}`
	w := env.do(http.MethodPost, "/api/v1/nutrition/summary", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	progress := decode[planner.Progress](t, w)
	assert.Equal(t, planner.DefaultDailyTargets, progress.Targets)
	assert.InDelta(t, 1000, progress.Consumed.Calories, 1e-9)
	assert.InDelta(t, 50, progress.Consumed.Protein, 1e-9)
	assert.InDelta(t, 1000, progress.RemainingCalories, 1e-9)
	assert.InDelta(t, 50, progress.CaloriePercent, 1e-9)
}

func TestNutritionSummaryUsesSavedGoal(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("DailyTargets", mock.Anything, "user_1").
		Return(planner.DailyTargets{Calories: 1940, Protein: 150, Carbs: 200, Fat: 60}, nil)

	w := env.do(http.MethodPost, "/api/v1/nutrition/summary", `{"items":[{"calories":2500,"quantity":1}]}`, "valid-token")
	require.Equal(t, http.StatusOK, w.Code)

	progress := decode[planner.Progress](t, w)
	assert.Equal(t, 1940, progress.Targets.Calories)
	assert.InDelta(t, -560, progress.RemainingCalories, 1e-9)
	assert.InDelta(t, 100, progress.CaloriePercent, 1e-9)
}

func TestNutritionSummaryExplicitTargets(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/nutrition/summary",
		`{"items":[],"targets":{"calories":0,"protein":0,"carbs":0,"fat":0}}`, "valid-token")
	require.Equal(t, http.StatusOK, w.Code)

	progress := decode[planner.Progress](t, w)
	assert.Zero(t, progress.CaloriePercent)
	env.goals.AssertNotCalled(t, "DailyTargets", mock.Anything, mock.Anything)
}

func TestGoalsRequireAuth(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/v1/goals", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/api/v1/goals", "", "expired-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetGoal(t *testing.T) {
	env := setupRouter(t)
	saved := &models.NutritionGoal{UserID: "user_1", Source: models.GoalSourceManual, Calories: 1940, Protein: 150, Carbs: 200, Fat: 60}
	env.goals.On("GetCurrentGoal", mock.Anything, "user_1").Return(saved, nil).Once()

	w := env.do(http.MethodGet, "/api/v1/goals", "", "valid-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1940, decode[models.NutritionGoal](t, w).Calories)
}

func TestGetGoalNotFound(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("GetCurrentGoal", mock.Anything, "user_1").Return(nil, service.ErrGoalNotFound)

	w := env.do(http.MethodGet, "/api/v1/goals", "", "valid-token")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGoalStoreFailure(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("GetCurrentGoal", mock.Anything, "user_1").Return(nil, errors.New("connection reset"))

	w := env.do(http.MethodGet, "/api/v1/goals", "", "valid-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestSaveManualGoal(t *testing.T) {
	env := setupRouter(t)
	plan := planner.NewManualPlan(150, 200, 60)
	env.goals.On("SaveManualGoal", mock.Anything, "user_1", plan).
		Return(&models.NutritionGoal{UserID: "user_1", Source: models.GoalSourceManual, Calories: 1940}, nil)

	w := env.do(http.MethodPut, "/api/v1/goals",
		`{"source":"manual","protein":"150","carbs":"200","fat":"60"}`, "valid-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1940, decode[models.NutritionGoal](t, w).Calories)
}

func TestSavePlannedGoal(t *testing.T) {
	env := setupRouter(t)
	b := planner.Biometrics{WeightLb: 165, HeightIn: 70, Age: 30, Sex: planner.Male}
	env.goals.On("SavePlannedGoal", mock.Anything, "user_1", b, planner.Moderate, planner.Bulk).
		Return(&models.NutritionGoal{UserID: "user_1", Source: models.GoalSourcePlanner, Calories: 3059}, nil)

	w := env.do(http.MethodPut, "/api/v1/goals",
		`{"source":"planner","weight":"165","height":"70","age":"30","sex":"male","activity_level":"moderate","goal":"bulk"}`, "valid-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3059, decode[models.NutritionGoal](t, w).Calories)
}

func TestSavePlannedGoalInvalidInput(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPut, "/api/v1/goals",
		`{"source":"planner","weight":"heavy","height":"70","age":"30","sex":"male","activity_level":"moderate","goal":"bulk"}`, "valid-token")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, invalidInputBody, w.Body.String())
	env.goals.AssertNotCalled(t, "SavePlannedGoal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveGoalRejectsUnknownSource(t *testing.T) {
	env := setupRouter(t)

	for _, body := range []string{`{"source":"guess"}`, `{}`} {
		w := env.do(http.MethodPut, "/api/v1/goals", body, "valid-token")
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestListGoalHistory(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("ListGoalHistory", mock.Anything, "user_1", 5).
		Return([]*models.NutritionGoal{{Calories: 2000}, {Calories: 1800}}, nil)

	w := env.do(http.MethodGet, "/api/v1/goals/history?limit=5", "", "valid-token")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[struct {
		Goals []models.NutritionGoal `json:"goals"`
	}](t, w)
	require.Len(t, res.Goals, 2)
	assert.Equal(t, 2000, res.Goals[0].Calories)

	w = env.do(http.MethodGet, "/api/v1/goals/history?limit=lots", "", "valid-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnergyPlanRejectsOutOfRangeWeight(t *testing.T) {
	env := setupRouter(t)

	body := `{"weight":"1e300","height":"70","age":"30","sex":"male","activity_level":"moderate","goal":"cut"}`
	w := env.do(http.MethodPost, "/api/v1/planner/energy-plan", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, invalidInputBody, w.Body.String())
}

func TestValidateManualPlanReadsLeadingDigits(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/planner/macros/validate",
		`{"calories":"0","protein":"1e30","carbs":"12abc","fat":""}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	check := decode[planner.ManualPlanCheck](t, w)
	assert.Equal(t, planner.Macros{Protein: 1, Carbs: 12}, check.Macros)
	assert.Equal(t, 52, check.DerivedCalories)
	require.NotNil(t, check.Difference)
	assert.Equal(t, 52, *check.Difference)
}

func TestNutritionSummaryIgnoresNegativeQuantity(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/nutrition/summary",
		`{"items":[{"calories":500,"protein":30,"quantity":-3}]}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	progress := decode[planner.Progress](t, w)
	assert.Equal(t, planner.NutritionTotals{}, progress.Consumed)
	assert.InDelta(t, 2000, progress.RemainingCalories, 1e-9)
	assert.Zero(t, progress.CaloriePercent)
}

func TestNutritionSummaryRejectsNegativeTargets(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/v1/nutrition/summary",
		`{"items":[],"targets":{"calories":-2000,"protein":0,"carbs":0,"fat":0}}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, invalidInputBody, w.Body.String())
}

func TestListGoalHistoryCapsLimit(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("ListGoalHistory", mock.Anything, "user_1", 100).
		Return([]*models.NutritionGoal{}, nil)

	w := env.do(http.MethodGet, "/api/v1/goals/history?limit=500", "", "valid-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGoalRoutesValidateTokenOnce(t *testing.T) {
	env := setupRouter(t)
	env.goals.On("GetCurrentGoal", mock.Anything, "user_1").Return(nil, service.ErrGoalNotFound)

	w := env.do(http.MethodGet, "/api/v1/goals", "", "valid-token")
	assert.Equal(t, http.StatusNotFound, w.Code)
	env.tokens.AssertNumberOfCalls(t, "ValidateToken", 1)
}
