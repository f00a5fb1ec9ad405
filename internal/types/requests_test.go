package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack/backend/internal/planner"
)

func TestFormValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FormValue
	}{
		{"string", `"165"`, "165"},
		{"number", `165.5`, "165.5"},
		{"null", `null`, ""},
		{"blank", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FormValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)
		})
	}

	var v FormValue
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
}

func TestEnergyPlanRequestParse(t *testing.T) {
	var req EnergyPlanRequest
	body := `{"weight":"165","height":70,"age":"30","sex":"Male","activity_level":"moderate","goal":"cut"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	b, level, goal, err := req.Parse()
	require.NoError(t, err)
	assert.Equal(t, planner.Biometrics{WeightLb: 165, HeightIn: 70, Age: 30, Sex: planner.Male}, b)
	assert.Equal(t, planner.Moderate, level)
	assert.Equal(t, planner.Cut, goal)

	req.ActivityLevel = "couch"
	_, _, _, err = req.Parse()
	assert.ErrorIs(t, err, planner.ErrInvalidInput)
}

func TestManualPlanRequest(t *testing.T) {
	var req ManualPlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"calories":"2000","protein":"150","carbs":"abc","fat":60}`), &req))

	plan := req.Plan()
	assert.Equal(t, 2000, plan.Calories)
	assert.Equal(t, 150, plan.Protein)
	assert.Equal(t, 0, plan.Carbs)
	assert.Equal(t, 60, plan.Fat)
}
