package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

func TestProgressHandler_Get(t *testing.T) {
	router := newTestRouter(t)
	token := registerTestUser(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/progress", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var snapshot domain.ProgressSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 0, snapshot.TodayStats.Workouts)
	assert.Equal(t, float64(2000), snapshot.Nutrition.Calories.Goal)
	assert.Len(t, snapshot.Achievements, 3)
}

func TestProgressHandler_LogMeal(t *testing.T) {
	router := newTestRouter(t)
	token := registerTestUser(t, router)

	t.Run("Success: Meal lands in today's totals", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/meals", token, map[string]any{
			"name":     "Grilled Chicken Salad",
			"items":    []string{"chicken", "greens"},
			"calories": 450,
			"protein":  35,
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var meal domain.Meal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))
		assert.NotEmpty(t, meal.ID)
		assert.NotEmpty(t, meal.Time)

		w = doJSON(t, router, http.MethodGet, "/api/v1/progress", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var snapshot domain.ProgressSnapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
		assert.Equal(t, float64(450), snapshot.Nutrition.Calories.Current)
		assert.Len(t, snapshot.Nutrition.Meals, 1)
	})

	t.Run("Error: Missing name returns 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/meals", token, map[string]any{
			"calories": 450,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProgressHandler_SetWater(t *testing.T) {
	router := newTestRouter(t)
	token := registerTestUser(t, router)

	t.Run("Success: Absolute set inside range", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/nutrition/water", token, map[string]int{
			"glasses": 6,
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var snapshot domain.ProgressSnapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
		assert.Equal(t, 6, snapshot.Nutrition.WaterIntake)
	})

	t.Run("Error: Out of range returns 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/nutrition/water", token, map[string]int{
			"glasses": 9,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, router, http.MethodPut, "/api/v1/nutrition/water", token, map[string]int{
			"glasses": -1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProgressHandler_Charts(t *testing.T) {
	router := newTestRouter(t)
	token := registerTestUser(t, router)

	session := startQuickSession(t, router, token)
	for i := 0; i < len(session.Exercises); i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+session.ID+"/skip", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/progress/charts", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Workout Progress")
}
