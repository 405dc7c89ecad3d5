package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// Charts renders the workout history as a server-side HTML line chart:
// calories and active minutes per day.
func (h *ProgressHandler) Charts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snapshot, err := h.progress.Get(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	line := buildHistoryChart(snapshot.WorkoutHistory)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func buildHistoryChart(history []domain.CompletedWorkoutRecord) *charts.Line {
	type dayTotals struct {
		calories int
		minutes  int
	}
	perDay := map[string]*dayTotals{}
	for _, rec := range history {
		day := rec.CompletedAt.Format("2006-01-02")
		if perDay[day] == nil {
			perDay[day] = &dayTotals{}
		}
		perDay[day].calories += rec.CaloriesBurned
		perDay[day].minutes += rec.DurationMin
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	calories := make([]opts.LineData, 0, len(days))
	minutes := make([]opts.LineData, 0, len(days))
	for _, day := range days {
		calories = append(calories, opts.LineData{Value: perDay[day].calories})
		minutes = append(minutes, opts.LineData{Value: perDay[day].minutes})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Workout Progress",
			Subtitle: "Calories burned and active minutes per day",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(days)
	line.AddSeries("Calories", calories)
	line.AddSeries("Active Minutes", minutes)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}
