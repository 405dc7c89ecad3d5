package domain

import (
	"time"

	"github.com/google/uuid"
)

// Canonical "today" key; rollover compares against it.
const dayLayout = "2006-01-02"

// Fixed achievement ids for the progress ledger.
const (
	AchievementWeekStreak   = 1
	AchievementFirstWorkout = 2
	AchievementTenWorkouts  = 3
)

// Achievement membership is closed; only Unlocked flips, false to true.
type Achievement struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}

type TodayStats struct {
	Calories      int    `json:"calories"`
	Workouts      int    `json:"workouts"`
	Streak        int    `json:"streak"`
	ActiveMinutes int    `json:"active_minutes"`
	Date          string `json:"date"`
}

type MacroTracker struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
}

type Meal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Items    []string `json:"items,omitempty"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Time     string   `json:"time"`
}

type Nutrition struct {
	Calories    MacroTracker `json:"calories"`
	Protein     MacroTracker `json:"protein"`
	Carbs       MacroTracker `json:"carbs"`
	Fat         MacroTracker `json:"fat"`
	Meals       []Meal       `json:"meals"`
	WaterIntake int          `json:"water_intake"`
}

// ProgressSnapshot is the shared application-state record: today's
// stats, nutrition totals, workout history and achievements. It is
// persisted whole after every mutation.
type ProgressSnapshot struct {
	TodayStats     TodayStats               `json:"today_stats"`
	Nutrition      Nutrition                `json:"nutrition"`
	WorkoutHistory []CompletedWorkoutRecord `json:"workout_history"`
	Achievements   []Achievement            `json:"achievements"`
}

// NewProgressSnapshot returns first-run defaults for the given day.
func NewProgressSnapshot(now time.Time) *ProgressSnapshot {
	return &ProgressSnapshot{
		TodayStats: TodayStats{Date: now.UTC().Format(dayLayout)},
		Nutrition: Nutrition{
			Calories: MacroTracker{Goal: 2000},
			Protein:  MacroTracker{Goal: 120},
			Carbs:    MacroTracker{Goal: 250},
			Fat:      MacroTracker{Goal: 65},
			Meals:    []Meal{},
		},
		WorkoutHistory: []CompletedWorkoutRecord{},
		Achievements: []Achievement{
			{ID: AchievementWeekStreak, Name: "7 Day Streak", Icon: "🔥"},
			{ID: AchievementFirstWorkout, Name: "First Workout", Icon: "⭐"},
			{ID: AchievementTenWorkouts, Name: "10 Workouts", Icon: "🏆"},
		},
	}
}

// Rollover resets the day-scoped counters when the stored date is not
// today. Streak, workout history, goals and achievements survive.
// Applying it twice on the same day is a no-op the second time.
func (p *ProgressSnapshot) Rollover(now time.Time) {
	today := now.UTC().Format(dayLayout)
	if p.TodayStats.Date == today {
		return
	}
	p.TodayStats.Calories = 0
	p.TodayStats.Workouts = 0
	p.TodayStats.ActiveMinutes = 0
	p.TodayStats.Date = today

	p.Nutrition.Calories.Current = 0
	p.Nutrition.Protein.Current = 0
	p.Nutrition.Carbs.Current = 0
	p.Nutrition.Fat.Current = 0
	p.Nutrition.Meals = []Meal{}
	p.Nutrition.WaterIntake = 0
}

// LogWorkout appends a completed workout and updates today's counters.
// The streak advances only on the first workout of the day; achievement
// checks run every call and are idempotent.
func (p *ProgressSnapshot) LogWorkout(record CompletedWorkoutRecord) {
	firstToday := p.TodayStats.Workouts == 0

	p.TodayStats.Calories += record.CaloriesBurned
	p.TodayStats.Workouts++
	p.TodayStats.ActiveMinutes += record.DurationMin
	if firstToday {
		p.TodayStats.Streak++
	}

	p.WorkoutHistory = append(p.WorkoutHistory, record)

	p.unlock(AchievementFirstWorkout)
	if len(p.WorkoutHistory) >= 10 {
		p.unlock(AchievementTenWorkouts)
	}
	if p.TodayStats.Streak >= 7 {
		p.unlock(AchievementWeekStreak)
	}
}

// LogMeal adds the meal's macros to today's totals and appends it with
// a generated id and an h:mm AM/PM time label.
func (p *ProgressSnapshot) LogMeal(meal Meal, now time.Time) Meal {
	meal.ID = uuid.NewString()
	meal.Time = now.Format("3:04 PM")

	p.Nutrition.Calories.Current += meal.Calories
	p.Nutrition.Protein.Current += meal.Protein
	p.Nutrition.Carbs.Current += meal.Carbs
	p.Nutrition.Fat.Current += meal.Fat
	p.Nutrition.Meals = append(p.Nutrition.Meals, meal)

	return meal
}

// SetWaterIntake is an absolute set; range checks are the caller's job.
func (p *ProgressSnapshot) SetWaterIntake(glasses int) {
	p.Nutrition.WaterIntake = glasses
}

func (p *ProgressSnapshot) unlock(id int) {
	for i := range p.Achievements {
		if p.Achievements[i].ID == id {
			p.Achievements[i].Unlocked = true
			return
		}
	}
}
