package domain

import "time"

// DayStatus marks a calendar day in the streak log.
type DayStatus string

const (
	DayCompleted DayStatus = "completed"
	DayFrozen    DayStatus = "freeze"
)

// Streak achievement ids.
const (
	StreakAchWeekWarrior   = "week_warrior"
	StreakAchMonthlyMaster = "monthly_master"
	StreakAchFiftyStrong   = "fifty_strong"
	StreakAchCenturyClub   = "century_club"
)

const (
	startingStreakFreezes  = 2
	defaultWeeklyGoal      = 5
	defaultRestDaysAllowed = 2
)

// StreakRecord is the streak engine's independently persisted model.
// Its current-streak counter advances once per LogWorkout call, by
// contrast with the progress ledger's first-of-day rule; the two are
// deliberately separate models.
type StreakRecord struct {
	CurrentStreak   int                  `json:"current_streak"`
	LongestStreak   int                  `json:"longest_streak"`
	TotalWorkouts   int                  `json:"total_workouts"`
	StreakFreezes   int                  `json:"streak_freezes"`
	LastWorkoutDate string               `json:"last_workout_date,omitempty"`
	History         map[string]DayStatus `json:"workout_history"`
	WeeklyGoal      int                  `json:"weekly_goal"`
	WeeklyCompleted int                  `json:"weekly_completed"`
	RestDaysAllowed int                  `json:"rest_days_allowed"`
	Achievements    []string             `json:"achievements"`
}

// NewStreakRecord returns first-run defaults.
func NewStreakRecord() *StreakRecord {
	return &StreakRecord{
		StreakFreezes:   startingStreakFreezes,
		History:         map[string]DayStatus{},
		WeeklyGoal:      defaultWeeklyGoal,
		RestDaysAllowed: defaultRestDaysAllowed,
		Achievements:    []string{},
	}
}

// LogWorkout marks today as worked out and advances every counter.
func (r *StreakRecord) LogWorkout(now time.Time) {
	today := now.UTC().Format(dayLayout)

	if r.History == nil {
		r.History = map[string]DayStatus{}
	}
	r.History[today] = DayCompleted
	r.CurrentStreak++
	if r.CurrentStreak > r.LongestStreak {
		r.LongestStreak = r.CurrentStreak
	}
	r.TotalWorkouts++
	r.LastWorkoutDate = today
	r.WeeklyCompleted = r.countCurrentWeek(now)

	if r.CurrentStreak >= 7 {
		r.unlock(StreakAchWeekWarrior)
	}
	if r.CurrentStreak >= 30 {
		r.unlock(StreakAchMonthlyMaster)
	}
	if r.TotalWorkouts >= 50 {
		r.unlock(StreakAchFiftyStrong)
	}
	if r.TotalWorkouts >= 100 {
		r.unlock(StreakAchCenturyClub)
	}
}

// UseFreeze spends one freeze token to keep the streak alive without a
// workout. With no tokens left the record is untouched.
func (r *StreakRecord) UseFreeze(now time.Time) bool {
	if r.StreakFreezes <= 0 {
		return false
	}
	today := now.UTC().Format(dayLayout)
	if r.History == nil {
		r.History = map[string]DayStatus{}
	}
	r.StreakFreezes--
	r.History[today] = DayFrozen
	r.LastWorkoutDate = today
	return true
}

// CheckBreak resets the current streak when too many days have passed
// since the last workout or freeze. It runs once at load; the streak
// can therefore read stale until the next load, which is accepted.
func (r *StreakRecord) CheckBreak(now time.Time) bool {
	if r.LastWorkoutDate == "" || r.CurrentStreak == 0 {
		return false
	}
	last, err := time.Parse(dayLayout, r.LastWorkoutDate)
	if err != nil {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	days := int(today.Sub(last).Hours() / 24)
	if days > r.RestDaysAllowed+1 {
		r.CurrentStreak = 0
		return true
	}
	return false
}

// HasAchievement reports whether the id has been unlocked.
func (r *StreakRecord) HasAchievement(id string) bool {
	for _, a := range r.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (r *StreakRecord) unlock(id string) {
	if r.HasAchievement(id) {
		return
	}
	r.Achievements = append(r.Achievements, id)
}

// countCurrentWeek scans the Monday-started week containing now.
func (r *StreakRecord) countCurrentWeek(now time.Time) int {
	start := StartOfWeek(now.UTC())
	completed := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i).Format(dayLayout)
		if _, ok := r.History[day]; ok {
			completed++
		}
	}
	return completed
}

// StartOfWeek truncates to the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = t.Truncate(24 * time.Hour)
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return t.AddDate(0, 0, -offset)
}
