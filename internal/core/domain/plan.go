package domain

import "errors"

var (
	ErrInvalidGoal         = errors.New("invalid goal (must be strength, cardio, flexibility, or general)")
	ErrInvalidFitnessLevel = errors.New("invalid fitness level (must be beginner, intermediate, advanced, or expert)")
	ErrInvalidDuration     = errors.New("duration must be between 10 and 60 minutes")
	ErrInvalidFocusArea    = errors.New("invalid focus area")
)

type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalCardio      Goal = "cardio"
	GoalFlexibility Goal = "flexibility"
	GoalGeneral     Goal = "general"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelExpert       FitnessLevel = "expert"
)

// Session timing defaults.
const (
	DefaultExerciseSeconds = 45
	RestSeconds            = 15
	ReadyCountdownSeconds  = 3
	DefaultQuickExercises  = 8
	WarmupCapSeconds       = 180
	CooldownCapSeconds     = 180
	FallbackCaloriesPerSec = 0.15
)

// LevelTier maps a fitness level onto a catalog difficulty tier.
var LevelTier = map[FitnessLevel]Tier{
	LevelBeginner:     TierEasy,
	LevelIntermediate: TierMedium,
	LevelAdvanced:     TierHard,
	LevelExpert:       TierExpert,
}

// IntensityMultiplier scales the plan's calorie estimate per level.
var IntensityMultiplier = map[FitnessLevel]float64{
	LevelBeginner:     0.8,
	LevelIntermediate: 1.0,
	LevelAdvanced:     1.2,
	LevelExpert:       1.4,
}

// GeneratorPreferences are the inputs to the workout generator.
type GeneratorPreferences struct {
	Goal        Goal         `json:"goal"`
	Level       FitnessLevel `json:"fitness_level"`
	DurationMin int          `json:"duration"`
	FocusAreas  []Category   `json:"focus_areas,omitempty"`
}

func (p GeneratorPreferences) Validate() error {
	switch p.Goal {
	case GoalStrength, GoalCardio, GoalFlexibility, GoalGeneral:
	default:
		return ErrInvalidGoal
	}
	if _, ok := LevelTier[p.Level]; !ok {
		return ErrInvalidFitnessLevel
	}
	if p.DurationMin < 10 || p.DurationMin > 60 {
		return ErrInvalidDuration
	}
	for _, area := range p.FocusAreas {
		if _, ok := MainCatalog[area]; !ok {
			return ErrInvalidFocusArea
		}
	}
	return nil
}

// Categories returns the main-section categories the goal draws from.
// Strength honors the chosen focus areas; the other goals ignore them.
func (p GeneratorPreferences) Categories() []Category {
	switch p.Goal {
	case GoalStrength:
		if len(p.FocusAreas) > 0 {
			return p.FocusAreas
		}
		return []Category{CategoryUpperBody, CategoryLowerBody, CategoryCore}
	case GoalCardio:
		return []Category{CategoryCardio, CategoryCore}
	case GoalFlexibility:
		return []Category{CategoryCore, CategoryLowerBody}
	default:
		return []Category{CategoryUpperBody, CategoryLowerBody, CategoryCore, CategoryCardio}
	}
}

// WorkoutPlan is one generated or catalog-derived workout. Plans live
// for a single session and are never persisted.
type WorkoutPlan struct {
	Name          string     `json:"name"`
	Warmup        []Exercise `json:"warmup"`
	Main          []Exercise `json:"main_workout"`
	Cooldown      []Exercise `json:"cooldown"`
	TotalCalories float64    `json:"total_calories"`
	DurationMin   int        `json:"total_duration"`
	Difficulty    string     `json:"difficulty"`

	// Category and ExerciseCount drive quick-workout synthesis when
	// Main is empty.
	Category      QuickCategory `json:"category,omitempty"`
	ExerciseCount int           `json:"exercise_count,omitempty"`
}

// PlanFromQuickWorkout adapts a catalog entry into a runnable plan.
// The main section stays empty; the session engine samples exercises
// from the category pool at start.
func PlanFromQuickWorkout(w QuickWorkout) WorkoutPlan {
	return WorkoutPlan{
		Name:          w.Name,
		TotalCalories: w.Calories,
		DurationMin:   w.DurationMin,
		Difficulty:    w.Difficulty,
		Category:      w.Category,
		ExerciseCount: w.ExerciseCount,
	}
}
