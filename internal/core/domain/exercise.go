package domain

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown exercise category")
	ErrUnknownTier     = errors.New("unknown difficulty tier")
)

// Tier is the catalog difficulty bucket exercises are filed under.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// Category is a main-section exercise group selectable by goal or focus area.
type Category string

const (
	CategoryUpperBody Category = "upperBody"
	CategoryLowerBody Category = "lowerBody"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
)

// QuickCategory tags the prebuilt quick-workout exercise pools.
type QuickCategory string

const (
	QuickCalisthenics QuickCategory = "calisthenics"
	QuickCardio       QuickCategory = "cardio"
	QuickStrength     QuickCategory = "strength"
	QuickFlexibility  QuickCategory = "flexibility"
	QuickHIIT         QuickCategory = "hiit"
)

// Exercise is an immutable catalog entry. Exactly one of Reps or
// DurationSec is the primary work unit, but both may be set for display.
type Exercise struct {
	Name        string  `json:"name"`
	Reps        int     `json:"reps,omitempty"`
	DurationSec int     `json:"duration,omitempty"`
	Calories    float64 `json:"calories,omitempty"`
	Muscle      string  `json:"muscle,omitempty"`
	Type        string  `json:"type,omitempty"`
}

// Seconds returns the work-phase length for the session timer,
// falling back to the default when the entry has no duration.
func (e Exercise) Seconds() int {
	if e.DurationSec > 0 {
		return e.DurationSec
	}
	return DefaultExerciseSeconds
}
