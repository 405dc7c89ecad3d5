package domain

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionFinished   = errors.New("session already completed")
	ErrSessionNotStarted = errors.New("session has not been started")
)

// Phase is the session state machine phase.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseWorkout  Phase = "workout"
	PhaseRest     Phase = "rest"
	PhaseComplete Phase = "complete"
)

// CompletedWorkoutRecord is the immutable summary handed to the
// progress ledger when a session finishes.
type CompletedWorkoutRecord struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	DurationMin        int       `json:"duration"`
	CaloriesBurned     int       `json:"calories_burned"`
	ExercisesCompleted int       `json:"exercises_completed"`
	CompletedAt        time.Time `json:"completed_at"`
}

// Session executes one workout plan exercise by exercise. It is not
// safe for concurrent use; the owning service serializes access.
//
// Transitions fire one scheduling opportunity after the countdown
// reaches zero, so observers always see the terminal 0 before the
// phase changes.
type Session struct {
	ID        string      `json:"id"`
	Plan      WorkoutPlan `json:"plan"`
	Exercises []Exercise  `json:"exercises"`

	ExerciseIndex    int     `json:"current_exercise_index"`
	Phase            Phase   `json:"phase"`
	Running          bool    `json:"is_running"`
	RemainingSeconds int     `json:"time_remaining"`
	ElapsedSeconds   int     `json:"total_time_elapsed"`
	CaloriesBurned   float64 `json:"calories_burned"`

	Record *CompletedWorkoutRecord `json:"record,omitempty"`

	pendingAdvance bool
}

// NewSession prepares a session in the ready phase, paused. Plans
// without an explicit main section get one sampled from the quick
// catalog for their category.
func NewSession(plan WorkoutPlan, rng *rand.Rand) *Session {
	exercises := plan.Main
	if len(exercises) == 0 {
		pool, ok := QuickCatalog[plan.Category]
		if !ok {
			pool = QuickCatalog[QuickCalisthenics]
		}
		shuffled := make([]Exercise, len(pool))
		copy(shuffled, pool)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		count := plan.ExerciseCount
		if count <= 0 {
			count = DefaultQuickExercises
		}
		if count > len(shuffled) {
			count = len(shuffled)
		}
		exercises = shuffled[:count]
	}

	return &Session{
		ID:               uuid.NewString(),
		Plan:             plan,
		Exercises:        exercises,
		Phase:            PhaseReady,
		RemainingSeconds: ReadyCountdownSeconds,
	}
}

// Start begins the ready countdown.
func (s *Session) Start() error {
	if s.Phase == PhaseComplete {
		return ErrSessionFinished
	}
	s.Phase = PhaseReady
	s.RemainingSeconds = ReadyCountdownSeconds
	s.Running = true
	return nil
}

// Tick advances the session by one second. A tick that finds a pending
// zero-countdown transition applies it instead of counting down, so the
// zero value stays observable for a full scheduling turn.
func (s *Session) Tick() {
	if s.Phase == PhaseComplete {
		return
	}
	if s.pendingAdvance {
		s.pendingAdvance = false
		s.advance()
		return
	}
	if !s.Running || s.RemainingSeconds <= 0 {
		return
	}

	s.RemainingSeconds--
	s.ElapsedSeconds++
	if s.Phase == PhaseWorkout {
		s.CaloriesBurned += s.caloriesPerSecond()
	}
	if s.RemainingSeconds == 0 {
		s.pendingAdvance = true
	}
}

// TogglePause flips the running flag without touching the countdown.
func (s *Session) TogglePause() {
	if s.Phase == PhaseComplete {
		return
	}
	s.Running = !s.Running
}

// Skip advances past the current exercise or rest immediately, exactly
// as the zero-countdown transition would. Skipping the last exercise
// completes the session.
func (s *Session) Skip() {
	if s.Phase == PhaseComplete {
		return
	}
	s.pendingAdvance = false
	if s.ExerciseIndex < len(s.Exercises)-1 {
		s.ExerciseIndex++
		s.Phase = PhaseWorkout
		s.RemainingSeconds = s.Exercises[s.ExerciseIndex].Seconds()
	} else {
		s.complete()
	}
}

// CurrentExercise returns the exercise the session is positioned on.
func (s *Session) CurrentExercise() Exercise {
	return s.Exercises[s.ExerciseIndex]
}

func (s *Session) advance() {
	switch s.Phase {
	case PhaseReady:
		s.Phase = PhaseWorkout
		s.RemainingSeconds = s.CurrentExercise().Seconds()
		s.Running = true
	case PhaseWorkout:
		if s.ExerciseIndex < len(s.Exercises)-1 {
			s.Phase = PhaseRest
			s.RemainingSeconds = RestSeconds
		} else {
			s.complete()
		}
	case PhaseRest:
		s.ExerciseIndex++
		s.Phase = PhaseWorkout
		s.RemainingSeconds = s.CurrentExercise().Seconds()
	}
}

func (s *Session) complete() {
	s.Record = &CompletedWorkoutRecord{
		ID:                 uuid.NewString(),
		Name:               s.Plan.Name,
		DurationMin:        (s.ElapsedSeconds + 59) / 60,
		CaloriesBurned:     int(math.Round(s.CaloriesBurned)),
		ExercisesCompleted: len(s.Exercises),
		CompletedAt:        time.Now().UTC(),
	}
	s.Phase = PhaseComplete
	s.Running = false
}

func (s *Session) caloriesPerSecond() float64 {
	if s.Plan.TotalCalories > 0 && s.Plan.DurationMin > 0 {
		return s.Plan.TotalCalories / float64(s.Plan.DurationMin*60)
	}
	return FallbackCaloriesPerSec
}
