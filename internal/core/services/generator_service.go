package services

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

var namePrefixes = []string{"Power", "Ultimate", "Dynamic", "Intense", "Supreme", "Elite", "Fusion"}

var goalNames = map[domain.Goal][]string{
	domain.GoalStrength:    {"Strength Builder", "Muscle Forge", "Power Session"},
	domain.GoalCardio:      {"Cardio Blast", "Heart Pumper", "Endurance Rush"},
	domain.GoalFlexibility: {"Flex Flow", "Mobility Master", "Stretch Session"},
	domain.GoalGeneral:     {"Full Body Burn", "Total Fitness", "Complete Workout"},
}

// GeneratorService builds workout plans from preferences. The random
// source is injected so tests can seed it; the configurable delay
// simulates generation "thinking time" and is context-cancellable.
type GeneratorService struct {
	mu         sync.Mutex
	rng        *rand.Rand
	thinkDelay time.Duration
}

func NewGeneratorService(rng *rand.Rand, thinkDelay time.Duration) *GeneratorService {
	return &GeneratorService{rng: rng, thinkDelay: thinkDelay}
}

// Generate produces a plan for the given preferences. It always
// succeeds on valid input; only context cancellation during the
// thinking delay aborts it.
func (s *GeneratorService) Generate(ctx context.Context, prefs domain.GeneratorPreferences) (*domain.WorkoutPlan, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	if s.thinkDelay > 0 {
		timer := time.NewTimer(s.thinkDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan := &domain.WorkoutPlan{
		Name:        s.workoutName(prefs.Goal),
		Warmup:      []domain.Exercise{},
		Main:        []domain.Exercise{},
		Cooldown:    []domain.Exercise{},
		DurationMin: prefs.DurationMin,
		Difficulty:  string(prefs.Level),
	}

	totalSeconds := float64(prefs.DurationMin * 60)
	warmupBudget := math.Min(domain.WarmupCapSeconds, totalSeconds*0.15)
	cooldownBudget := math.Min(domain.CooldownCapSeconds, totalSeconds*0.10)

	raw := 0.0

	plan.Warmup, raw = s.greedyFill(domain.WarmupCatalog, warmupBudget, raw, "warmup")

	tier := domain.LevelTier[prefs.Level]
	categories := prefs.Categories()
	perCategory := (domain.DefaultQuickExercises + len(categories) - 1) / len(categories)
	for _, category := range categories {
		pool := domain.MainCatalog[category][tier]
		picked := s.shuffled(pool)
		if len(picked) > perCategory {
			picked = picked[:perCategory]
		}
		for _, ex := range picked {
			ex.Type = string(category)
			plan.Main = append(plan.Main, ex)
			raw += ex.Calories
		}
	}

	plan.Cooldown, raw = s.greedyFill(domain.CooldownCatalog, cooldownBudget, raw, "cooldown")

	plan.TotalCalories = math.Round(raw * domain.IntensityMultiplier[prefs.Level])

	return plan, nil
}

// greedyFill shuffles the pool and keeps exercises first-fit while the
// cumulative duration stays inside the budget. Entries that do not fit
// are skipped, not retried.
func (s *GeneratorService) greedyFill(pool []domain.Exercise, budget float64, calories float64, sectionType string) ([]domain.Exercise, float64) {
	section := []domain.Exercise{}
	accumulated := 0.0
	for _, ex := range s.shuffled(pool) {
		if accumulated+float64(ex.DurationSec) <= budget {
			ex.Type = sectionType
			section = append(section, ex)
			accumulated += float64(ex.DurationSec)
			calories += ex.Calories
		}
	}
	return section, calories
}

func (s *GeneratorService) shuffled(pool []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, len(pool))
	copy(out, pool)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (s *GeneratorService) workoutName(goal domain.Goal) string {
	prefix := namePrefixes[s.rng.Intn(len(namePrefixes))]
	names := goalNames[goal]
	return prefix + " " + names[s.rng.Intn(len(names))]
}
