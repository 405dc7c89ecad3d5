package services_test

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *services.GeneratorService {
	return services.NewGeneratorService(rand.New(rand.NewSource(seed)), 0)
}

func sectionSeconds(section []domain.Exercise) int {
	total := 0
	for _, ex := range section {
		total += ex.DurationSec
	}
	return total
}

func TestGeneratorService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Error: Invalid preferences pass sentinel errors through", func(t *testing.T) {
		svc := newTestGenerator(1)

		_, err := svc.Generate(ctx, domain.GeneratorPreferences{Goal: "bulk", Level: domain.LevelBeginner, DurationMin: 30})
		assert.ErrorIs(t, err, domain.ErrInvalidGoal)

		_, err = svc.Generate(ctx, domain.GeneratorPreferences{Goal: domain.GoalCardio, Level: domain.LevelBeginner, DurationMin: 5})
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})

	t.Run("Success: Cardio beginner plan draws only from the easy cardio and core pools", func(t *testing.T) {
		svc := newTestGenerator(42)

		plan, err := svc.Generate(ctx, domain.GeneratorPreferences{
			Goal:        domain.GoalCardio,
			Level:       domain.LevelBeginner,
			DurationMin: 10,
		})
		require.NoError(t, err)

		allowed := map[string]bool{}
		for _, ex := range domain.MainCatalog[domain.CategoryCardio][domain.TierEasy] {
			allowed[ex.Name] = true
		}
		for _, ex := range domain.MainCatalog[domain.CategoryCore][domain.TierEasy] {
			allowed[ex.Name] = true
		}
		require.NotEmpty(t, plan.Main)
		for _, ex := range plan.Main {
			assert.True(t, allowed[ex.Name], "unexpected main exercise %q", ex.Name)
		}

		// ceil(8/2) exercises per category at most.
		assert.LessOrEqual(t, len(plan.Main), 8)
		assert.Equal(t, "beginner", plan.Difficulty)
		assert.Equal(t, 10, plan.DurationMin)
	})

	t.Run("Success: Warmup and cooldown respect their budgets", func(t *testing.T) {
		svc := newTestGenerator(7)

		plan, err := svc.Generate(ctx, domain.GeneratorPreferences{
			Goal:        domain.GoalGeneral,
			Level:       domain.LevelIntermediate,
			DurationMin: 10,
		})
		require.NoError(t, err)

		// 600s total: 15% warmup, 10% cooldown.
		assert.LessOrEqual(t, sectionSeconds(plan.Warmup), 90)
		assert.LessOrEqual(t, sectionSeconds(plan.Cooldown), 60)
		for _, ex := range plan.Warmup {
			assert.Equal(t, "warmup", ex.Type)
		}
		for _, ex := range plan.Cooldown {
			assert.Equal(t, "cooldown", ex.Type)
		}
	})

	t.Run("Success: Name combines a prefix with a goal name", func(t *testing.T) {
		svc := newTestGenerator(3)

		plan, err := svc.Generate(ctx, domain.GeneratorPreferences{
			Goal:        domain.GoalStrength,
			Level:       domain.LevelAdvanced,
			DurationMin: 30,
		})
		require.NoError(t, err)

		parts := strings.SplitN(plan.Name, " ", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, []string{"Strength Builder", "Muscle Forge", "Power Session"}, parts[1])
	})

	t.Run("Success: Calories scale with the intensity multiplier", func(t *testing.T) {
		prefs := domain.GeneratorPreferences{
			Goal:        domain.GoalCardio,
			Level:       domain.LevelBeginner,
			DurationMin: 20,
		}

		// Same seed, different level: identical picks, scaled total.
		beginner, err := newTestGenerator(99).Generate(ctx, prefs)
		require.NoError(t, err)

		raw := 0.0
		for _, ex := range beginner.Warmup {
			raw += ex.Calories
		}
		for _, ex := range beginner.Main {
			raw += ex.Calories
		}
		for _, ex := range beginner.Cooldown {
			raw += ex.Calories
		}
		assert.Equal(t, math.Round(raw*0.8), beginner.TotalCalories)
	})

	t.Run("Error: Cancelled context aborts the thinking delay", func(t *testing.T) {
		svc := services.NewGeneratorService(rand.New(rand.NewSource(1)), time.Minute)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.Generate(cancelled, domain.GeneratorPreferences{
			Goal:        domain.GoalCardio,
			Level:       domain.LevelBeginner,
			DurationMin: 30,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGeneratorService_Deterministic(t *testing.T) {
	prefs := domain.GeneratorPreferences{
		Goal:        domain.GoalGeneral,
		Level:       domain.LevelExpert,
		DurationMin: 45,
	}

	a, err := newTestGenerator(5).Generate(context.Background(), prefs)
	require.NoError(t, err)
	b, err := newTestGenerator(5).Generate(context.Background(), prefs)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed produces the same plan")
}
