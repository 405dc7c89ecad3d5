package domain

// The exercise catalog is static data. Nothing here is mutated at
// runtime; callers that need to reorder a list must copy it first.

// WarmupCatalog holds the warm-up pool used by the generator.
var WarmupCatalog = []Exercise{
	{Name: "Jumping Jacks", DurationSec: 60, Calories: 10},
	{Name: "High Knees", DurationSec: 45, Calories: 8},
	{Name: "Arm Circles", DurationSec: 30, Calories: 3},
	{Name: "Leg Swings", DurationSec: 30, Calories: 3},
	{Name: "Torso Twists", DurationSec: 30, Calories: 3},
}

// CooldownCatalog holds the cool-down pool used by the generator.
var CooldownCatalog = []Exercise{
	{Name: "Standing Forward Fold", DurationSec: 30, Calories: 2},
	{Name: "Quad Stretch", DurationSec: 30, Calories: 2},
	{Name: "Shoulder Stretch", DurationSec: 30, Calories: 2},
	{Name: "Hip Flexor Stretch", DurationSec: 30, Calories: 2},
	{Name: "Deep Breathing", DurationSec: 60, Calories: 2},
}

// MainCatalog maps category and tier to the main-section pools.
var MainCatalog = map[Category]map[Tier][]Exercise{
	CategoryUpperBody: {
		TierEasy: {
			{Name: "Wall Push-Ups", Reps: 12, Calories: 5, Muscle: "chest"},
			{Name: "Knee Push-Ups", Reps: 10, Calories: 6, Muscle: "chest"},
			{Name: "Arm Circles", Reps: 20, Calories: 3, Muscle: "shoulders"},
			{Name: "Tricep Dips (Chair)", Reps: 10, Calories: 5, Muscle: "triceps"},
		},
		TierMedium: {
			{Name: "Standard Push-Ups", Reps: 15, Calories: 8, Muscle: "chest"},
			{Name: "Diamond Push-Ups", Reps: 10, Calories: 9, Muscle: "triceps"},
			{Name: "Pike Push-Ups", Reps: 10, Calories: 8, Muscle: "shoulders"},
			{Name: "Tricep Dips", Reps: 15, Calories: 7, Muscle: "triceps"},
			{Name: "Incline Push-Ups", Reps: 12, Calories: 7, Muscle: "chest"},
		},
		TierHard: {
			{Name: "Archer Push-Ups", Reps: 8, Calories: 12, Muscle: "chest"},
			{Name: "Decline Push-Ups", Reps: 15, Calories: 10, Muscle: "chest"},
			{Name: "Handstand Hold", DurationSec: 30, Calories: 8, Muscle: "shoulders"},
			{Name: "Pseudo Planche Push-Ups", Reps: 8, Calories: 12, Muscle: "shoulders"},
			{Name: "One-Arm Push-Up Progression", Reps: 5, Calories: 15, Muscle: "chest"},
		},
		TierExpert: {
			{Name: "One-Arm Push-Ups", Reps: 5, Calories: 18, Muscle: "chest"},
			{Name: "Handstand Push-Ups", Reps: 8, Calories: 15, Muscle: "shoulders"},
			{Name: "Planche Leans", DurationSec: 20, Calories: 12, Muscle: "shoulders"},
			{Name: "Muscle-Up Negatives", Reps: 5, Calories: 20, Muscle: "back"},
		},
	},
	CategoryLowerBody: {
		TierEasy: {
			{Name: "Bodyweight Squats", Reps: 15, Calories: 8, Muscle: "quads"},
			{Name: "Glute Bridges", Reps: 15, Calories: 6, Muscle: "glutes"},
			{Name: "Calf Raises", Reps: 20, Calories: 5, Muscle: "calves"},
			{Name: "Standing Leg Raises", Reps: 12, Calories: 4, Muscle: "hip flexors"},
		},
		TierMedium: {
			{Name: "Jump Squats", Reps: 12, Calories: 12, Muscle: "quads"},
			{Name: "Lunges", Reps: 12, Calories: 10, Muscle: "quads"},
			{Name: "Bulgarian Split Squats", Reps: 10, Calories: 12, Muscle: "quads"},
			{Name: "Single-Leg Glute Bridges", Reps: 12, Calories: 8, Muscle: "glutes"},
		},
		TierHard: {
			{Name: "Pistol Squat Progressions", Reps: 6, Calories: 15, Muscle: "quads"},
			{Name: "Box Jumps", Reps: 10, Calories: 15, Muscle: "quads"},
			{Name: "Nordic Curl Negatives", Reps: 6, Calories: 12, Muscle: "hamstrings"},
			{Name: "Shrimp Squats", Reps: 6, Calories: 14, Muscle: "quads"},
		},
		TierExpert: {
			{Name: "Pistol Squats", Reps: 8, Calories: 18, Muscle: "quads"},
			{Name: "Nordic Curls", Reps: 6, Calories: 15, Muscle: "hamstrings"},
			{Name: "Plyometric Lunges", Reps: 12, Calories: 18, Muscle: "quads"},
			{Name: "Single-Leg Box Jumps", Reps: 6, Calories: 16, Muscle: "quads"},
		},
	},
	CategoryCore: {
		TierEasy: {
			{Name: "Dead Bug", Reps: 12, Calories: 5, Muscle: "abs"},
			{Name: "Bird Dog", Reps: 12, Calories: 4, Muscle: "core"},
			{Name: "Plank Hold", DurationSec: 30, Calories: 5, Muscle: "core"},
			{Name: "Crunches", Reps: 15, Calories: 5, Muscle: "abs"},
		},
		TierMedium: {
			{Name: "Bicycle Crunches", Reps: 20, Calories: 8, Muscle: "obliques"},
			{Name: "Mountain Climbers", Reps: 20, Calories: 10, Muscle: "core"},
			{Name: "Plank Hold", DurationSec: 60, Calories: 8, Muscle: "core"},
			{Name: "Leg Raises", Reps: 12, Calories: 7, Muscle: "lower abs"},
			{Name: "Russian Twists", Reps: 20, Calories: 8, Muscle: "obliques"},
		},
		TierHard: {
			{Name: "L-Sit Progression", DurationSec: 20, Calories: 10, Muscle: "core"},
			{Name: "Dragon Flag Negatives", Reps: 6, Calories: 12, Muscle: "abs"},
			{Name: "Hanging Leg Raises", Reps: 10, Calories: 10, Muscle: "lower abs"},
			{Name: "Ab Wheel Rollouts", Reps: 10, Calories: 12, Muscle: "core"},
		},
		TierExpert: {
			{Name: "L-Sit Hold", DurationSec: 30, Calories: 15, Muscle: "core"},
			{Name: "Dragon Flags", Reps: 8, Calories: 18, Muscle: "abs"},
			{Name: "Front Lever Progressions", DurationSec: 15, Calories: 15, Muscle: "core"},
			{Name: "Human Flag Attempts", Reps: 3, Calories: 12, Muscle: "obliques"},
		},
	},
	CategoryCardio: {
		TierEasy: {
			{Name: "Marching in Place", DurationSec: 60, Calories: 8, Muscle: "cardio"},
			{Name: "Step Touch", DurationSec: 60, Calories: 7, Muscle: "cardio"},
		},
		TierMedium: {
			{Name: "Burpees", Reps: 10, Calories: 15, Muscle: "full body"},
			{Name: "High Knees", DurationSec: 45, Calories: 12, Muscle: "cardio"},
			{Name: "Mountain Climbers", DurationSec: 45, Calories: 12, Muscle: "cardio"},
		},
		TierHard: {
			{Name: "Burpee Box Jumps", Reps: 8, Calories: 18, Muscle: "full body"},
			{Name: "Tuck Jumps", Reps: 10, Calories: 15, Muscle: "legs"},
		},
		TierExpert: {
			{Name: "Muscle-Up Burpees", Reps: 5, Calories: 25, Muscle: "full body"},
			{Name: "Clapping Push-Up Burpees", Reps: 8, Calories: 22, Muscle: "full body"},
		},
	},
}

// QuickCatalog holds the per-category pools the session engine samples
// from when a quick workout carries no explicit exercise list.
var QuickCatalog = map[QuickCategory][]Exercise{
	QuickCalisthenics: {
		{Name: "Push-Ups", Reps: 15, DurationSec: 45},
		{Name: "Squats", Reps: 20, DurationSec: 60},
		{Name: "Lunges", Reps: 12, DurationSec: 45},
		{Name: "Plank Hold", DurationSec: 30},
		{Name: "Mountain Climbers", Reps: 20, DurationSec: 45},
		{Name: "Burpees", Reps: 10, DurationSec: 60},
		{Name: "Tricep Dips", Reps: 15, DurationSec: 45},
		{Name: "Leg Raises", Reps: 15, DurationSec: 45},
	},
	QuickCardio: {
		{Name: "Jumping Jacks", Reps: 30, DurationSec: 45},
		{Name: "High Knees", DurationSec: 45},
		{Name: "Butt Kicks", DurationSec: 45},
		{Name: "Mountain Climbers", Reps: 20, DurationSec: 45},
		{Name: "Burpees", Reps: 10, DurationSec: 60},
		{Name: "Jump Squats", Reps: 15, DurationSec: 45},
		{Name: "Running in Place", DurationSec: 60},
		{Name: "Star Jumps", Reps: 15, DurationSec: 45},
	},
	QuickStrength: {
		{Name: "Push-Ups", Reps: 15, DurationSec: 45},
		{Name: "Diamond Push-Ups", Reps: 10, DurationSec: 45},
		{Name: "Wide Push-Ups", Reps: 12, DurationSec: 45},
		{Name: "Tricep Dips", Reps: 15, DurationSec: 45},
		{Name: "Pike Push-Ups", Reps: 10, DurationSec: 45},
		{Name: "Plank Hold", DurationSec: 45},
		{Name: "Superman Hold", DurationSec: 30},
		{Name: "Glute Bridges", Reps: 20, DurationSec: 45},
	},
	QuickFlexibility: {
		{Name: "Forward Fold", DurationSec: 30},
		{Name: "Downward Dog", DurationSec: 30},
		{Name: "Cat-Cow Stretch", DurationSec: 30},
		{Name: "Hip Flexor Stretch", DurationSec: 30},
		{Name: "Quad Stretch", DurationSec: 30},
		{Name: "Hamstring Stretch", DurationSec: 30},
		{Name: "Shoulder Stretch", DurationSec: 30},
		{Name: "Child's Pose", DurationSec: 30},
	},
	QuickHIIT: {
		{Name: "Burpees", Reps: 10, DurationSec: 45},
		{Name: "Jump Squats", Reps: 15, DurationSec: 30},
		{Name: "Mountain Climbers", Reps: 30, DurationSec: 30},
		{Name: "High Knees", DurationSec: 30},
		{Name: "Push-Ups", Reps: 15, DurationSec: 30},
		{Name: "Tuck Jumps", Reps: 10, DurationSec: 30},
		{Name: "Plank Jacks", Reps: 20, DurationSec: 30},
		{Name: "Speed Skaters", Reps: 20, DurationSec: 30},
	},
}

// QuickWorkout is a prebuilt catalog workout; the session engine fills
// in its exercises from QuickCatalog at start.
type QuickWorkout struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Category      QuickCategory `json:"category"`
	DurationMin   int           `json:"duration"`
	Calories      float64       `json:"calories"`
	Difficulty    string        `json:"difficulty"`
	ExerciseCount int           `json:"exercises"`
	Image         string        `json:"image"`
}

// QuickWorkouts is the browsable catalog workout list.
var QuickWorkouts = []QuickWorkout{
	{ID: 1, Name: "Full Body Burn", Category: QuickHIIT, DurationMin: 30, Calories: 350, Difficulty: "Hard", ExerciseCount: 12, Image: "🔥"},
	{ID: 2, Name: "Morning Yoga Flow", Category: QuickFlexibility, DurationMin: 20, Calories: 120, Difficulty: "Easy", ExerciseCount: 8, Image: "🧘"},
	{ID: 3, Name: "Cardio Blast", Category: QuickCardio, DurationMin: 25, Calories: 280, Difficulty: "Medium", ExerciseCount: 10, Image: "🏃"},
	{ID: 4, Name: "Upper Body Strength", Category: QuickStrength, DurationMin: 35, Calories: 250, Difficulty: "Medium", ExerciseCount: 14, Image: "💪"},
	{ID: 5, Name: "Core Crusher", Category: QuickStrength, DurationMin: 15, Calories: 180, Difficulty: "Hard", ExerciseCount: 8, Image: "🎯"},
	{ID: 6, Name: "Stretching Routine", Category: QuickFlexibility, DurationMin: 10, Calories: 50, Difficulty: "Easy", ExerciseCount: 6, Image: "🌟"},
	{ID: 7, Name: "Tabata Training", Category: QuickHIIT, DurationMin: 20, Calories: 300, Difficulty: "Hard", ExerciseCount: 8, Image: "⏱️"},
	{ID: 8, Name: "Leg Day Power", Category: QuickStrength, DurationMin: 40, Calories: 320, Difficulty: "Hard", ExerciseCount: 16, Image: "🦵"},
	{ID: 9, Name: "Fat Burner Express", Category: QuickCardio, DurationMin: 15, Calories: 200, Difficulty: "Medium", ExerciseCount: 6, Image: "🚀"},
	{ID: 10, Name: "Calisthenics Basics", Category: QuickCalisthenics, DurationMin: 20, Calories: 150, Difficulty: "Easy", ExerciseCount: 8, Image: "🤸"},
	{ID: 11, Name: "Beginner Push-Up Progression", Category: QuickCalisthenics, DurationMin: 15, Calories: 120, Difficulty: "Easy", ExerciseCount: 6, Image: "💪"},
	{ID: 12, Name: "Wall & Knee Push-Ups", Category: QuickCalisthenics, DurationMin: 15, Calories: 100, Difficulty: "Easy", ExerciseCount: 5, Image: "🧱"},
	{ID: 13, Name: "Bodyweight Squats Intro", Category: QuickCalisthenics, DurationMin: 20, Calories: 140, Difficulty: "Easy", ExerciseCount: 7, Image: "🦵"},
	{ID: 14, Name: "Pull-Up Foundation", Category: QuickCalisthenics, DurationMin: 25, Calories: 200, Difficulty: "Medium", ExerciseCount: 8, Image: "🏋️"},
	{ID: 15, Name: "Dips & Push-Up Combos", Category: QuickCalisthenics, DurationMin: 30, Calories: 250, Difficulty: "Medium", ExerciseCount: 10, Image: "💪"},
	{ID: 16, Name: "Pistol Squat Training", Category: QuickCalisthenics, DurationMin: 25, Calories: 180, Difficulty: "Medium", ExerciseCount: 8, Image: "🎯"},
	{ID: 17, Name: "Core & L-Sit Progressions", Category: QuickCalisthenics, DurationMin: 20, Calories: 160, Difficulty: "Medium", ExerciseCount: 7, Image: "🔥"},
	{ID: 18, Name: "Muscle-Up Prep", Category: QuickCalisthenics, DurationMin: 30, Calories: 280, Difficulty: "Medium", ExerciseCount: 10, Image: "⬆️"},
	{ID: 19, Name: "Advanced Pull-Up Variations", Category: QuickCalisthenics, DurationMin: 35, Calories: 320, Difficulty: "Hard", ExerciseCount: 12, Image: "💪"},
	{ID: 20, Name: "Handstand Push-Ups", Category: QuickCalisthenics, DurationMin: 30, Calories: 280, Difficulty: "Hard", ExerciseCount: 8, Image: "🤸"},
	{ID: 21, Name: "Planche Progressions", Category: QuickCalisthenics, DurationMin: 35, Calories: 300, Difficulty: "Hard", ExerciseCount: 10, Image: "🦾"},
	{ID: 22, Name: "Front Lever Training", Category: QuickCalisthenics, DurationMin: 30, Calories: 260, Difficulty: "Hard", ExerciseCount: 9, Image: "🏆"},
	{ID: 23, Name: "Pro Muscle-Up Mastery", Category: QuickCalisthenics, DurationMin: 45, Calories: 400, Difficulty: "Expert", ExerciseCount: 14, Image: "👑"},
	{ID: 24, Name: "Full Planche Workout", Category: QuickCalisthenics, DurationMin: 40, Calories: 380, Difficulty: "Expert", ExerciseCount: 12, Image: "🔱"},
	{ID: 25, Name: "Iron Cross Preparation", Category: QuickCalisthenics, DurationMin: 45, Calories: 420, Difficulty: "Expert", ExerciseCount: 15, Image: "⚔️"},
	{ID: 26, Name: "One-Arm Pull-Up Program", Category: QuickCalisthenics, DurationMin: 40, Calories: 350, Difficulty: "Expert", ExerciseCount: 10, Image: "💎"},
	{ID: 27, Name: "Street Workout Pro", Category: QuickCalisthenics, DurationMin: 50, Calories: 450, Difficulty: "Expert", ExerciseCount: 16, Image: "🏅"},
}

// FindQuickWorkout looks a catalog workout up by id.
func FindQuickWorkout(id int) (QuickWorkout, bool) {
	for _, w := range QuickWorkouts {
		if w.ID == id {
			return w, true
		}
	}
	return QuickWorkout{}, false
}
