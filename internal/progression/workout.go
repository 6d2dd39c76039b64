package progression

import (
	"fmt"
	"math"
)

// WorkoutExercise is one prescribed exercise in a generated workout.
type WorkoutExercise struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Sets                int     `json:"sets"`
	Reps                string  `json:"reps"`
	DurationSeconds     int     `json:"duration_seconds"`
	IntensityMultiplier float64 `json:"intensity_multiplier"`
	CreditReward        int     `json:"credit_reward"`
	UnlockRequirement   string  `json:"unlock_requirement"`
}

// GeneratedWorkout is the immutable output of the synthesizer. Rewards are
// credited by the caller on completion.
type GeneratedWorkout struct {
	Exercises            []WorkoutExercise `json:"exercises"`
	TotalDurationSeconds int               `json:"total_duration_seconds"`
	DifficultyLevel      int               `json:"difficulty_level"`
	TotalCreditReward    int               `json:"total_credit_reward"`
	FameReward           int               `json:"fame_reward"`
	ExperienceReward     int               `json:"experience_reward"`
}

// SynthesizeWorkout builds a concrete workout for an avatar at the given
// level and fame. Requested exercise names not present in the catalog are
// dropped without error — a missing catalog entry must never block the
// user's workout. An empty request uses StarterExercises.
//
// Pure: the result depends only on the inputs and the static catalog.
func (c *Catalog) SynthesizeWorkout(level int, fame float64, exerciseNames []string) GeneratedWorkout {
	if len(exerciseNames) == 0 {
		exerciseNames = StarterExercises
	}

	fameTier := c.CurrentFameTier(fame)
	diffTier := c.CurrentDifficultyTier(level, fame)

	workout := GeneratedWorkout{DifficultyLevel: diffTier.Level}

	for _, name := range exerciseNames {
		tmpl, ok := c.Exercises[name]
		if !ok {
			continue
		}

		prog, ok := tmpl.Progression[diffTier.Level]
		if !ok {
			// Templates define all tiers; fall back to tier 1 if one is missing.
			prog = tmpl.Progression[1]
		}

		credit := int(math.Floor(float64(diffTier.CreditReward) * fameTier.CreditMultiplier))

		workout.Exercises = append(workout.Exercises, WorkoutExercise{
			Name:                tmpl.Name,
			Description:         tmpl.Description,
			Sets:                prog.Sets,
			Reps:                prog.Reps,
			DurationSeconds:     prog.DurationSeconds,
			IntensityMultiplier: diffTier.IntensityMultiplier * fameTier.IntensityMultiplier,
			CreditReward:        credit,
			UnlockRequirement:   fmt.Sprintf("fame %.0f+, level %d+", diffTier.Unlock.MinFame, diffTier.Unlock.MinLevel),
		})

		workout.TotalDurationSeconds += prog.DurationSeconds
		workout.TotalCreditReward += credit
	}

	workout.FameReward = int(math.Floor(float64(workout.TotalCreditReward) * 0.1))
	workout.ExperienceReward = int(math.Floor(float64(workout.TotalCreditReward) * 0.2))

	return workout
}
