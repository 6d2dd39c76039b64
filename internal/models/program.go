package models

import (
	"time"

	"github.com/meltforce/socialite/internal/progression"
)

// ProgramRow is a persisted workout program. Sessions are stored as a JSONB
// document; the engine's types round-trip through it unchanged.
type ProgramRow struct {
	UserID          string                       `json:"user_id"`
	FitnessGoal     string                       `json:"fitness_goal"`
	WorkoutsPerWeek int                          `json:"workouts_per_week"`
	SkillLevel      progression.SkillLevel       `json:"skill_level"`
	StartDate       time.Time                    `json:"start_date"`
	EndDate         time.Time                    `json:"end_date"`
	Sessions        []progression.WorkoutSession `json:"sessions"`
	CreatedAt       time.Time                    `json:"created_at"`
}

// Program converts the row back to the engine's program type for the
// calendar helpers.
func (r ProgramRow) Program() progression.WorkoutProgram {
	return progression.WorkoutProgram{
		UserID:          r.UserID,
		FitnessGoal:     r.FitnessGoal,
		WorkoutsPerWeek: r.WorkoutsPerWeek,
		Sessions:        r.Sessions,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}
