package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/socialite/internal/progression"
)

// Workout log sources.
const (
	WorkoutSourceAPI     = "api"
	WorkoutSourceTracker = "tracker"
	WorkoutSourceImport  = "import"
)

// WorkoutLogRow is one completed workout as persisted.
type WorkoutLogRow struct {
	ID               uuid.UUID                     `json:"id"`
	UserID           string                        `json:"user_id"`
	CompletedAt      time.Time                     `json:"completed_at"`
	DifficultyLevel  int                           `json:"difficulty_level"`
	DurationSeconds  int                           `json:"duration_seconds"`
	CreditsEarned    int                           `json:"credits_earned"`
	FameEarned       int                           `json:"fame_earned"`
	ExperienceEarned int                           `json:"experience_earned"`
	Exercises        []progression.WorkoutExercise `json:"exercises"`
	Source           string                        `json:"source"`
}

// LogFromWorkout builds a log row from a generated workout at completion
// time.
func LogFromWorkout(userID string, w progression.GeneratedWorkout, completedAt time.Time, source string) WorkoutLogRow {
	return WorkoutLogRow{
		ID:               uuid.New(),
		UserID:           userID,
		CompletedAt:      completedAt,
		DifficultyLevel:  w.DifficultyLevel,
		DurationSeconds:  w.TotalDurationSeconds,
		CreditsEarned:    w.TotalCreditReward,
		FameEarned:       w.FameReward,
		ExperienceEarned: w.ExperienceReward,
		Exercises:        w.Exercises,
		Source:           source,
	}
}

// LeaderboardEntry is one row of the fame leaderboard.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	Fame          float64 `json:"fame"`
	TotalWorkouts int     `json:"total_workouts"`
}
