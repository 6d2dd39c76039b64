package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/socialite/internal/models"
)

// InsertWorkoutLog records a completed workout. Returns true if inserted,
// false if the row ID was already logged (tracker retries).
func (db *DB) InsertWorkoutLog(ctx context.Context, row models.WorkoutLogRow) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_log (id, user_id, completed_at, difficulty_level,
		 duration_seconds, credits_earned, fame_earned, experience_earned, exercises, source)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT DO NOTHING`,
		row.ID, row.UserID, row.CompletedAt, row.DifficultyLevel,
		row.DurationSeconds, row.CreditsEarned, row.FameEarned,
		row.ExperienceEarned, row.Exercises, row.Source)
	if err != nil {
		return false, fmt.Errorf("inserting workout log: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// QueryWorkoutLog retrieves completed workouts for a user in a time range,
// most recent first.
func (db *DB) QueryWorkoutLog(ctx context.Context, userID string, start, end time.Time) ([]models.WorkoutLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, completed_at, difficulty_level, duration_seconds,
		 credits_earned, fame_earned, experience_earned, exercises, source
		 FROM workout_log
		 WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3
		 ORDER BY completed_at DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying workout log: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLogRow
	for rows.Next() {
		var w models.WorkoutLogRow
		if err := rows.Scan(&w.ID, &w.UserID, &w.CompletedAt, &w.DifficultyLevel,
			&w.DurationSeconds, &w.CreditsEarned, &w.FameEarned,
			&w.ExperienceEarned, &w.Exercises, &w.Source); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}
