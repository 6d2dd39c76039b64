package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/socialite/internal/models"
)

// Leaderboard returns the top avatars ranked by fame. Ties break on total
// workouts, then user ID for a stable order.
func (db *DB) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, name, level, fame, total_workouts
		 FROM avatars
		 ORDER BY fame DESC, total_workouts DESC, user_id ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var result []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Level, &e.Fame, &e.TotalWorkouts); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		e.Rank = len(result) + 1
		result = append(result, e)
	}
	return result, rows.Err()
}

// UserStats holds aggregate statistics for one user's workout history.
type UserStats struct {
	TotalWorkouts   int64      `json:"total_workouts"`
	TotalDuration   int64      `json:"total_duration_seconds"`
	TotalCredits    int64      `json:"total_credits_earned"`
	TotalFame       int64      `json:"total_fame_earned"`
	FirstWorkoutAt  *time.Time `json:"first_workout_at"`
	LatestWorkoutAt *time.Time `json:"latest_workout_at"`
}

// GetUserStats returns aggregate workout statistics for a user.
func (db *DB) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	stats := &UserStats{}
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*),
		 COALESCE(SUM(duration_seconds), 0),
		 COALESCE(SUM(credits_earned), 0),
		 COALESCE(SUM(fame_earned), 0),
		 MIN(completed_at), MAX(completed_at)
		 FROM workout_log WHERE user_id = $1`, userID,
	).Scan(&stats.TotalWorkouts, &stats.TotalDuration, &stats.TotalCredits,
		&stats.TotalFame, &stats.FirstWorkoutAt, &stats.LatestWorkoutAt)
	if err != nil {
		return nil, fmt.Errorf("querying user stats: %w", err)
	}
	return stats, nil
}
