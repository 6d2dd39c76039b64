package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/progression"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const avatarColumns = `id, user_id, name, level, fame, experience, needs, luxury,
	 total_workouts, total_credits_earned, last_workout_at, created_at, updated_at`

// CreateAvatar inserts a new avatar. Returns false if the user already has one.
func (db *DB) CreateAvatar(ctx context.Context, a models.Avatar) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO avatars (id, user_id, name, level, fame, experience, needs, luxury,
		 total_workouts, total_credits_earned, last_workout_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 ON CONFLICT (user_id) DO NOTHING`,
		a.ID, a.UserID, a.Name, a.Level, a.Fame, a.Experience, a.Needs, a.Luxury,
		a.TotalWorkouts, a.TotalCreditsEarned, a.LastWorkoutAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("inserting avatar: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetAvatar retrieves an avatar by user ID.
func (db *DB) GetAvatar(ctx context.Context, userID string) (*models.Avatar, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+avatarColumns+` FROM avatars WHERE user_id = $1`, userID)

	a, err := scanAvatar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying avatar: %w", err)
	}
	return a, nil
}

// ListAvatars retrieves every avatar, oldest-updated first. Used by the decay
// scheduler to sweep the whole population.
func (db *DB) ListAvatars(ctx context.Context) ([]models.Avatar, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+avatarColumns+` FROM avatars ORDER BY updated_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying avatars: %w", err)
	}
	defer rows.Close()

	var result []models.Avatar
	for rows.Next() {
		a, err := scanAvatar(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning avatar: %w", err)
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

// ApplyDecayUpdate merges a partial decay update into an avatar row. Only the
// groups present in the update are written; everything else is untouched.
func (db *DB) ApplyDecayUpdate(ctx context.Context, userID string, upd progression.DecayUpdate, now time.Time) error {
	if upd.Empty() {
		return nil
	}

	query := `UPDATE avatars SET updated_at = $1`
	args := []any{now}

	if upd.Needs != nil {
		args = append(args, *upd.Needs)
		query += fmt.Sprintf(", needs = $%d", len(args))
	}
	if upd.Luxury != nil {
		args = append(args, *upd.Luxury)
		query += fmt.Sprintf(", luxury = $%d", len(args))
	}
	if upd.Fame != nil {
		args = append(args, *upd.Fame)
		query += fmt.Sprintf(", fame = $%d", len(args))
	}

	args = append(args, userID)
	query += fmt.Sprintf(" WHERE user_id = $%d", len(args))

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("applying decay update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyCompletion merges a workout completion into an avatar row: reward
// deltas are added to the stored totals and needs are restored to full.
func (db *DB) ApplyCompletion(ctx context.Context, userID string, upd models.CompletionUpdate, completedAt time.Time) error {
	query := `UPDATE avatars SET
		 fame = fame + $1,
		 experience = experience + $2,
		 total_credits_earned = total_credits_earned + $3,
		 total_workouts = total_workouts + 1,
		 needs = $4,
		 last_workout_at = $5,
		 updated_at = $5`
	args := []any{
		upd.FameDelta, upd.ExperienceDelta, upd.CreditsDelta,
		progression.Needs{Hunger: 100, Hygiene: 100, Happiness: 100},
		completedAt,
	}

	if upd.NewLevel != nil {
		args = append(args, *upd.NewLevel)
		query += fmt.Sprintf(", level = $%d", len(args))
	}

	args = append(args, userID)
	query += fmt.Sprintf(" WHERE user_id = $%d", len(args))

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("applying completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAvatar(row pgx.Row) (*models.Avatar, error) {
	var a models.Avatar
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Level, &a.Fame, &a.Experience,
		&a.Needs, &a.Luxury, &a.TotalWorkouts, &a.TotalCreditsEarned,
		&a.LastWorkoutAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
