package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meltforce/socialite/internal/models"
)

// UpsertProgram stores a generated program, replacing any existing one for
// the same user. Each user has at most one active program.
func (db *DB) UpsertProgram(ctx context.Context, p models.ProgramRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO programs (user_id, fitness_goal, workouts_per_week, skill_level,
		 start_date, end_date, sessions, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (user_id) DO UPDATE SET
		 fitness_goal = EXCLUDED.fitness_goal,
		 workouts_per_week = EXCLUDED.workouts_per_week,
		 skill_level = EXCLUDED.skill_level,
		 start_date = EXCLUDED.start_date,
		 end_date = EXCLUDED.end_date,
		 sessions = EXCLUDED.sessions,
		 created_at = EXCLUDED.created_at`,
		p.UserID, p.FitnessGoal, p.WorkoutsPerWeek, p.SkillLevel,
		p.StartDate, p.EndDate, p.Sessions, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting program: %w", err)
	}
	return nil
}

// GetProgram retrieves the active program for a user.
func (db *DB) GetProgram(ctx context.Context, userID string) (*models.ProgramRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT user_id, fitness_goal, workouts_per_week, skill_level,
		 start_date, end_date, sessions, created_at
		 FROM programs WHERE user_id = $1`, userID)

	var p models.ProgramRow
	err := row.Scan(&p.UserID, &p.FitnessGoal, &p.WorkoutsPerWeek, &p.SkillLevel,
		&p.StartDate, &p.EndDate, &p.Sessions, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying program: %w", err)
	}
	return &p, nil
}
