package mcp

import (
	"context"
	"time"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	GetAvatar(ctx context.Context, userID string) (*models.Avatar, error)
	GetProgram(ctx context.Context, userID string) (*models.ProgramRow, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	GetUserStats(ctx context.Context, userID string) (*storage.UserStats, error)
	QueryWorkoutLog(ctx context.Context, userID string, start, end time.Time) ([]models.WorkoutLogRow, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
