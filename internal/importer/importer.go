// Package importer rebuilds an avatar from an exported workout history. The
// export is replayed chronologically through the progression engine so the
// resulting avatar has exactly the fame, experience, and level the workouts
// would have earned live.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/progression"
	"github.com/meltforce/socialite/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	WorkoutsReplayed   int
	WorkoutsDuplicated int
	LevelUps           int
	FinalLevel         int
	FinalFame          float64
}

// Export is the workout history file format.
type Export struct {
	UserID   string           `json:"user_id"`
	Name     string           `json:"name"`
	Workouts []ExportedWorkout `json:"workouts"`
}

// ExportedWorkout is one historical workout in an export file.
type ExportedWorkout struct {
	CompletedAt time.Time `json:"completed_at"`
	Exercises   []string  `json:"exercises,omitempty"`
}

// Importer replays exported workout history into the database.
type Importer struct {
	db      *storage.DB
	catalog *progression.Catalog
	log     *slog.Logger
	dryRun  bool
	stats   Stats
}

// New creates a new Importer.
func New(db *storage.DB, catalog *progression.Catalog, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, catalog: catalog, log: log, dryRun: dryRun}
}

// ImportFile reads an export file and replays it.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading export file: %w", err)
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return &imp.stats, fmt.Errorf("parsing export file: %w", err)
	}
	if export.UserID == "" {
		return &imp.stats, fmt.Errorf("export file has no user_id")
	}

	return imp.Import(ctx, export)
}

// Import replays the export's workouts and persists the resulting avatar and
// log rows. Fails if the user already has an avatar.
func (imp *Importer) Import(ctx context.Context, export Export) (*Stats, error) {
	avatar, logRows := Replay(imp.catalog, export)

	imp.stats.WorkoutsReplayed = len(logRows)
	imp.stats.FinalLevel = avatar.Level
	imp.stats.FinalFame = avatar.Fame
	imp.stats.LevelUps = avatar.Level - 1

	if imp.dryRun {
		imp.log.Info("dry-run: would import",
			"user_id", export.UserID,
			"workouts", len(logRows),
			"final_level", avatar.Level,
			"final_fame", avatar.Fame,
		)
		return &imp.stats, nil
	}

	inserted, err := imp.db.CreateAvatar(ctx, avatar)
	if err != nil {
		return &imp.stats, fmt.Errorf("creating avatar: %w", err)
	}
	if !inserted {
		return &imp.stats, fmt.Errorf("avatar already exists for user %s", export.UserID)
	}

	for _, row := range logRows {
		ok, err := imp.db.InsertWorkoutLog(ctx, row)
		if err != nil {
			return &imp.stats, fmt.Errorf("inserting workout log: %w", err)
		}
		if !ok {
			imp.stats.WorkoutsDuplicated++
		}
	}

	imp.log.Info("import complete",
		"user_id", export.UserID,
		"workouts", imp.stats.WorkoutsReplayed,
		"final_level", avatar.Level,
		"final_fame", avatar.Fame,
	)
	return &imp.stats, nil
}

// Replay runs an export through the progression engine chronologically and
// returns the resulting avatar plus one log row per workout. Decay between
// workouts is not replayed; the avatar starts fresh at import time.
func Replay(catalog *progression.Catalog, export Export) (models.Avatar, []models.WorkoutLogRow) {
	workouts := make([]ExportedWorkout, len(export.Workouts))
	copy(workouts, export.Workouts)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CompletedAt.Before(workouts[j].CompletedAt)
	})

	name := export.Name
	if name == "" {
		name = export.UserID
	}

	now := time.Now().UTC()
	avatar := models.NewAvatar(export.UserID, name, now)

	var logRows []models.WorkoutLogRow
	for _, ew := range workouts {
		generated := catalog.SynthesizeWorkout(avatar.Level, avatar.Fame, ew.Exercises)
		if len(generated.Exercises) == 0 {
			continue
		}

		completedAt := ew.CompletedAt.UTC()
		logRows = append(logRows, models.LogFromWorkout(export.UserID, generated, completedAt, models.WorkoutSourceImport))

		avatar.Fame += float64(generated.FameReward)
		avatar.Experience += float64(generated.ExperienceReward)
		avatar.TotalCreditsEarned += float64(generated.TotalCreditReward)
		avatar.TotalWorkouts++
		ts := completedAt
		avatar.LastWorkoutAt = &ts

		for next := catalog.CheckLevelUp(avatar.Level, avatar.Fame); next != nil; next = catalog.CheckLevelUp(avatar.Level, avatar.Fame) {
			avatar.Level = next.Level
		}
	}

	return avatar, logRows
}
