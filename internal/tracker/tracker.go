// Package tracker is the offline workout logger: workouts completed without
// connectivity land in a local SQLite file and sync to the server later.
package tracker

import (
	"log/slog"
	"time"
)

// Stats tracks sync progress.
type Stats struct {
	Pending int
	Synced  int
	Errored int
}

// Tracker logs workouts locally and syncs pending ones to the server.
type Tracker struct {
	client *Client
	state  *StateDB
	dryRun bool
	log    *slog.Logger
}

// New creates a new Tracker.
func New(client *Client, state *StateDB, dryRun bool, log *slog.Logger) *Tracker {
	return &Tracker{
		client: client,
		state:  state,
		dryRun: dryRun,
		log:    log,
	}
}

// Log records a workout completed now.
func (t *Tracker) Log(userID string, exercises []string) error {
	id, err := t.state.Log(userID, exercises, time.Now())
	if err != nil {
		return err
	}
	t.log.Info("workout logged", "id", id, "user_id", userID, "exercises", len(exercises))
	return nil
}

// Sync sends all pending workouts to the server, oldest first. A failed send
// leaves the workout pending for the next run.
func (t *Tracker) Sync() (*Stats, error) {
	pending, err := t.state.Pending()
	if err != nil {
		return nil, err
	}

	stats := &Stats{Pending: len(pending)}
	for _, w := range pending {
		if t.dryRun {
			t.log.Info("dry-run: would sync workout",
				"id", w.ID,
				"user_id", w.UserID,
				"completed_at", w.CompletedAt.Format(time.RFC3339),
			)
			continue
		}

		if err := t.client.SendCompletion(w); err != nil {
			t.log.Warn("sync failed, keeping pending", "id", w.ID, "error", err)
			stats.Errored++
			continue
		}

		if err := t.state.MarkSynced(w.ID); err != nil {
			t.log.Warn("failed to mark synced", "id", w.ID, "error", err)
			stats.Errored++
			continue
		}
		stats.Synced++
	}

	t.log.Info("sync complete", "pending", stats.Pending, "synced", stats.Synced, "errored", stats.Errored)
	return stats, nil
}
