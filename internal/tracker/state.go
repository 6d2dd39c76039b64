package tracker

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// LoggedWorkout is one workout recorded offline, pending or already synced.
type LoggedWorkout struct {
	ID          uuid.UUID
	UserID      string
	Exercises   []string
	CompletedAt time.Time
	Synced      bool
}

// StateDB stores workouts logged while offline. Rows stay after syncing so
// the log doubles as a local history.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS logged_workouts (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		exercises    TEXT NOT NULL,
		completed_at TIMESTAMP NOT NULL,
		synced       INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// Log records a workout completed offline.
func (s *StateDB) Log(userID string, exercises []string, completedAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.Exec(
		`INSERT INTO logged_workouts (id, user_id, exercises, completed_at, synced) VALUES (?, ?, ?, ?, 0)`,
		id.String(), userID, strings.Join(exercises, ","), completedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("logging workout: %w", err)
	}
	return id, nil
}

// Pending returns workouts not yet synced, oldest first.
func (s *StateDB) Pending() ([]LoggedWorkout, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, exercises, completed_at FROM logged_workouts
		 WHERE synced = 0 ORDER BY completed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying pending workouts: %w", err)
	}
	defer rows.Close()

	var result []LoggedWorkout
	for rows.Next() {
		var (
			w             LoggedWorkout
			idStr, exStr  string
			completedsStr string
		)
		if err := rows.Scan(&idStr, &w.UserID, &exStr, &completedsStr); err != nil {
			return nil, fmt.Errorf("scanning pending workout: %w", err)
		}
		w.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parsing workout id: %w", err)
		}
		w.CompletedAt, err = time.Parse(time.RFC3339, completedsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		if exStr != "" {
			w.Exercises = strings.Split(exStr, ",")
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// MarkSynced records that a workout was accepted by the server.
func (s *StateDB) MarkSynced(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE logged_workouts SET synced = 1 WHERE id = ?`, id.String())
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}
