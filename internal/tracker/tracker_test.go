package tracker

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestStateDBRoundTrip verifies logging, pending query, and sync marking
// against a real SQLite file.
func TestStateDBRoundTrip(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	completedAt := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	id, err := state.Log("u1", []string{"push-ups", "squats"}, completedAt)
	if err != nil {
		t.Fatal(err)
	}

	pending, err := state.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	w := pending[0]
	if w.ID != id {
		t.Errorf("id = %v, want %v", w.ID, id)
	}
	if w.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", w.UserID)
	}
	if len(w.Exercises) != 2 || w.Exercises[0] != "push-ups" {
		t.Errorf("exercises = %v, want [push-ups squats]", w.Exercises)
	}
	if !w.CompletedAt.Equal(completedAt) {
		t.Errorf("completed_at = %v, want %v", w.CompletedAt, completedAt)
	}

	if err := state.MarkSynced(id); err != nil {
		t.Fatal(err)
	}
	pending, err = state.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after sync = %d, want 0", len(pending))
	}
}

// TestStateDBPendingOrder verifies pending workouts come back oldest first.
func TestStateDBPendingOrder(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	later := time.Date(2025, 9, 2, 8, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	if _, err := state.Log("u1", []string{"plank"}, later); err != nil {
		t.Fatal(err)
	}
	if _, err := state.Log("u1", []string{"squats"}, earlier); err != nil {
		t.Fatal(err)
	}

	pending, err := state.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if !pending[0].CompletedAt.Equal(earlier) {
		t.Errorf("first pending = %v, want oldest %v", pending[0].CompletedAt, earlier)
	}
}

// TestSendCompletion verifies the client hits the complete endpoint with the
// API key and the tracker source.
func TestSendCompletion(t *testing.T) {
	var gotPath, gotKey string
	var gotPayload completePayload

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")
	w := LoggedWorkout{
		UserID:      "u1",
		Exercises:   []string{"push-ups"},
		CompletedAt: time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := client.SendCompletion(w); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/api/v1/avatars/u1/workout/complete" {
		t.Errorf("path = %q, want /api/v1/avatars/u1/workout/complete", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key = %q, want test-key", gotKey)
	}
	if gotPayload.Source != "tracker" {
		t.Errorf("source = %q, want tracker", gotPayload.Source)
	}
}

// TestSyncMarksSynced verifies a successful sync marks rows and reports stats.
func TestSyncMarksSynced(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	if _, err := state.Log("u1", []string{"squats"}, time.Now().UTC().Truncate(time.Second)); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	tr := New(NewClient(ts.URL, "k"), state, false, slog.Default())
	stats, err := tr.Sync()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Pending != 1 || stats.Synced != 1 || stats.Errored != 0 {
		t.Errorf("stats = %+v, want 1 pending, 1 synced", stats)
	}

	pending, err := state.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after sync = %d, want 0", len(pending))
	}
}

// TestSyncDryRun verifies dry-run leaves workouts pending.
func TestSyncDryRun(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	if _, err := state.Log("u1", []string{"squats"}, time.Now().UTC().Truncate(time.Second)); err != nil {
		t.Fatal(err)
	}

	tr := New(NewClient("http://unused.invalid", "k"), state, true, slog.Default())
	stats, err := tr.Sync()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Synced != 0 {
		t.Errorf("synced = %d, want 0 in dry-run", stats.Synced)
	}

	pending, err := state.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %d, want 1 (dry-run keeps rows)", len(pending))
	}
}
