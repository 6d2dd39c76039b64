package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meltforce/socialite/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestGetAvatarRemote verifies the HTTP client hits the avatar endpoint and
// parses the response.
func TestGetAvatarRemote(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/avatars/u1": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.Avatar{UserID: "u1", Name: "Chloe", Level: 2, Fame: 250})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	avatar, err := client.GetAvatar(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if avatar.Name != "Chloe" {
		t.Errorf("name = %q, want Chloe", avatar.Name)
	}
	if avatar.Fame != 250 {
		t.Errorf("fame = %f, want 250", avatar.Fame)
	}
}

// TestLeaderboardRemote verifies the limit query param and array decoding.
func TestLeaderboardRemote(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/leaderboard": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, []models.LeaderboardEntry{
				{Rank: 1, UserID: "u1", Name: "Chloe", Fame: 5200},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	entries, err := client.Leaderboard(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Rank != 1 {
		t.Errorf("rank = %d, want 1", entries[0].Rank)
	}
}

// TestQueryWorkoutLogRemote verifies time range params are sent as RFC3339.
func TestQueryWorkoutLogRemote(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/avatars/u1/history": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("start"); got != start.Format(time.RFC3339) {
				t.Errorf("start=%q, want %q", got, start.Format(time.RFC3339))
			}
			writeTestJSON(t, w, []models.WorkoutLogRow{
				{UserID: "u1", CreditsEarned: 40, FameEarned: 4},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	rows, err := client.QueryWorkoutLog(context.Background(), "u1", start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].CreditsEarned != 40 {
		t.Errorf("rows = %+v, want one row with 40 credits", rows)
	}
}

// TestRemoteErrorStatus verifies non-200 responses surface as errors.
func TestRemoteErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/avatars/missing": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"avatar not found"}`, http.StatusNotFound)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	if _, err := client.GetAvatar(context.Background(), "missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}
