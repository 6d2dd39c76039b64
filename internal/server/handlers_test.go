package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/progression"
)

func testServer() *Server {
	return &Server{catalog: progression.DefaultCatalog(), now: time.Now}
}

// TestHandleTiers verifies the tier catalog endpoint returns both ladders.
func TestHandleTiers(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tiers", nil)
	rec := httptest.NewRecorder()

	s.handleTiers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		FameTiers       []progression.FameTier       `json:"fame_tiers"`
		DifficultyTiers []progression.DifficultyTier `json:"difficulty_tiers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.FameTiers) != 6 {
		t.Errorf("fame tiers = %d, want 6", len(resp.FameTiers))
	}
	if len(resp.DifficultyTiers) != 6 {
		t.Errorf("difficulty tiers = %d, want 6", len(resp.DifficultyTiers))
	}
	if resp.FameTiers[0].Name != "Micro Influencer" {
		t.Errorf("first fame tier = %q, want %q", resp.FameTiers[0].Name, "Micro Influencer")
	}
}

// TestAvatarViewTierFields verifies the response view recomputes tier fields
// from stored fame and level rather than reading any persisted tier.
func TestAvatarViewTierFields(t *testing.T) {
	s := testServer()
	a := models.NewAvatar("u1", "Chloe", time.Now())
	a.Fame = 250
	a.Level = 2

	view := s.avatarView(a)

	if view.Tier != "Rising Star" {
		t.Errorf("tier = %q, want %q", view.Tier, "Rising Star")
	}
	if view.NextTier == nil || *view.NextTier != "Trendsetter" {
		t.Errorf("next tier = %v, want Trendsetter", view.NextTier)
	}
	if view.Progress.Percent <= 0 || view.Progress.Percent >= 100 {
		t.Errorf("progress percent = %f, want within (0,100)", view.Progress.Percent)
	}
	if view.DifficultyTier.Level != 2 {
		t.Errorf("difficulty tier = %d, want 2", view.DifficultyTier.Level)
	}
}

// TestAvatarViewNeedsFloor verifies that displayed needs never drop below
// the tier's minimum floor, even when the stored value has decayed to zero.
func TestAvatarViewNeedsFloor(t *testing.T) {
	s := testServer()
	a := models.NewAvatar("u1", "Chloe", time.Now())
	a.Fame = 1200 // Socialite
	a.Level = 4
	a.Needs = progression.Needs{Hunger: 0, Hygiene: 0, Happiness: 50}

	view := s.avatarView(a)

	floor := view.NeedsFloor
	if floor <= 0 {
		t.Fatalf("needs floor = %f, want > 0 for Socialite tier", floor)
	}
	if view.Needs.Hunger != floor {
		t.Errorf("displayed hunger = %f, want floor %f", view.Needs.Hunger, floor)
	}
	if view.Needs.Happiness != 50 {
		t.Errorf("displayed happiness = %f, want 50 (above floor)", view.Needs.Happiness)
	}
}

// TestParseDateParamFormats verifies both accepted date formats and the
// fallback for a missing parameter.
func TestParseDateParamFormats(t *testing.T) {
	fallback := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		url     string
		want    time.Time
		wantErr bool
	}{
		{"/x?date=2025-09-15", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), false},
		{"/x?date=2025-09-15T10:30:00Z", time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC), false},
		{"/x", fallback, false},
		{"/x?date=notadate", time.Time{}, true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.url, nil)
		got, err := parseDateParam(req, "date", fallback)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDateParam(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDateParam(%q): unexpected error: %v", tt.url, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDateParam(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

// TestWriteJSON verifies the content type and status code of the JSON helper.
func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
}
