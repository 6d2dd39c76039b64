package progression

import (
	"math/rand"
	"testing"
	"time"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(DefaultCatalog(), rand.New(rand.NewSource(seed)))
}

// TestGenerateProgramThreePerWeekCoverage verifies that a 30-day window
// starting on a Monday schedules exactly the Mondays, Wednesdays, and
// Fridays it contains: 5 + 4 + 4 = 13 sessions.
func TestGenerateProgramThreePerWeekCoverage(t *testing.T) {
	g := testGenerator(1)
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) // a Monday

	p := g.GenerateProgram("u1", "general-fitness", 3, start, SkillBeginner)

	if len(p.Sessions) != 13 {
		t.Fatalf("sessions = %d, want 13", len(p.Sessions))
	}
	for _, s := range p.Sessions {
		switch s.Date.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
		default:
			t.Errorf("session %s scheduled on %s", s.ID, s.Date.Weekday())
		}
	}
}

// TestGenerateProgramWindow verifies the 30-day end date and that sessions
// stay inside the window in ascending order with unique calendar days.
func TestGenerateProgramWindow(t *testing.T) {
	g := testGenerator(7)
	start := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	p := g.GenerateProgram("u1", "endurance", 5, start, SkillIntermediate)

	wantEnd := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 30)
	if !p.EndDate.Equal(wantEnd) {
		t.Errorf("end date = %s, want %s", p.EndDate, wantEnd)
	}

	seen := map[string]bool{}
	for i, s := range p.Sessions {
		if s.Date.Before(p.StartDate) || !s.Date.Before(p.EndDate) {
			t.Errorf("session %s on %s outside window", s.ID, s.Date)
		}
		if i > 0 && !p.Sessions[i-1].Date.Before(s.Date) {
			t.Errorf("sessions out of order at index %d", i)
		}
		day := s.Date.Format("2006-01-02")
		if seen[day] {
			t.Errorf("two sessions on %s", day)
		}
		seen[day] = true
	}
}

// TestGenerateProgramFallbacks verifies that unknown goal keys and
// out-of-range frequencies silently substitute the documented defaults.
func TestGenerateProgramFallbacks(t *testing.T) {
	g := testGenerator(3)
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) // a Monday

	p := g.GenerateProgram("u1", "become-immortal", 0, start, SkillBeginner)

	if p.FitnessGoal != DefaultGoalKey {
		t.Errorf("goal = %q, want fallback %q", p.FitnessGoal, DefaultGoalKey)
	}
	if p.WorkoutsPerWeek != 3 {
		t.Errorf("workouts/week = %d, want fallback 3", p.WorkoutsPerWeek)
	}
	if len(p.Sessions) != 13 {
		t.Errorf("sessions = %d, want 13 under the 3/week policy", len(p.Sessions))
	}
}

// TestGenerateProgramGoalRestrictsTypes verifies session types come only
// from the goal profile's allowed set.
func TestGenerateProgramGoalRestrictsTypes(t *testing.T) {
	g := testGenerator(11)
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	p := g.GenerateProgram("u1", "muscle-gain", 4, start, SkillAdvanced)

	for _, s := range p.Sessions {
		if s.SessionType != SessionStrength && s.SessionType != SessionMixed {
			t.Errorf("session %s type %q not allowed by muscle-gain", s.ID, s.SessionType)
		}
	}
}

// TestGenerateProgramDeterministicWithSeed verifies identical inputs and
// seeds produce identical programs, the point of the injected rand source.
func TestGenerateProgramDeterministicWithSeed(t *testing.T) {
	start := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	a := testGenerator(42).GenerateProgram("u1", "weight-loss", 3, start, SkillIntermediate)
	b := testGenerator(42).GenerateProgram("u1", "weight-loss", 3, start, SkillIntermediate)

	if len(a.Sessions) != len(b.Sessions) {
		t.Fatalf("session counts differ: %d vs %d", len(a.Sessions), len(b.Sessions))
	}
	for i := range a.Sessions {
		if a.Sessions[i].SessionType != b.Sessions[i].SessionType {
			t.Errorf("session %d type differs: %q vs %q", i, a.Sessions[i].SessionType, b.Sessions[i].SessionType)
		}
		if a.Sessions[i].ID != b.Sessions[i].ID {
			t.Errorf("session %d id differs: %q vs %q", i, a.Sessions[i].ID, b.Sessions[i].ID)
		}
	}
}

// TestWorkoutForDate verifies exact-day lookup ignores time of day and
// returns nil for rest days.
func TestWorkoutForDate(t *testing.T) {
	g := testGenerator(5)
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) // a Monday
	p := g.GenerateProgram("u1", "general-fitness", 3, start, SkillBeginner)

	// Monday the 1st is a workout day under the 3/week policy.
	got := WorkoutForDate(p, time.Date(2025, time.September, 1, 18, 45, 0, 0, time.UTC))
	if got == nil {
		t.Fatal("expected a session on Monday Sep 1")
	}
	if got.ID != "session-001" {
		t.Errorf("session id = %q, want session-001", got.ID)
	}

	// Tuesday the 2nd is a rest day.
	if s := WorkoutForDate(p, time.Date(2025, time.September, 2, 9, 0, 0, 0, time.UTC)); s != nil {
		t.Errorf("expected nil on a rest day, got %q", s.ID)
	}
}

// TestWeeklyWorkouts verifies the inclusive 7-day window returns the three
// sessions of a full week under the 3/week policy.
func TestWeeklyWorkouts(t *testing.T) {
	g := testGenerator(5)
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) // a Monday
	p := g.GenerateProgram("u1", "general-fitness", 3, start, SkillBeginner)

	week := WeeklyWorkouts(p, start)
	if len(week) != 3 {
		t.Fatalf("week sessions = %d, want 3", len(week))
	}
	wantDays := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	for i, s := range week {
		if s.Date.Weekday() != wantDays[i] {
			t.Errorf("week session %d on %s, want %s", i, s.Date.Weekday(), wantDays[i])
		}
	}
}

// TestDetermineUserLevel verifies the OR-gated bands in their fixed order,
// including the case where a low workout count pins beginner despite high
// experience.
func TestDetermineUserLevel(t *testing.T) {
	cases := []struct {
		workouts   int
		experience float64
		want       SkillLevel
	}{
		{0, 0, SkillBeginner},
		{9, 600, SkillBeginner}, // OR-gate: workout count wins
		{50, 99, SkillBeginner}, // OR-gate: experience wins
		{10, 100, SkillIntermediate},
		{49, 10000, SkillIntermediate},
		{200, 499, SkillIntermediate},
		{10, 500, SkillIntermediate},
		{50, 500, SkillAdvanced},
		{1000, 100000, SkillAdvanced},
	}
	for _, tc := range cases {
		if got := DetermineUserLevel(tc.workouts, tc.experience); got != tc.want {
			t.Errorf("DetermineUserLevel(%d, %.0f) = %q, want %q", tc.workouts, tc.experience, got, tc.want)
		}
	}
}
