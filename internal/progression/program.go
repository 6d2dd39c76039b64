package progression

import (
	"fmt"
	"math/rand"
	"time"
)

// SessionType categorizes a scheduled workout session.
type SessionType string

const (
	SessionStrength    SessionType = "strength"
	SessionCardio      SessionType = "cardio"
	SessionFlexibility SessionType = "flexibility"
	SessionMixed       SessionType = "mixed"
)

// SkillLevel buckets a user's experience for template selection.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// DefaultGoalKey is the goal profile substituted for unknown keys.
const DefaultGoalKey = "general-fitness"

// defaultWorkoutsPerWeek is the weekday policy substituted when the
// requested frequency is outside 1..7.
const defaultWorkoutsPerWeek = 3

// programDays is the calendar span of a generated program.
const programDays = 30

// GoalProfile restricts which session types a fitness goal schedules.
type GoalProfile struct {
	Key          string        `json:"key"`
	Label        string        `json:"label"`
	SessionTypes []SessionType `json:"session_types"`
}

// SessionKey indexes the session template library.
type SessionKey struct {
	Type  SessionType
	Skill SkillLevel
}

// SessionTemplate is catalog content for one (type, skill) combination.
type SessionTemplate struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DurationMinutes   int      `json:"duration_minutes"`
	Difficulty        int      `json:"difficulty"`
	ExerciseNames     []string `json:"exercise_names"`
	EstimatedCalories int      `json:"estimated_calories"`
	FocusTags         []string `json:"focus_tags"`
}

// WorkoutSession is one scheduled entry in a program.
type WorkoutSession struct {
	ID                string      `json:"id"`
	Date              time.Time   `json:"date"`
	SessionType       SessionType `json:"session_type"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	DurationMinutes   int         `json:"duration_minutes"`
	Difficulty        int         `json:"difficulty"`
	ExerciseNames     []string    `json:"exercise_names"`
	EstimatedCalories int         `json:"estimated_calories"`
	FocusTags         []string    `json:"focus_tags"`
}

// WorkoutProgram is a 30-day calendar of sessions, ascending by date, at
// most one session per calendar day.
type WorkoutProgram struct {
	UserID          string           `json:"user_id"`
	FitnessGoal     string           `json:"fitness_goal"`
	WorkoutsPerWeek int              `json:"workouts_per_week"`
	Sessions        []WorkoutSession `json:"sessions"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
}

// Generator produces workout programs from the catalog. The random source
// drives session-type selection; inject a seeded one for reproducible
// output.
type Generator struct {
	catalog *Catalog
	rng     *rand.Rand
}

// NewGenerator creates a Generator over the given catalog and random source.
func NewGenerator(catalog *Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: catalog, rng: rng}
}

// GenerateProgram builds a 30-day program starting at startDate. Unknown
// goal keys fall back to general-fitness and out-of-range frequencies to
// the 3-per-week policy; neither is an error.
func (g *Generator) GenerateProgram(userID, goalKey string, workoutsPerWeek int, startDate time.Time, skill SkillLevel) WorkoutProgram {
	profile, ok := g.catalog.GoalProfiles[goalKey]
	if !ok {
		profile = g.catalog.GoalProfiles[DefaultGoalKey]
	}

	if workoutsPerWeek < 1 || workoutsPerWeek > 7 {
		workoutsPerWeek = defaultWorkoutsPerWeek
	}
	days := g.catalog.WeekdayPolicy[workoutsPerWeek]
	workoutDays := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		workoutDays[time.Weekday(d)] = true
	}

	start := truncateToDay(startDate)
	program := WorkoutProgram{
		UserID:          userID,
		FitnessGoal:     profile.Key,
		WorkoutsPerWeek: workoutsPerWeek,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, programDays),
	}

	seq := 0
	for i := 0; i < programDays; i++ {
		day := start.AddDate(0, 0, i)
		if !workoutDays[day.Weekday()] {
			continue
		}

		sessionType := profile.SessionTypes[g.rng.Intn(len(profile.SessionTypes))]
		tmpl := g.catalog.SessionLibrary[SessionKey{Type: sessionType, Skill: skill}]

		seq++
		program.Sessions = append(program.Sessions, WorkoutSession{
			ID:                fmt.Sprintf("session-%03d", seq),
			Date:              day,
			SessionType:       sessionType,
			Title:             tmpl.Title,
			Description:       tmpl.Description,
			DurationMinutes:   tmpl.DurationMinutes,
			Difficulty:        tmpl.Difficulty,
			ExerciseNames:     tmpl.ExerciseNames,
			EstimatedCalories: tmpl.EstimatedCalories,
			FocusTags:         tmpl.FocusTags,
		})
	}

	return program
}

// WorkoutForDate returns the session scheduled on the given calendar day, or
// nil. Time of day is ignored.
func WorkoutForDate(program WorkoutProgram, date time.Time) *WorkoutSession {
	y, m, d := date.Date()
	for i := range program.Sessions {
		sy, sm, sd := program.Sessions[i].Date.Date()
		if sy == y && sm == m && sd == d {
			return &program.Sessions[i]
		}
	}
	return nil
}

// WeeklyWorkouts returns all sessions within [weekStart, weekStart+6 days],
// inclusive, in program order.
func WeeklyWorkouts(program WorkoutProgram, weekStart time.Time) []WorkoutSession {
	start := truncateToDay(weekStart)
	end := start.AddDate(0, 0, 7)

	var out []WorkoutSession
	for _, s := range program.Sessions {
		day := truncateToDay(s.Date)
		if !day.Before(start) && day.Before(end) {
			out = append(out, s)
		}
	}
	return out
}

// DetermineUserLevel buckets a user by workout history. Bands are OR-gated
// and checked in order; a low workout count keeps a user at beginner even
// with high experience.
func DetermineUserLevel(totalWorkouts int, experience float64) SkillLevel {
	if totalWorkouts < 10 || experience < 100 {
		return SkillBeginner
	}
	if totalWorkouts < 50 || experience < 500 {
		return SkillIntermediate
	}
	return SkillAdvanced
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
