package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/progression"
	"github.com/meltforce/socialite/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Pool.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createAvatarRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

func (s *Server) handleCreateAvatar(w http.ResponseWriter, r *http.Request) {
	var req createAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id and name are required"})
		return
	}

	avatar := models.NewAvatar(req.UserID, req.Name, s.now().UTC())
	inserted, err := s.db.CreateAvatar(r.Context(), avatar)
	if err != nil {
		s.log.Error("create avatar", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !inserted {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "avatar already exists for user"})
		return
	}

	writeJSON(w, http.StatusCreated, s.avatarView(avatar))
}

// handleGetAvatar returns an avatar with decay applied lazily: needs and
// luxury decay for the hours elapsed since the last update, and the decayed
// state is persisted before the response is built.
func (s *Server) handleGetAvatar(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	avatar, err := s.db.GetAvatar(r.Context(), userID)
	if err != nil {
		writeAvatarError(w, err)
		return
	}

	now := s.now().UTC()
	hours := now.Sub(avatar.UpdatedAt).Hours()
	if hours > 0 {
		upd, err := s.catalog.SimulateDecay(avatar.DecayState(), hours)
		if err != nil {
			s.log.Error("decay simulation", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if !upd.Empty() {
			if err := s.db.ApplyDecayUpdate(r.Context(), userID, upd, now); err != nil {
				s.log.Error("applying decay", "user_id", userID, "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			if upd.Needs != nil {
				avatar.Needs = *upd.Needs
			}
			if upd.Luxury != nil {
				avatar.Luxury = *upd.Luxury
			}
			if upd.Fame != nil {
				avatar.Fame = *upd.Fame
			}
			avatar.UpdatedAt = now
		}
	}

	writeJSON(w, http.StatusOK, s.avatarView(*avatar))
}

func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	avatar, err := s.db.GetAvatar(r.Context(), userID)
	if err != nil {
		writeAvatarError(w, err)
		return
	}

	var exercises []string
	if raw := r.URL.Query().Get("exercises"); raw != "" {
		exercises = strings.Split(raw, ",")
	}

	workout := s.catalog.SynthesizeWorkout(avatar.Level, avatar.Fame, exercises)
	writeJSON(w, http.StatusOK, workout)
}

type completeWorkoutRequest struct {
	Exercises   []string   `json:"exercises,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Source      string     `json:"source,omitempty"`
}

// handleCompleteWorkout records a finished workout: rewards are computed from
// the avatar's current tier, the avatar row is updated (including a level-up
// when fame crossed the next threshold), and a log row is written.
func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req completeWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	avatar, err := s.db.GetAvatar(r.Context(), userID)
	if err != nil {
		writeAvatarError(w, err)
		return
	}

	workout := s.catalog.SynthesizeWorkout(avatar.Level, avatar.Fame, req.Exercises)
	if len(workout.Exercises) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no known exercises in request"})
		return
	}

	completedAt := s.now().UTC()
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt.UTC()
	}
	source := req.Source
	if source == "" {
		source = models.WorkoutSourceAPI
	}

	upd := models.CompletionUpdate{
		FameDelta:       float64(workout.FameReward),
		ExperienceDelta: float64(workout.ExperienceReward),
		CreditsDelta:    float64(workout.TotalCreditReward),
	}
	newFame := avatar.Fame + upd.FameDelta
	if next := s.catalog.CheckLevelUp(avatar.Level, newFame); next != nil {
		upd.NewLevel = &next.Level
	}

	if err := s.db.ApplyCompletion(r.Context(), userID, upd, completedAt); err != nil {
		s.log.Error("applying completion", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	logRow := models.LogFromWorkout(userID, workout, completedAt, source)
	if _, err := s.db.InsertWorkoutLog(r.Context(), logRow); err != nil {
		s.log.Error("logging workout", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp := map[string]any{
		"workout": workout,
		"rewards": map[string]any{
			"credits":    workout.TotalCreditReward,
			"fame":       workout.FameReward,
			"experience": workout.ExperienceReward,
		},
		"fame": newFame,
	}
	if upd.NewLevel != nil {
		resp["leveled_up"] = true
		resp["new_level"] = *upd.NewLevel
		resp["new_tier"] = s.catalog.CurrentFameTier(newFame).Name
	}
	writeJSON(w, http.StatusOK, resp)
}

type createProgramRequest struct {
	UserID          string     `json:"user_id"`
	FitnessGoal     string     `json:"fitness_goal,omitempty"`
	WorkoutsPerWeek int        `json:"workouts_per_week,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req createProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
		return
	}

	avatar, err := s.db.GetAvatar(r.Context(), req.UserID)
	if err != nil {
		writeAvatarError(w, err)
		return
	}

	start := s.now().UTC()
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	skill := progression.DetermineUserLevel(avatar.TotalWorkouts, avatar.Experience)

	program := s.gen.GenerateProgram(req.UserID, req.FitnessGoal, req.WorkoutsPerWeek, start, skill)

	row := models.ProgramRow{
		UserID:          program.UserID,
		FitnessGoal:     program.FitnessGoal,
		WorkoutsPerWeek: program.WorkoutsPerWeek,
		SkillLevel:      skill,
		StartDate:       program.StartDate,
		EndDate:         program.EndDate,
		Sessions:        program.Sessions,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.db.UpsertProgram(r.Context(), row); err != nil {
		s.log.Error("upserting program", "user_id", req.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	row, err := s.db.GetProgram(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no program for user"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleProgramDay(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date, err := parseDateParam(r, "date", s.now().UTC())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	row, err := s.db.GetProgram(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no program for user"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	session := progression.WorkoutForDate(row.Program(), date)
	if session == nil {
		writeJSON(w, http.StatusOK, map[string]any{"date": date.Format("2006-01-02"), "rest_day": true})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleProgramWeek(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	start, err := parseDateParam(r, "start", s.now().UTC())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	row, err := s.db.GetProgram(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no program for user"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	sessions := progression.WeeklyWorkouts(row.Program(), start)
	writeJSON(w, http.StatusOK, map[string]any{
		"week_start": start.Format("2006-01-02"),
		"sessions":   sessions,
	})
}

func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"fame_tiers":       s.catalog.FameTiers,
		"difficulty_tiers": s.catalog.DifficultyTiers,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be 1-100"})
			return
		}
		limit = n
	}

	entries, err := s.db.Leaderboard(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleWorkoutHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	now := s.now().UTC()
	start, err := parseDateParam(r, "start", now.AddDate(0, 0, -30))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	end, err := parseDateParam(r, "end", now)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows, err := s.db.QueryWorkoutLog(r.Context(), userID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []models.WorkoutLogRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	stats, err := s.db.GetUserStats(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// avatarView is the API shape of an avatar: stored state plus the tier
// fields recomputed from fame and level.
type avatarView struct {
	models.Avatar
	Tier           string                     `json:"tier"`
	NextTier       *string                    `json:"next_tier,omitempty"`
	Progress       progression.LevelProgress  `json:"progress"`
	DifficultyTier progression.DifficultyTier `json:"difficulty_tier"`
	NeedsFloor     float64                    `json:"needs_floor"`
}

func (s *Server) avatarView(a models.Avatar) avatarView {
	tier := s.catalog.CurrentFameTier(a.Fame)
	view := avatarView{
		Avatar:         a,
		Tier:           tier.Name,
		Progress:       s.catalog.Progress(a.Fame),
		DifficultyTier: s.catalog.CurrentDifficultyTier(a.Level, a.Fame),
		NeedsFloor:     tier.Decay.MinimumFloor,
	}
	if next := s.catalog.NextFameTier(a.Fame); next != nil {
		view.NextTier = &next.Name
	}
	// Needs never display below the tier floor even though zero is stored.
	view.Avatar.Needs.Hunger = math.Max(view.Avatar.Needs.Hunger, view.NeedsFloor)
	view.Avatar.Needs.Hygiene = math.Max(view.Avatar.Needs.Hygiene, view.NeedsFloor)
	view.Avatar.Needs.Happiness = math.Max(view.Avatar.Needs.Happiness, view.NeedsFloor)
	return view
}

func writeAvatarError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "avatar not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseDateParam reads a YYYY-MM-DD (or RFC3339) query parameter, defaulting
// to fallback when absent.
func parseDateParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New(name + " must be YYYY-MM-DD or RFC3339")
	}
	return t, nil
}
