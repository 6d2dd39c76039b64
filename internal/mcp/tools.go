package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/socialite/internal/progression"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetAvatar = mcp.NewTool("get_avatar",
	mcp.WithDescription("Get an avatar's full state: level, fame, experience, needs, luxury services, current fame tier, and progress toward the next tier."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID owning the avatar")),
)

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate a workout scaled to an avatar's current difficulty tier and fame multipliers. Returns exercises with sets/reps/duration and the credit, fame, and experience rewards for completing it."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID owning the avatar")),
	mcp.WithString("exercises", mcp.Description("Comma-separated exercise names (e.g. 'push-ups,squats'). Defaults to the starter set.")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get a user's active 30-day training program, optionally narrowed to a single date or a 7-day window."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	mcp.WithString("date", mcp.Description("Return only the session for this date (YYYY-MM-DD)")),
	mcp.WithString("week_start", mcp.Description("Return only sessions in the 7 days from this date (YYYY-MM-DD)")),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Query a user's completed workouts with earned rewards, plus aggregate stats."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetLeaderboard = mcp.NewTool("get_leaderboard",
	mcp.WithDescription("Get the fame leaderboard: top avatars ranked by fame."),
	mcp.WithNumber("limit", mcp.Description("Number of entries (1-100). Defaults to 10.")),
)

var toolGetTierCatalog = mcp.NewTool("get_tier_catalog",
	mcp.WithDescription("List all fame tiers and difficulty tiers: thresholds, multipliers, decay rates, and credit rewards."),
)

// --- Tool handlers ---

func (h *handlers) getAvatar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}

	avatar, err := h.ds.GetAvatar(ctx, userID)
	if err != nil {
		h.log.Error("mcp get_avatar", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	tier := h.catalog.CurrentFameTier(avatar.Fame)
	view := map[string]any{
		"avatar":          avatar,
		"tier":            tier.Name,
		"tier_emoji":      tier.Emoji,
		"progress":        h.catalog.Progress(avatar.Fame),
		"difficulty_tier": h.catalog.CurrentDifficultyTier(avatar.Level, avatar.Fame),
	}
	if next := h.catalog.NextFameTier(avatar.Fame); next != nil {
		view["next_tier"] = next.Name
		view["next_tier_fame"] = next.FameRequired
	}

	result, err := mcp.NewToolResultJSON(view)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}

	avatar, err := h.ds.GetAvatar(ctx, userID)
	if err != nil {
		h.log.Error("mcp generate_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var exercises []string
	if raw := req.GetString("exercises", ""); raw != "" {
		exercises = strings.Split(raw, ",")
	}

	workout := h.catalog.SynthesizeWorkout(avatar.Level, avatar.Fame, exercises)

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}

	row, err := h.ds.GetProgram(ctx, userID)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var payload any = row
	if dateStr := req.GetString("date", ""); dateStr != "" {
		date, err := parseFlexTime(dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
		if session := progression.WorkoutForDate(row.Program(), date); session != nil {
			payload = session
		} else {
			payload = map[string]any{"date": date.Format("2006-01-02"), "rest_day": true}
		}
	} else if weekStr := req.GetString("week_start", ""); weekStr != "" {
		start, err := parseFlexTime(weekStr)
		if err != nil {
			return mcp.NewToolResultError("invalid week_start format: " + err.Error()), nil
		}
		payload = progression.WeeklyWorkouts(row.Program(), start)
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	rows, err := h.ds.QueryWorkoutLog(ctx, userID, start, end)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	stats, err := h.ds.GetUserStats(ctx, userID)
	if err != nil {
		h.log.Warn("mcp get_workout_history: stats failed", "error", err)
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"workouts": rows,
		"stats":    stats,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLeaderboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)
	if limit < 1 || limit > 100 {
		return mcp.NewToolResultError("limit must be 1-100"), nil
	}

	entries, err := h.ds.Leaderboard(ctx, limit)
	if err != nil {
		h.log.Error("mcp get_leaderboard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTierCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(map[string]any{
		"fame_tiers":       h.catalog.FameTiers,
		"difficulty_tiers": h.catalog.DifficultyTiers,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
