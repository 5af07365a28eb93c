package mcp

import (
	"context"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 90 days.
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
		start = end.AddDate(0, 0, -90)
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

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("Query workout sessions with their routine name, set count, PR count, and intensity classification."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Retrieve all past sessions containing a given exercise, oldest first, with full per-set data (weight, reps, completion)."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id from the catalog (e.g. 'bench-press')")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records for an exercise: heaviest weight, most reps, and highest single-set volume, each with the session it was set in."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id from the catalog")),
)

var toolEstimateOneRepMax = mcp.NewTool("estimate_1rm",
	mcp.WithDescription("Estimate a one-rep max from a weight and rep count using the Lombardi formula. For bodyweight exercises pass body_weight_kg so it is counted as load."),
	mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Weight lifted in kilograms")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("body_weight_kg", mcp.Description("Body weight in kilograms, for bodyweight exercises")),
)

var toolSuggestWarmup = mcp.NewTool("suggest_warmup",
	mcp.WithDescription("Suggest a warmup ladder of ascending weights below a working weight. Weights start at the bar and round to plate increments."),
	mcp.WithNumber("working_weight_kg", mcp.Required(), mcp.Description("Target working weight in kilograms")),
	mcp.WithNumber("bar_weight_kg", mcp.Description("Bar weight in kilograms. Defaults to the exercise's catalog bar weight.")),
	mcp.WithString("exercise_id", mcp.Description("Exercise id, used to look up the default bar weight")),
)

var toolGetVolumeSummary = mcp.NewTool("get_volume_summary",
	mcp.WithDescription("Aggregated training volume (completed working sets, reps, tonnage) per period."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("bucket", mcp.Description("Aggregation period. Defaults to '1 month'."), mcp.Enum("1 week", "1 month")),
)

var toolClassifySession = mcp.NewTool("classify_session",
	mcp.WithDescription("Classify a stored session's intensity (heavy or light) from its equipment categories, loads, and failure sets."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
)

// --- Tool handlers ---

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	sessions, err := h.ds.QuerySessions(ctx, start, end, uid)
	if err != nil {
		h.log.Error("mcp get_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	history, err := h.ds.ExerciseHistory(ctx, exerciseID, uid)
	if err != nil {
		h.log.Error("mcp get_exercise_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	history, err := h.ds.ExerciseHistory(ctx, exerciseID, uid)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.ComputePersonalRecords(history, exerciseID))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) estimateOneRepMax(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight_kg")
	if err != nil {
		return mcp.NewToolResultError("weight_kg parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	if weight < 0 || reps < 0 {
		return mcp.NewToolResultError("weight_kg and reps must be non-negative"), nil
	}
	bodyWeight := req.GetFloat("body_weight_kg", 0)

	result, err := mcp.NewToolResultJSON(map[string]float64{
		"one_rep_max_kg": analytics.EstimateOneRepMax(weight, reps, bodyWeight),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) suggestWarmup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	working, err := req.RequireFloat("working_weight_kg")
	if err != nil {
		return mcp.NewToolResultError("working_weight_kg parameter is required"), nil
	}
	if working < 0 {
		return mcp.NewToolResultError("working_weight_kg must be non-negative"), nil
	}

	bar := req.GetFloat("bar_weight_kg", 0)
	if bar == 0 {
		if def, ok := h.cat.Lookup(req.GetString("exercise_id", "")); ok {
			bar = def.DefaultBarWeightKg
		}
	}

	weights := analytics.SuggestWarmupLadder(working, bar)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"weights_kg": weights,
		"sets":       analytics.WarmupSets(weights),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolumeSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	bucket := req.GetString("bucket", "1 month")
	uid := UserIDFromContext(ctx)

	periods, err := h.ds.GetVolumeSummary(ctx, start, end, bucket, uid)
	if err != nil {
		h.log.Error("mcp get_volume_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(periods)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) classifySession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid session_id: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	session, err := h.ds.GetSession(ctx, id, uid)
	if err != nil {
		h.log.Error("mcp classify_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if session == nil {
		return mcp.NewToolResultError("session not found"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"session_id": session.ID,
		"intensity":  analytics.ClassifyIntensity(*session, h.cat),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
