package mcp

import (
	"context"
	"strconv"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/catalog"
	"github.com/HarshS3/LifeSync-sub000/internal/trainsignal"
	"github.com/mark3labs/mcp-go/mcp"
)

// insightLookback mirrors the REST analytics handler: heuristics reach back
// 28 days, streak detection wants the full recent run.
const insightLookback = 365

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

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query logged workouts with optional name filter. Returns sessions with their exercises, sets, reps, and weights."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("name", mcp.Description("Filter by workout name (partial match, e.g. 'push day')")),
)

var toolGetMuscleHeatmap = mcp.NewTool("get_muscle_heatmap",
	mcp.WithDescription("Per-muscle-region training intensity over a recent window. Returns raw and normalized scores for 11 anatomical regions, suitable for coloring a body figure."),
	mcp.WithString("days", mcp.Description("Window length in days. Defaults to 30.")),
)

var toolGetTrainingInsights = mcp.NewTool("get_training_insights",
	mcp.WithDescription("Up to four ranked insight cards: consistency, streaks, volume trends, personal bests, progression, plateaus, and muscle target balance."),
)

var toolLookupExercise = mcp.NewTool("lookup_exercise",
	mcp.WithDescription("Look up an exercise in the target catalog. Returns the normalized name and primary/secondary muscle targets if known."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name (e.g. 'Bench Press', 'incline db press')")),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts, err := h.ds.QueryWorkouts(ctx, start, end, req.GetString("name", ""))
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMuscleHeatmap(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := trainsignal.DefaultHeatmapDays
	if raw := req.GetString("days", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return mcp.NewToolResultError("days must be a positive integer"), nil
		}
		days = parsed
	}

	now := time.Now()
	workouts, err := h.ds.QueryWorkouts(ctx, now.AddDate(0, 0, -days), now, "")
	if err != nil {
		h.log.Error("mcp get_muscle_heatmap", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(trainsignal.ComputeMuscleHeatmap(workouts, days, now))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingInsights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	workouts, err := h.ds.QueryWorkouts(ctx, now.AddDate(0, 0, -insightLookback), now, "")
	if err != nil {
		h.log.Error("mcp get_training_insights", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(trainsignal.ComputeTrainingInsights(workouts, now))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) lookupExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	response := map[string]any{
		"query":      name,
		"normalized": catalog.Normalize(name),
		"found":      false,
	}
	if mapping, ok := catalog.Lookup(name); ok {
		response["found"] = true
		response["targets"] = mapping
	}

	result, err := mcp.NewToolResultJSON(response)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
