package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/trainsignal"
	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) muscleHeatmapResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	now := time.Now()
	workouts, err := h.ds.QueryWorkouts(ctx, now.AddDate(0, 0, -trainsignal.DefaultHeatmapDays), now, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, trainsignal.ComputeMuscleHeatmap(workouts, trainsignal.DefaultHeatmapDays, now))
}

func (h *handlers) recentWorkoutsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	end := time.Now()
	workouts, err := h.ds.QueryWorkouts(ctx, end.AddDate(0, 0, -14), end, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, workouts)
}

func (h *handlers) trainingInsightsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	now := time.Now()
	workouts, err := h.ds.QueryWorkouts(ctx, now.AddDate(0, 0, -insightLookback), now, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, trainsignal.ComputeTrainingInsights(workouts, now))
}
