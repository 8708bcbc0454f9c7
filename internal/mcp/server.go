package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LifeSync", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LifeSync training data server. Query logged workouts, the per-muscle training heatmap, ranked training insights, and the exercise target catalog."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetMuscleHeatmap, Handler: h.getMuscleHeatmap},
		server.ServerTool{Tool: toolGetTrainingInsights, Handler: h.getTrainingInsights},
		server.ServerTool{Tool: toolLookupExercise, Handler: h.lookupExercise},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resMuscleHeatmap, Handler: h.muscleHeatmapResource},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkoutsResource},
		server.ServerResource{Resource: resTrainingInsights, Handler: h.trainingInsightsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resMuscleHeatmap = mcp.NewResource(
	"lifesync://muscle_heatmap",
	"Muscle Heatmap",
	mcp.WithResourceDescription("Per-muscle-region training intensity over the last 30 days, normalized to [0,1]"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"lifesync://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)

var resTrainingInsights = mcp.NewResource(
	"lifesync://training_insights",
	"Training Insights",
	mcp.WithResourceDescription("Up to four ranked insight cards derived from recent training history"),
	mcp.WithMIMEType("application/json"),
)
