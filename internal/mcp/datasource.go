package mcp

import (
	"context"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/models"
	"github.com/HarshS3/LifeSync-sub000/internal/storage"
)

// DataSource abstracts the workout store for MCP tools. Both *storage.DB
// (local mode) and HTTPClient (remote via REST API) satisfy this interface;
// the analysis itself always runs in-process on the fetched records.
type DataSource interface {
	QueryWorkouts(ctx context.Context, start, end time.Time, nameFilter string) ([]models.WorkoutRecord, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
