package storage

import (
	"testing"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/models"
	"github.com/google/uuid"
)

// TestWorkoutIDStable verifies ID derivation: explicit UUIDs pass through,
// and records without one hash deterministically so re-ingest dedupes.
func TestWorkoutIDStable(t *testing.T) {
	explicit := uuid.New()
	rec := models.WorkoutRecord{ID: explicit.String()}
	if got := WorkoutID(rec); got != explicit {
		t.Errorf("WorkoutID with explicit UUID = %s, want %s", got, explicit)
	}

	date := models.FlexTime{Time: time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)}
	a := models.WorkoutRecord{Name: "Push Day", Date: date}
	b := models.WorkoutRecord{Name: "Push Day", Date: date}
	if WorkoutID(a) != WorkoutID(b) {
		t.Error("identical records derived different IDs")
	}

	c := models.WorkoutRecord{Name: "Pull Day", Date: date}
	if WorkoutID(a) == WorkoutID(c) {
		t.Error("different records derived the same ID")
	}

	d := models.WorkoutRecord{ID: "export-row-42", Name: "Push Day", Date: date}
	if WorkoutID(d) == WorkoutID(a) {
		t.Error("external ID should take precedence over name+date")
	}
	if WorkoutID(d) != WorkoutID(d) {
		t.Error("external ID hashing is not deterministic")
	}
}
