package trainsignal

import (
	"testing"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/catalog"
	"github.com/HarshS3/LifeSync-sub000/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func workoutAt(ts time.Time, exercises ...models.ExerciseEntry) models.WorkoutRecord {
	return models.WorkoutRecord{Date: models.FlexTime{Time: ts}, Exercises: exercises}
}

func exerciseWith(name string, sets ...models.SetEntry) models.ExerciseEntry {
	return models.ExerciseEntry{Name: name, Sets: sets}
}

func oneSet(reps, weight float64) models.SetEntry {
	return models.SetEntry{Reps: models.FlexFloat(reps), Weight: models.FlexFloat(weight)}
}

// TestComputeMuscleHeatmapEmpty verifies the empty-window case: zero totals,
// zero max, and normalized values that are 0 rather than NaN.
func TestComputeMuscleHeatmapEmpty(t *testing.T) {
	result := ComputeMuscleHeatmap(nil, 0, testNow)

	if result.WindowDays != DefaultHeatmapDays {
		t.Errorf("WindowDays = %d, want %d", result.WindowDays, DefaultHeatmapDays)
	}
	if result.Max != 0 || result.Sum != 0 || result.WorkoutCount != 0 {
		t.Errorf("expected zero aggregates, got max=%v sum=%v workouts=%d", result.Max, result.Sum, result.WorkoutCount)
	}
	for _, region := range catalog.Regions {
		if v := result.Normalized[region]; v != 0 {
			t.Errorf("Normalized[%s] = %v, want 0", region, v)
		}
	}
}

// TestHeatmapSecondaryWeighting verifies a single bench press set scores the
// primary region at full weight and the secondary regions at 0.35, and that
// the hottest region normalizes to exactly 1.
func TestHeatmapSecondaryWeighting(t *testing.T) {
	workouts := []models.WorkoutRecord{
		workoutAt(testNow.Add(-2*time.Hour), exerciseWith("Bench Press", oneSet(8, 60))),
	}
	result := ComputeMuscleHeatmap(workouts, 30, testNow)

	if !almostEqual(result.Totals[catalog.RegionChest], 480) {
		t.Errorf("chest total = %v, want 480", result.Totals[catalog.RegionChest])
	}
	if !almostEqual(result.Totals[catalog.RegionTriceps], 480*0.35) {
		t.Errorf("triceps total = %v, want %v", result.Totals[catalog.RegionTriceps], 480*0.35)
	}
	if !almostEqual(result.Totals[catalog.RegionShoulders], 480*0.35) {
		t.Errorf("shoulders total = %v, want %v", result.Totals[catalog.RegionShoulders], 480*0.35)
	}
	if !almostEqual(result.Normalized[catalog.RegionChest], 1) {
		t.Errorf("chest normalized = %v, want 1", result.Normalized[catalog.RegionChest])
	}
	if !almostEqual(result.Normalized[catalog.RegionTriceps], 0.35) {
		t.Errorf("triceps normalized = %v, want 0.35", result.Normalized[catalog.RegionTriceps])
	}
	for _, region := range catalog.Regions {
		if v := result.Normalized[region]; v < 0 || v > 1 {
			t.Errorf("Normalized[%s] = %v, outside [0,1]", region, v)
		}
	}
	if result.ScoredSets != 1 {
		t.Errorf("ScoredSets = %d, want 1", result.ScoredSets)
	}
}

// TestHeatmapBodyweightProxy verifies an unloaded set scores 1 regardless of
// rep count, keeping bodyweight work visible on the map.
func TestHeatmapBodyweightProxy(t *testing.T) {
	workouts := []models.WorkoutRecord{
		workoutAt(testNow.Add(-2*time.Hour), exerciseWith("Push Up", oneSet(25, 0))),
	}
	result := ComputeMuscleHeatmap(workouts, 30, testNow)

	if !almostEqual(result.Totals[catalog.RegionChest], 1) {
		t.Errorf("chest total = %v, want 1", result.Totals[catalog.RegionChest])
	}
	if !almostEqual(result.Totals[catalog.RegionTriceps], 0.35) {
		t.Errorf("triceps total = %v, want 0.35", result.Totals[catalog.RegionTriceps])
	}
	if result.ScoredSets != 1 {
		t.Errorf("ScoredSets = %d, want 1", result.ScoredSets)
	}
}

// TestHeatmapWindowFiltering verifies the half-open window: out-of-window
// and invalid-date workouts are excluded without erroring.
func TestHeatmapWindowFiltering(t *testing.T) {
	workouts := []models.WorkoutRecord{
		workoutAt(testNow.Add(-2*time.Hour), exerciseWith("Bench Press", oneSet(8, 60))),
		workoutAt(testNow.AddDate(0, 0, -40), exerciseWith("Squat", oneSet(5, 100))),
		{Exercises: []models.ExerciseEntry{exerciseWith("Deadlift", oneSet(5, 120))}}, // no date
	}
	result := ComputeMuscleHeatmap(workouts, 30, testNow)

	if result.WorkoutCount != 1 {
		t.Errorf("WorkoutCount = %d, want 1", result.WorkoutCount)
	}
	if result.Totals[catalog.RegionQuads] != 0 {
		t.Errorf("quads total = %v, want 0 (out of window)", result.Totals[catalog.RegionQuads])
	}
	if result.Totals[catalog.RegionBack] != 0 {
		t.Errorf("back total = %v, want 0 (invalid date)", result.Totals[catalog.RegionBack])
	}
}

// TestHeatmapIgnoredSets verifies set accounting: sets on unknown exercises
// are counted as ignored, while zero-rep sets are skipped entirely.
func TestHeatmapIgnoredSets(t *testing.T) {
	workouts := []models.WorkoutRecord{
		workoutAt(testNow.Add(-2*time.Hour),
			exerciseWith("Underwater Basket Press", oneSet(10, 40), oneSet(10, 40)),
			exerciseWith("Bench Press", oneSet(0, 60), oneSet(8, 60)),
		),
	}
	result := ComputeMuscleHeatmap(workouts, 30, testNow)

	if result.IgnoredSets != 2 {
		t.Errorf("IgnoredSets = %d, want 2", result.IgnoredSets)
	}
	if result.ScoredSets != 1 {
		t.Errorf("ScoredSets = %d, want 1", result.ScoredSets)
	}
}
