package trainsignal

import (
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/catalog"
	"github.com/HarshS3/LifeSync-sub000/internal/models"
)

// HeatmapResult is the renderer-ready intensity map. Field names are part of
// the wire contract with the body-figure and 3D-model colorizers.
type HeatmapResult struct {
	WindowDays   int       `json:"windowDays"`
	WindowStart  time.Time `json:"windowStart"`
	WindowEnd    time.Time `json:"windowEnd"`
	WorkoutCount int       `json:"workoutCount"`
	ScoredSets   int       `json:"scoredSets"`
	IgnoredSets  int       `json:"ignoredSets"`

	Totals     map[catalog.Region]float64 `json:"totals"`
	Normalized map[catalog.Region]float64 `json:"normalized"`
	Max        float64                    `json:"max"`
	Sum        float64                    `json:"sum"`
}

// ComputeMuscleHeatmap aggregates recent workout history into per-region
// training-intensity scores, normalized to [0,1] by the hottest region.
// Pure: identical inputs and now produce identical output.
func ComputeMuscleHeatmap(workouts []models.WorkoutRecord, days int, now time.Time) HeatmapResult {
	if days <= 0 {
		days = DefaultHeatmapDays
	}
	start := now.AddDate(0, 0, -days)

	totals, workoutCount, scored, ignored := accumulateRegionScores(workouts, start, now)

	result := HeatmapResult{
		WindowDays:   days,
		WindowStart:  start,
		WindowEnd:    now,
		WorkoutCount: workoutCount,
		ScoredSets:   scored,
		IgnoredSets:  ignored,
		Totals:       totals,
		Normalized:   make(map[catalog.Region]float64, len(catalog.Regions)),
	}

	for _, region := range catalog.Regions {
		v := totals[region]
		result.Sum += v
		if v > result.Max {
			result.Max = v
		}
	}
	for _, region := range catalog.Regions {
		if result.Max > 0 {
			result.Normalized[region] = totals[region] / result.Max
		} else {
			result.Normalized[region] = 0
		}
	}
	return result
}

// regionContribution is one region's share of a single set's score.
type regionContribution struct {
	region catalog.Region
	mult   float64
}

// exerciseContributions resolves an exercise name to its weighted region
// contributions. Unknown exercises and unmapped target keys yield nothing.
func exerciseContributions(name string) []regionContribution {
	mapping, ok := catalog.Lookup(name)
	if !ok {
		return nil
	}
	var contribs []regionContribution
	for _, key := range mapping.Primary {
		if region, ok := catalog.RollupToRegion(key); ok {
			contribs = append(contribs, regionContribution{region: region, mult: 1})
		}
	}
	for _, key := range mapping.Secondary {
		if region, ok := catalog.RollupToRegion(key); ok {
			contribs = append(contribs, regionContribution{region: region, mult: secondaryTargetWeight})
		}
	}
	return contribs
}

// accumulateRegionScores sums per-region set scores over workouts dated in
// [start, end). Sets with reps <= 0 contribute nothing; unloaded sets score
// the bodyweight proxy. Returns fresh maps — callers own the result.
func accumulateRegionScores(workouts []models.WorkoutRecord, start, end time.Time) (totals map[catalog.Region]float64, workoutCount, scoredSets, ignoredSets int) {
	totals = make(map[catalog.Region]float64, len(catalog.Regions))
	for _, region := range catalog.Regions {
		totals[region] = 0
	}

	for _, w := range workouts {
		if !w.Date.Valid() || w.Date.Before(start) || !w.Date.Before(end) {
			continue
		}
		workoutCount++

		for _, ex := range w.Exercises {
			contribs := exerciseContributions(ex.Name)

			for _, set := range ex.Sets {
				reps := set.Reps.Float64()
				if reps <= 0 {
					continue
				}
				if len(contribs) == 0 {
					ignoredSets++
					continue
				}

				weight := set.Weight.Float64()
				score := bodyweightSetScore
				if weight > 0 {
					score = weight * reps
				}
				for _, c := range contribs {
					totals[c.region] += score * c.mult
				}
				scoredSets++
			}
		}
	}
	return totals, workoutCount, scoredSets, ignoredSets
}
