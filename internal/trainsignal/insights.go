package trainsignal

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/catalog"
	"github.com/HarshS3/LifeSync-sub000/internal/models"
)

// Insight is one ranked, human-readable training observation.
type Insight struct {
	Kind       string  `json:"kind"`
	Title      string  `json:"title"`
	Detail     string  `json:"detail"`
	Confidence float64 `json:"confidence"`
	Impact     float64 `json:"impact"`
}

// Insight titles form a fixed vocabulary — dashboards key card icons off
// them.
const (
	TitleConsistency      = "Consistency"
	TitleFrequencyBalance = "Frequency Balance"
	TitleStreak           = "Streak"
	TitleTrainingLoad     = "Training Load"
	TitleVolumeTrend      = "Volume Trend (14d)"
	TitlePersonalBests    = "Personal Bests"
	TitleProgression      = "Progression Signal"
	TitlePlateauWatch     = "Plateau Watch"
	TitleMuscleTargets    = "Muscle Targets"
)

const insightKindTraining = "training"

// ComputeTrainingInsights derives up to four ranked insight cards from
// workout history. Heuristics whose preconditions fail simply don't emit;
// fewer than two validly-dated workouts yields an empty list. Pure and
// deterministic given identical inputs and now.
func ComputeTrainingInsights(workouts []models.WorkoutRecord, now time.Time) []Insight {
	valid := make([]models.WorkoutRecord, 0, len(workouts))
	for _, w := range workouts {
		if w.Date.Valid() {
			valid = append(valid, w)
		}
	}
	if len(valid) < 2 {
		return []Insight{}
	}

	// Chronological order so per-exercise series are well-defined.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Time.Before(valid[j].Date.Time)
	})

	var candidates []Insight
	add := func(in Insight, ok bool) {
		if ok {
			candidates = append(candidates, in)
		}
	}

	add(consistencyInsight(valid, now))
	add(frequencyBalanceInsight(valid, now))
	add(streakInsight(valid))
	add(trainingLoadInsight(valid, now))
	add(volumeTrendInsight(valid, now))
	add(personalBestsInsight(valid, now))
	add(progressionInsight(valid, now))
	add(plateauInsight(valid, now))
	add(muscleTargetsInsight(valid, now))

	return rankInsights(candidates)
}

// rankInsights filters low-confidence candidates and orders the rest by a
// two-key sort: Muscle Targets is always tier 0, everything else tier 1
// sorted by confidence*2 + impact*1.2 descending. At most maxInsights are
// returned.
func rankInsights(candidates []Insight) []Insight {
	kept := make([]Insight, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence >= minConfidence {
			kept = append(kept, c)
		}
	}

	tier := func(in Insight) int {
		if in.Title == TitleMuscleTargets {
			return 0
		}
		return 1
	}
	score := func(in Insight) float64 {
		return in.Confidence*confidenceRankWeight + in.Impact*impactRankWeight
	}
	sort.SliceStable(kept, func(i, j int) bool {
		ti, tj := tier(kept[i]), tier(kept[j])
		if ti != tj {
			return ti < tj
		}
		return score(kept[i]) > score(kept[j])
	})

	if len(kept) > maxInsights {
		kept = kept[:maxInsights]
	}
	return kept
}

// --- window and series helpers ---

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func countSessions(workouts []models.WorkoutRecord, start, end time.Time) int {
	n := 0
	for _, w := range workouts {
		if inWindow(w.Date.Time, start, end) {
			n++
		}
	}
	return n
}

// workoutVolume is reps*weight summed over loaded working sets. Bodyweight
// sets (weight == 0) contribute nothing here, unlike region scoring.
func workoutVolume(w models.WorkoutRecord) float64 {
	var vol float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			reps, weight := set.Reps.Float64(), set.Weight.Float64()
			if reps > 0 && weight > 0 {
				vol += reps * weight
			}
		}
	}
	return vol
}

func sumVolume(workouts []models.WorkoutRecord, start, end time.Time) float64 {
	var total float64
	for _, w := range workouts {
		if inWindow(w.Date.Time, start, end) {
			total += workoutVolume(w)
		}
	}
	return total
}

// dayKey collapses a timestamp to its calendar day.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// uniqueDaysAsc returns the distinct calendar days carrying at least one
// workout within [start, end), ascending. A zero start/end disables the
// window filter.
func uniqueDaysAsc(workouts []models.WorkoutRecord, start, end time.Time) []time.Time {
	seen := make(map[time.Time]bool)
	for _, w := range workouts {
		if !start.IsZero() && !inWindow(w.Date.Time, start, end) {
			continue
		}
		seen[dayKey(w.Date.Time)] = true
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// --- heuristics ---

// consistencyInsight compares session counts between the last 7 days and
// the 7 before that.
func consistencyInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	last7 := countSessions(workouts, now.AddDate(0, 0, -7), now)
	prev7 := countSessions(workouts, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	if last7 == 0 && prev7 == 0 {
		return Insight{}, false
	}

	delta := last7 - prev7
	trend := "steady"
	switch {
	case delta > 0:
		trend = "up"
	case delta < 0:
		trend = "down"
	}

	confidence := 0.45
	if last7 >= 2 {
		confidence = 0.7
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleConsistency,
		Detail:     fmt.Sprintf("%d sessions in the last 7 days vs %d the week before — %s.", last7, prev7, trend),
		Confidence: confidence,
		Impact:     math.Min(1, math.Abs(float64(delta))/4),
	}, true
}

// frequencyBalanceInsight measures how evenly training days are spread over
// the last 14 days using the coefficient of variation of day gaps.
func frequencyBalanceInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	start := now.AddDate(0, 0, -14)
	if countSessions(workouts, start, now) < balanceMinSessions {
		return Insight{}, false
	}

	days := uniqueDaysAsc(workouts, start, now)
	if len(days) < 2 {
		return Insight{}, false
	}

	gaps := make([]float64, 0, len(days)-1)
	longest := 0
	for i := 1; i < len(days); i++ {
		gap := daysBetween(days[i-1], days[i])
		gaps = append(gaps, float64(gap))
		if gap > longest {
			longest = gap
		}
	}

	medianGap := median(gaps)
	sdGap := sampleStdev(gaps)
	cv := sdGap / math.Max(1, medianGap)

	label := "fairly even"
	if cv >= clusterCVThreshold {
		label = "clustered"
	}

	detail := fmt.Sprintf("Your training days over the last 2 weeks look %s (gap spread %.2f).", label, cv)
	if longest >= longGapDays {
		detail += fmt.Sprintf(" Longest gap was %d days.", longest)
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleFrequencyBalance,
		Detail:     detail,
		Confidence: 0.65,
		Impact:     clamp01((cv - 0.4) / 1.2),
	}, true
}

// streakInsight counts consecutive training days ending at the most recent
// workout day.
func streakInsight(workouts []models.WorkoutRecord) (Insight, bool) {
	days := uniqueDaysAsc(workouts, time.Time{}, time.Time{})
	if len(days) == 0 {
		return Insight{}, false
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if daysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}
	if streak < 2 {
		return Insight{}, false
	}

	confidence := 0.55
	if streak >= 3 {
		confidence = 0.75
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleStreak,
		Detail:     fmt.Sprintf("%d-day training streak — nice momentum.", streak),
		Confidence: confidence,
		Impact:     math.Min(1, float64(streak)/5),
	}, true
}

// trainingLoadInsight compares lifted volume (loaded sets only) between the
// last 7 days and the 7 before that.
func trainingLoadInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	last := sumVolume(workouts, now.AddDate(0, 0, -7), now)
	prev := sumVolume(workouts, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	if last <= 0 && prev <= 0 {
		return Insight{}, false
	}

	confidence := 0.4
	if last > 0 && prev > 0 {
		confidence = 0.65
	}

	deltaThousands := (last - prev) / 1000
	trend := "steady"
	switch {
	case deltaThousands > 0:
		trend = "up"
	case deltaThousands < 0:
		trend = "down"
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleTrainingLoad,
		Detail:     fmt.Sprintf("Volume %.1fk over the last 7 days vs %.1fk prior — %s.", last/1000, prev/1000, trend),
		Confidence: confidence,
		Impact:     math.Min(1, math.Abs(deltaThousands)/8),
	}, true
}

// volumeTrendInsight is the 14-day version of the load comparison, gated on
// enough sessions for the trend to be stable.
func volumeTrendInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	start14 := now.AddDate(0, 0, -14)
	if countSessions(workouts, start14, now) < balanceMinSessions {
		return Insight{}, false
	}

	last := sumVolume(workouts, start14, now)
	prev := sumVolume(workouts, now.AddDate(0, 0, -28), start14)
	if last <= 0 && prev <= 0 {
		return Insight{}, false
	}

	confidence := 0.55
	if last > 0 && prev > 0 {
		confidence = 0.7
	}

	deltaThousands := (last - prev) / 1000
	trend := "steady"
	switch {
	case deltaThousands > 0:
		trend = "up"
	case deltaThousands < 0:
		trend = "down"
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleVolumeTrend,
		Detail:     fmt.Sprintf("14-day volume %.1fk vs %.1fk in the prior fortnight — %s.", last/1000, prev/1000, trend),
		Confidence: confidence,
		Impact:     math.Min(1, math.Abs(deltaThousands)/12),
	}, true
}

// personalBestsInsight finds exercises whose best single-set weight in the
// last week beats the best from the preceding three weeks by the PR
// threshold.
func personalBestsInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	lookbackStart := now.AddDate(0, 0, -lookbackDays)
	split := now.AddDate(0, 0, -splitDays)

	type prTrack struct {
		display    string
		bestBefore float64
		bestAfter  float64
	}
	tracks := make(map[string]*prTrack)
	var order []string

	for _, w := range workouts {
		if !inWindow(w.Date.Time, lookbackStart, now) {
			continue
		}
		after := !w.Date.Time.Before(split)

		for _, ex := range w.Exercises {
			key := catalog.Normalize(ex.Name)
			if key == "" {
				continue
			}
			track, ok := tracks[key]
			if !ok {
				track = &prTrack{display: strings.TrimSpace(ex.Name)}
				tracks[key] = track
				order = append(order, key)
			}
			for _, set := range ex.Sets {
				if set.Reps.Float64() <= 0 {
					continue
				}
				weight := set.Weight.Float64()
				if after {
					if weight > track.bestAfter {
						track.bestAfter = weight
					}
				} else if weight > track.bestBefore {
					track.bestBefore = weight
				}
			}
		}
	}

	type pr struct {
		display string
		delta   float64
	}
	var qualifying []pr
	for _, key := range order {
		t := tracks[key]
		delta := t.bestAfter - t.bestBefore
		if t.bestBefore > 0 && delta >= prWeightDelta {
			qualifying = append(qualifying, pr{display: t.display, delta: delta})
		}
	}
	if len(qualifying) == 0 {
		return Insight{}, false
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].delta > qualifying[j].delta
	})
	maxDelta := qualifying[0].delta
	if len(qualifying) > prMaxReported {
		qualifying = qualifying[:prMaxReported]
	}

	parts := make([]string, 0, len(qualifying))
	for _, q := range qualifying {
		parts = append(parts, fmt.Sprintf("%s +%.1f", q.display, q.delta))
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitlePersonalBests,
		Detail:     "New top-set weights: " + strings.Join(parts, ", ") + ".",
		Confidence: 0.65,
		Impact:     math.Min(1, maxDelta/10),
	}, true
}

// exerciseSeries is the per-session est1RM history of the most frequently
// performed exercise in the lookback window. Sessions where the exercise
// had no loaded set carry NaN.
type exerciseSeries struct {
	display     string
	appearances int
	points      []float64
}

// topExerciseSeries selects the exercise appearing in the most sessions
// within [now-28d, now), ties broken by first encounter, and builds its
// chronological est1RM series. Input must be sorted by date ascending.
func topExerciseSeries(workouts []models.WorkoutRecord, now time.Time) (exerciseSeries, bool) {
	lookbackStart := now.AddDate(0, 0, -lookbackDays)

	counts := make(map[string]int)
	displays := make(map[string]string)
	var order []string

	for _, w := range workouts {
		if !inWindow(w.Date.Time, lookbackStart, now) {
			continue
		}
		seenHere := make(map[string]bool)
		for _, ex := range w.Exercises {
			key := catalog.Normalize(ex.Name)
			if key == "" || seenHere[key] {
				continue
			}
			seenHere[key] = true
			if _, ok := counts[key]; !ok {
				order = append(order, key)
				displays[key] = strings.TrimSpace(ex.Name)
			}
			counts[key]++
		}
	}
	if len(order) == 0 {
		return exerciseSeries{}, false
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	top := order[0]

	series := exerciseSeries{display: displays[top], appearances: counts[top]}
	for _, w := range workouts {
		if !inWindow(w.Date.Time, lookbackStart, now) {
			continue
		}
		best := math.NaN()
		found := false
		for _, ex := range w.Exercises {
			if catalog.Normalize(ex.Name) != top {
				continue
			}
			found = true
			for _, set := range ex.Sets {
				reps, weight := set.Reps.Float64(), set.Weight.Float64()
				if reps <= 0 || weight <= 0 {
					continue
				}
				est := Estimate1RM(weight, reps)
				if math.IsNaN(best) || est > best {
					best = est
				}
			}
		}
		if found {
			series.points = append(series.points, best)
		}
	}
	return series, true
}

func nonNull(points []float64) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		if !math.IsNaN(p) {
			out = append(out, p)
		}
	}
	return out
}

// progressionInsight compares the recent pair of est1RM points against the
// prior pair for the most frequent exercise.
func progressionInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	series, ok := topExerciseSeries(workouts, now)
	if !ok || series.appearances < progressionMinAppearances {
		return Insight{}, false
	}

	points := nonNull(series.points)
	if len(points) < progressionMinPoints {
		return Insight{}, false
	}

	n := len(points)
	recent := mean(points[n-2:])
	prior := mean(points[n-4 : n-2])
	if prior <= 0 {
		return Insight{}, false
	}
	pct := (recent - prior) / prior

	confidence := 0.65
	var detail string
	switch {
	case pct > progressionPctThreshold:
		detail = fmt.Sprintf("%s estimated 1RM is up %.1f%% across recent sessions.", series.display, pct*100)
	case pct < -progressionPctThreshold:
		detail = fmt.Sprintf("%s estimated 1RM is down %.1f%% across recent sessions.", series.display, -pct*100)
	default:
		confidence = 0.55
		detail = fmt.Sprintf("%s estimated 1RM is holding flat across recent sessions.", series.display)
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleProgression,
		Detail:     detail,
		Confidence: confidence,
		Impact:     math.Min(1, math.Abs(pct)*100/12),
	}, true
}

// plateauInsight flags near-zero change and near-zero dispersion in the
// trailing est1RM values of the most frequent exercise.
func plateauInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	series, ok := topExerciseSeries(workouts, now)
	if !ok || series.appearances < plateauMinAppearances {
		return Insight{}, false
	}
	if len(series.points) < plateauMinPoints {
		return Insight{}, false
	}

	tail := series.points
	if len(tail) > plateauTailLen {
		tail = tail[len(tail)-plateauTailLen:]
	}
	values := nonNull(tail)
	if len(values) < plateauTailMinValues {
		return Insight{}, false
	}

	first, last := values[0], values[len(values)-1]
	m := mean(values)
	if first <= 0 || m <= 0 {
		return Insight{}, false
	}

	pctChange := (last - first) / first
	dispersion := sampleStdev(values) / m
	if math.Abs(pctChange) >= plateauPctThreshold || dispersion >= plateauCVThreshold {
		return Insight{}, false
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitlePlateauWatch,
		Detail:     fmt.Sprintf("%s has flattened around an estimated 1RM of %.0f — a change of load or rep range may help.", series.display, m),
		Confidence: 0.6,
		Impact:     0.45,
	}, true
}

// muscleTargetsInsight reports the regions taking the largest share of
// 14-day training score and flags single-region dominance.
func muscleTargetsInsight(workouts []models.WorkoutRecord, now time.Time) (Insight, bool) {
	totals, _, _, _ := accumulateRegionScores(workouts, now.AddDate(0, 0, -14), now)

	var sum float64
	for _, region := range catalog.Regions {
		sum += totals[region]
	}
	if sum <= 0 {
		return Insight{}, false
	}

	type regionShare struct {
		region catalog.Region
		share  float64
	}
	shares := make([]regionShare, 0, len(catalog.Regions))
	for _, region := range catalog.Regions {
		shares = append(shares, regionShare{region: region, share: totals[region] / sum})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].share > shares[j].share
	})

	top := shares
	if len(top) > targetTopRegions {
		top = top[:targetTopRegions]
	}
	parts := make([]string, 0, len(top))
	for _, s := range top {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", s.region, s.share*100))
	}

	imbalanced := shares[0].share >= imbalanceShare
	detail := "Top muscle targets over 14 days: " + strings.Join(parts, ", ") + "."
	if imbalanced {
		detail += fmt.Sprintf(" %s is taking over half your training score — consider balancing.", shares[0].region)
	}

	impact := 0.35
	if imbalanced {
		impact = 0.7
	}

	return Insight{
		Kind:       insightKindTraining,
		Title:      TitleMuscleTargets,
		Detail:     detail,
		Confidence: 0.7,
		Impact:     impact,
	}, true
}
