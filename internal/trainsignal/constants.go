package trainsignal

// Tuning constants for the heatmap and insight heuristics. The values are
// hand-tuned against real training logs; changing any of them changes
// analysis output for every user, so they live here rather than inline.
const (
	// DefaultHeatmapDays is the lookback window for the muscle heatmap.
	DefaultHeatmapDays = 30

	// secondaryTargetWeight down-weights secondary muscle targets relative
	// to primary targets when accumulating region scores.
	secondaryTargetWeight = 0.35

	// bodyweightSetScore is the proxy score for a set with no external load
	// (weight == 0) in region scoring. Volume-based heuristics deliberately
	// exclude such sets instead.
	bodyweightSetScore = 1.0

	// lookbackDays bounds PR, progression, and plateau analysis.
	lookbackDays = 28
	// splitDays sets the before/after boundary for PR comparison: the best
	// set weight from the last week is compared against the best from the
	// preceding three weeks.
	splitDays = 7

	// prWeightDelta is the minimum best-set weight improvement that counts
	// as a personal best. Unit-agnostic.
	prWeightDelta = 2.5
	// prMaxReported caps how many exercises one Personal Bests card lists.
	prMaxReported = 2

	// progressionMinAppearances is the minimum number of sessions featuring
	// an exercise before its trend is worth reporting.
	progressionMinAppearances = 3
	// progressionMinPoints is the minimum est1RM series length for a trend.
	progressionMinPoints = 4
	// progressionPctThreshold separates up/down from flat, as a fraction.
	progressionPctThreshold = 0.02

	// plateauMinAppearances and plateauMinPoints gate plateau detection.
	plateauMinAppearances = 4
	plateauMinPoints      = 5
	// plateauTailLen is how many trailing est1RM values are inspected.
	plateauTailLen = 4
	// plateauTailMinValues is the minimum non-null values within the tail.
	plateauTailMinValues = 3
	// plateauPctThreshold and plateauCVThreshold define "flat": near-zero
	// first-to-last change and near-zero dispersion.
	plateauPctThreshold = 0.01
	plateauCVThreshold  = 0.02

	// clusterCVThreshold is the gap coefficient-of-variation above which
	// training days are called clustered rather than evenly spaced.
	clusterCVThreshold = 0.9
	// longGapDays is the single-gap length worth calling out in the
	// frequency-balance detail.
	longGapDays = 4

	// balanceMinSessions is the minimum 14-day session count before gap
	// statistics stabilize.
	balanceMinSessions = 4
	// imbalanceShare flags a muscle-target imbalance when one region takes
	// at least this share of total score.
	imbalanceShare = 0.5
	// targetTopRegions is how many regions the Muscle Targets card reports.
	targetTopRegions = 3

	// minConfidence filters candidates before ranking.
	minConfidence = 0.5
	// maxInsights caps the returned list.
	maxInsights = 4

	// confidenceRankWeight and impactRankWeight combine into the ranking
	// score.
	confidenceRankWeight = 2.0
	impactRankWeight     = 1.2
)
