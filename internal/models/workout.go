package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// FlexTime handles the timestamp formats seen in workout exports:
// RFC 3339, "2006-01-02 15:04:05 -0700", and date-only "2006-01-02".
// Unparseable or missing dates leave the zero value — records with an
// invalid date are excluded from analysis, never rejected.
type FlexTime struct {
	time.Time
}

var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Parse(s)
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Parse tries each known layout in order. On failure the value stays zero.
func (t *FlexTime) Parse(s string) {
	s = strings.TrimSpace(s)
	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return
		}
	}
	t.Time = time.Time{}
}

// Valid reports whether the timestamp parsed to a usable instant.
func (t FlexTime) Valid() bool {
	return !t.IsZero()
}

// FlexFloat coerces a JSON value to a finite non-negative-friendly float:
// numbers pass through, numeric strings are parsed, and null, missing,
// non-numeric, NaN, or infinite values all become 0. Downstream arithmetic
// can assume well-formed numbers.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = sanitize(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = sanitize(n)
		}
	}
	return nil
}

func sanitize(n float64) FlexFloat {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return FlexFloat(n)
}

// Float64 returns the coerced value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// WorkoutRecord is one logged gym session.
type WorkoutRecord struct {
	ID        string          `json:"id,omitempty"`
	Date      FlexTime        `json:"date"`
	Name      string          `json:"name"`
	Duration  FlexFloat       `json:"duration"`
	Exercises []ExerciseEntry `json:"exercises"`
}

// ExerciseEntry is one exercise within a session. MuscleGroup is the
// coarse free-text tag the user picked at log time; it is kept for display
// but target mapping goes through the catalog instead.
type ExerciseEntry struct {
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup,omitempty"`
	Sets        []SetEntry `json:"sets"`
}

// SetEntry is a single set. Weight 0 means bodyweight/unloaded.
type SetEntry struct {
	Reps   FlexFloat `json:"reps"`
	Weight FlexFloat `json:"weight"`
}

// WorkoutExport is the top-level ingest payload.
type WorkoutExport struct {
	Workouts []WorkoutRecord `json:"workouts"`
}
