package models

import (
	"encoding/json"
	"testing"
)

// TestFlexFloatCoercion verifies that numbers, numeric strings, and junk all
// coerce to a finite float, with junk and null becoming 0.
func TestFlexFloatCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`12.5`, 12.5},
		{`0`, 0},
		{`"80"`, 80},
		{`" 8 "`, 8},
		{`"heavy"`, 0},
		{`null`, 0},
		{`true`, 0},
		{`{}`, 0},
	}
	for _, tc := range cases {
		var f FlexFloat
		if err := json.Unmarshal([]byte(tc.raw), &f); err != nil {
			t.Errorf("FlexFloat(%s): unexpected error: %v", tc.raw, err)
		}
		if f.Float64() != tc.want {
			t.Errorf("FlexFloat(%s) = %v, want %v", tc.raw, f.Float64(), tc.want)
		}
	}
}

// TestFlexTimeFormats verifies the supported timestamp layouts all parse.
func TestFlexTimeFormats(t *testing.T) {
	cases := []string{
		`"2024-03-01T10:30:00Z"`,
		`"2024-03-01 10:30:00 +0100"`,
		`"2024-03-01"`,
	}
	for _, raw := range cases {
		var ft FlexTime
		if err := json.Unmarshal([]byte(raw), &ft); err != nil {
			t.Errorf("FlexTime(%s): unexpected error: %v", raw, err)
		}
		if !ft.Valid() {
			t.Errorf("FlexTime(%s): expected valid timestamp", raw)
		}
		if ft.Year() != 2024 || ft.Month() != 3 || ft.Day() != 1 {
			t.Errorf("FlexTime(%s) = %v, want 2024-03-01", raw, ft.Time)
		}
	}
}

// TestFlexTimeInvalid verifies that bad dates are absorbed as zero values
// rather than surfacing an unmarshal error.
func TestFlexTimeInvalid(t *testing.T) {
	for _, raw := range []string{`"yesterday"`, `""`, `null`, `42`} {
		var ft FlexTime
		if err := json.Unmarshal([]byte(raw), &ft); err != nil {
			t.Errorf("FlexTime(%s): unexpected error: %v", raw, err)
		}
		if ft.Valid() {
			t.Errorf("FlexTime(%s): expected invalid timestamp", raw)
		}
	}
}

// TestWorkoutRecordDecode verifies a realistic export payload decodes with
// coercion applied at every numeric field.
func TestWorkoutRecordDecode(t *testing.T) {
	raw := `{
		"date": "2024-03-01T18:00:00Z",
		"name": "Push Day",
		"duration": "3600",
		"exercises": [
			{
				"name": "Bench Press",
				"muscleGroup": "chest",
				"sets": [
					{"reps": 8, "weight": 60},
					{"reps": "6", "weight": null}
				]
			}
		]
	}`

	var w WorkoutRecord
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !w.Date.Valid() {
		t.Error("expected valid date")
	}
	if w.Duration.Float64() != 3600 {
		t.Errorf("duration = %v, want 3600", w.Duration.Float64())
	}
	if len(w.Exercises) != 1 || len(w.Exercises[0].Sets) != 2 {
		t.Fatalf("unexpected shape: %+v", w)
	}
	if got := w.Exercises[0].Sets[1].Reps.Float64(); got != 6 {
		t.Errorf("coerced reps = %v, want 6", got)
	}
	if got := w.Exercises[0].Sets[1].Weight.Float64(); got != 0 {
		t.Errorf("null weight = %v, want 0", got)
	}
}
