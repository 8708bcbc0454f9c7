package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestHTTPClientQueryWorkouts verifies the remote DataSource decodes workout
// records from the REST API and forwards the query parameters.
func TestHTTPClientQueryWorkouts(t *testing.T) {
	var gotPath, gotName string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"date":"2025-06-14T18:00:00Z","name":"Push Day","exercises":[{"name":"Bench Press","sets":[{"reps":8,"weight":60}]}]}]`))
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	end := time.Now()
	workouts, err := client.QueryWorkouts(context.Background(), end.AddDate(0, 0, -30), end, "push")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v1/workouts" {
		t.Errorf("path = %q, want /api/v1/workouts", gotPath)
	}
	if gotName != "push" {
		t.Errorf("name param = %q, want push", gotName)
	}
	if len(workouts) != 1 {
		t.Fatalf("got %d workouts, want 1", len(workouts))
	}
	if workouts[0].Name != "Push Day" {
		t.Errorf("name = %q, want Push Day", workouts[0].Name)
	}
	if !workouts[0].Date.Valid() {
		t.Error("date did not parse")
	}
	if len(workouts[0].Exercises) != 1 || workouts[0].Exercises[0].Sets[0].Weight.Float64() != 60 {
		t.Errorf("exercises did not round-trip: %+v", workouts[0].Exercises)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses surface as errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	end := time.Now()
	if _, err := client.QueryWorkouts(context.Background(), end.AddDate(0, 0, -1), end, ""); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
