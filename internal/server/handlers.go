package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/catalog"
	"github.com/HarshS3/LifeSync-sub000/internal/models"
	"github.com/HarshS3/LifeSync-sub000/internal/trainsignal"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// insightLookback bounds how much history feeds the insight engine. The
// heuristics only reach back 28 days, but streak detection wants the full
// run of recent training days.
const insightLookback = 365

// IngestResult summarizes one ingest request.
type IngestResult struct {
	Received   int `json:"received"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var export models.WorkoutExport
	if err := json.NewDecoder(r.Body).Decode(&export); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result := IngestResult{Received: len(export.Workouts)}
	for _, rec := range export.Workouts {
		_, inserted, err := s.db.InsertWorkout(r.Context(), rec)
		if err != nil {
			s.log.Error("ingest error", "workout", rec.Name, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if inserted {
			result.Inserted++
		} else {
			result.Duplicates++
		}
	}

	s.log.Info("ingested workouts", "received", result.Received, "inserted", result.Inserted)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleQueryWorkouts(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workouts, err := s.db.QueryWorkouts(r.Context(), start, end, r.URL.Query().Get("name"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	rec, err := s.db.GetWorkout(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	days, err := parseDays(r, trainsignal.DefaultHeatmapDays)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	now := time.Now()
	workouts, err := s.db.QueryWorkouts(r.Context(), now.AddDate(0, 0, -days), now, "")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, trainsignal.ComputeMuscleHeatmap(workouts, days, now))
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	workouts, err := s.db.QueryWorkouts(r.Context(), now.AddDate(0, 0, -insightLookback), now, "")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, trainsignal.ComputeTrainingInsights(workouts, now))
}

// ExerciseLookupResult is the response shape for exercise catalog lookups.
type ExerciseLookupResult struct {
	Query      string                 `json:"query"`
	Normalized string                 `json:"normalized"`
	Found      bool                   `json:"found"`
	Targets    *catalog.TargetMapping `json:"targets,omitempty"`
	Regions    []catalog.Region       `json:"regions,omitempty"`
}

func (s *Server) handleLookupExercise(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	result := ExerciseLookupResult{
		Query:      name,
		Normalized: catalog.Normalize(name),
	}
	if mapping, ok := catalog.Lookup(name); ok {
		result.Found = true
		result.Targets = &mapping
		result.Regions = mappedRegions(mapping)
	}
	writeJSON(w, http.StatusOK, result)
}

// mappedRegions rolls a mapping's target keys up to unique regions, primary
// targets first, preserving first-seen order.
func mappedRegions(mapping catalog.TargetMapping) []catalog.Region {
	seen := make(map[catalog.Region]bool)
	var regions []catalog.Region
	for _, key := range append(append([]string{}, mapping.Primary...), mapping.Secondary...) {
		if region, ok := catalog.RollupToRegion(key); ok && !seen[region] {
			seen[region] = true
			regions = append(regions, region)
		}
	}
	return regions
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"exercises": catalog.Size(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseDays reads an optional positive integer "days" query parameter.
func parseDays(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("days must be a positive integer")
	}
	return days, nil
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 30 days
		end = time.Now()
		start = end.AddDate(0, 0, -30)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
