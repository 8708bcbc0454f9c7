package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/models"
	"github.com/google/uuid"
)

// WorkoutID derives a stable UUID for a workout record. Exports that carry
// their own UUID keep it; anything else gets a deterministic ID from the
// external ID or from name+date, so re-ingesting the same export is a no-op.
func WorkoutID(rec models.WorkoutRecord) uuid.UUID {
	if id, err := uuid.Parse(rec.ID); err == nil {
		return id
	}
	seed := rec.ID
	if seed == "" {
		seed = rec.Name + "|" + rec.Date.UTC().Format(time.RFC3339)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// InsertWorkout inserts a workout row. Returns true if inserted, false if duplicate.
func (db *DB) InsertWorkout(ctx context.Context, rec models.WorkoutRecord) (uuid.UUID, bool, error) {
	id := WorkoutID(rec)

	exercises, err := json.Marshal(rec.Exercises)
	if err != nil {
		return id, false, fmt.Errorf("encoding exercises: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, name, date, duration_min, exercises)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		id, rec.Name, rec.Date.Time, rec.Duration.Float64(), exercises)
	if err != nil {
		return id, false, fmt.Errorf("inserting workout: %w", err)
	}
	return id, tag.RowsAffected() > 0, nil
}

// QueryWorkouts retrieves workouts dated in [start, end), newest first, with
// an optional case-insensitive name filter.
func (db *DB) QueryWorkouts(ctx context.Context, start, end time.Time, nameFilter string) ([]models.WorkoutRecord, error) {
	query := `SELECT id, name, date, duration_min, exercises
		 FROM workouts
		 WHERE date >= $1 AND date < $2`
	args := []any{start, end}

	if nameFilter != "" {
		query += ` AND name ILIKE $3`
		args = append(args, "%"+nameFilter+"%")
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRecord
	for rows.Next() {
		rec, err := scanWorkout(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// GetWorkout retrieves a single workout by ID.
func (db *DB) GetWorkout(ctx context.Context, id uuid.UUID) (*models.WorkoutRecord, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, date, duration_min, exercises
		 FROM workouts
		 WHERE id = $1`,
		id)

	rec, err := scanWorkout(row.Scan)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanWorkout(scan func(dest ...any) error) (models.WorkoutRecord, error) {
	var (
		rec       models.WorkoutRecord
		id        uuid.UUID
		date      time.Time
		duration  float64
		exercises []byte
	)
	if err := scan(&id, &rec.Name, &date, &duration, &exercises); err != nil {
		return rec, fmt.Errorf("scanning workout: %w", err)
	}
	rec.ID = id.String()
	rec.Date = models.FlexTime{Time: date}
	rec.Duration = models.FlexFloat(duration)
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &rec.Exercises); err != nil {
			return rec, fmt.Errorf("decoding exercises: %w", err)
		}
	}
	return rec, nil
}
