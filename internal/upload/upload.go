package upload

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/HarshS3/LifeSync-sub000/internal/models"
)

// Stats tracks upload progress.
type Stats struct {
	FilesTotal    int
	FilesUploaded int
	FilesSkipped  int
	FilesErrored  int
	WorkoutsSent  int
}

// Uploader walks an export directory, parses workout export JSON files, and
// POSTs their workouts to the LifeSync server. Already-sent files are
// skipped via the state database.
type Uploader struct {
	client    *Client
	state     *StateDB
	exportDir string
	dryRun    bool
	batchSize int
	log       *slog.Logger
	stats     Stats
}

// New creates a new Uploader.
func New(client *Client, state *StateDB, exportDir string, dryRun bool, batchSize int, log *slog.Logger) *Uploader {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Uploader{
		client:    client,
		state:     state,
		exportDir: exportDir,
		dryRun:    dryRun,
		batchSize: batchSize,
		log:       log,
	}
}

// fileInfo tracks a file's metadata for state DB operations.
type fileInfo struct {
	relPath string
	size    int64
	hash    string
}

// Run executes the upload pipeline over all *.json files in the export
// directory, in stable name order.
func (u *Uploader) Run() (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(u.exportDir, "*.json"))
	if err != nil {
		return &u.stats, fmt.Errorf("listing exports in %s: %w", u.exportDir, err)
	}
	sort.Strings(files)

	for _, f := range files {
		u.stats.FilesTotal++

		relPath, _ := filepath.Rel(u.exportDir, f)
		info, err := os.Stat(f)
		if err != nil {
			u.log.Warn("stat failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}

		hash, err := HashFile(f)
		if err != nil {
			u.log.Warn("hash failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}

		uploaded, err := u.state.IsUploaded(relPath, info.Size(), hash)
		if err != nil {
			u.log.Warn("state check failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}
		if uploaded {
			u.stats.FilesSkipped++
			continue
		}

		data, err := os.ReadFile(f)
		if err != nil {
			u.log.Warn("read failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}

		var export models.WorkoutExport
		if err := json.Unmarshal(data, &export); err != nil {
			u.log.Warn("parse failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}

		if len(export.Workouts) == 0 {
			u.stats.FilesSkipped++
			// Mark empty files as uploaded so we don't re-check them
			u.markUploaded(fileInfo{relPath: relPath, size: info.Size(), hash: hash})
			continue
		}

		if err := u.sendWorkouts(relPath, export.Workouts); err != nil {
			return &u.stats, err
		}

		u.markUploaded(fileInfo{relPath: relPath, size: info.Size(), hash: hash})
		u.stats.FilesUploaded++
		u.log.Info("uploaded export", "file", relPath, "workouts", len(export.Workouts))
	}

	return &u.stats, nil
}

// sendWorkouts ships one file's workouts in batches of batchSize.
func (u *Uploader) sendWorkouts(relPath string, workouts []models.WorkoutRecord) error {
	for i := 0; i < len(workouts); i += u.batchSize {
		end := i + u.batchSize
		if end > len(workouts) {
			end = len(workouts)
		}
		batch := workouts[i:end]

		if u.dryRun {
			u.log.Info("dry-run: would send", "file", relPath, "workouts", len(batch))
		} else {
			if err := u.client.SendExport(models.WorkoutExport{Workouts: batch}); err != nil {
				return fmt.Errorf("sending %s batch: %w", relPath, err)
			}
		}
		u.stats.WorkoutsSent += len(batch)
	}
	return nil
}

func (u *Uploader) markUploaded(fi fileInfo) {
	if u.dryRun {
		return
	}
	if err := u.state.MarkUploaded(fi.relPath, fi.size, fi.hash); err != nil {
		u.log.Warn("failed to mark uploaded", "file", fi.relPath, "error", err)
	}
}
