package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HarshS3/LifeSync-sub000/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "LifeSync server URL (e.g. https://lifesync.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("LIFESYNC_AUTH_API_KEY"), "ingest API key (defaults to LIFESYNC_AUTH_API_KEY)")
	exportPath := flag.String("path", "", "path to directory of workout export JSON files")
	dryRun := flag.Bool("dry-run", false, "parse exports but don't send to server")
	batchSize := flag.Int("batch-size", 50, "workouts per ingest request")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("lifesync-sync", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: lifesync-sync -server <URL> -path <export dir> [-api-key KEY] [-dry-run] [-batch-size N]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if !*dryRun {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
			os.Exit(1)
		}
		if *apiKey == "" {
			fmt.Fprintf(os.Stderr, "Error: -api-key (or LIFESYNC_AUTH_API_KEY) is required (or use -dry-run)\n")
			os.Exit(1)
		}
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export directory not found", "path", *exportPath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".lifesync-sync")

	state, err := upload.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if *dryRun {
		log.Info("DRY RUN mode — exports will be parsed but not sent")
	}

	client := upload.NewClient(*serverURL, *apiKey)
	uploader := upload.New(client, state, *exportPath, *dryRun, *batchSize, log)
	stats, err := uploader.Run()
	if err != nil {
		log.Error("sync failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	if !*dryRun {
		if err := state.SetSyncState("last_run", time.Now().Format(time.RFC3339)); err != nil {
			log.Warn("failed to save sync state", "error", err)
		}
	}

	printStats(stats)
	log.Info("sync complete")
}

func printStats(stats *upload.Stats) {
	fmt.Println()
	fmt.Println("=== Sync Summary ===")
	fmt.Printf("  Files total:      %d\n", stats.FilesTotal)
	fmt.Printf("  Files uploaded:   %d\n", stats.FilesUploaded)
	fmt.Printf("  Files skipped:    %d (already uploaded)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)
	fmt.Printf("  Workouts sent:    %d\n", stats.WorkoutsSent)
	fmt.Println()
}
