package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/socialite/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "Socialite server URL (e.g. https://socialite.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("SOCIALITE_API_KEY"), "API key (defaults to SOCIALITE_API_KEY)")
	userID := flag.String("user", "", "user ID owning the avatar")
	exercises := flag.String("exercises", "", "comma-separated exercise names to log (omit to sync only)")
	syncNow := flag.Bool("sync", false, "sync pending workouts to the server")
	dryRun := flag.Bool("dry-run", false, "show what would be synced without sending")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("socialite-log", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exercises == "" && !*syncNow {
		fmt.Fprintf(os.Stderr, "Usage: socialite-log -user <id> -exercises push-ups,squats [-sync] [-server URL]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *syncNow && *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required for -sync (or use -dry-run)\n")
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".socialite-log")

	state, err := tracker.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := tracker.NewClient(strings.TrimRight(*serverURL, "/"), *apiKey)
	tr := tracker.New(client, state, *dryRun, log)

	if *exercises != "" {
		if *userID == "" {
			fmt.Fprintf(os.Stderr, "Error: -user is required to log a workout\n")
			os.Exit(1)
		}
		if err := tr.Log(*userID, strings.Split(*exercises, ",")); err != nil {
			log.Error("logging failed", "error", err)
			os.Exit(1)
		}
	}

	if *syncNow {
		stats, err := tr.Sync()
		if err != nil {
			log.Error("sync failed", "error", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println("=== Sync Summary ===")
		fmt.Printf("  Pending: %d\n", stats.Pending)
		fmt.Printf("  Synced:  %d\n", stats.Synced)
		fmt.Printf("  Errored: %d\n", stats.Errored)
		fmt.Println()
	}
}
