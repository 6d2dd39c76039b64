package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/socialite/internal/config"
	"github.com/meltforce/socialite/internal/importer"
	"github.com/meltforce/socialite/internal/progression"
	"github.com/meltforce/socialite/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to workout history export file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: socialite-import -config config.yaml -path export.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	catalog := progression.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		log.Error("tier catalog invalid", "error", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, catalog, log, *dryRun)
	stats, err := imp.ImportFile(ctx, *exportPath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("import complete")
}

func printStats(stats *importer.Stats) {
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Workouts replayed:   %d\n", stats.WorkoutsReplayed)
	fmt.Printf("  Duplicates skipped:  %d\n", stats.WorkoutsDuplicated)
	fmt.Printf("  Level-ups:           %d\n", stats.LevelUps)
	fmt.Printf("  Final level:         %d\n", stats.FinalLevel)
	fmt.Printf("  Final fame:          %.0f\n", stats.FinalFame)
	fmt.Println()
}
