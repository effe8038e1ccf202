// Command seeder loads the track dataset into an empty songs collection.
// It runs the same seeding the server performs on first start, as a
// one-shot offline job.
//
// Flags:
//
//	--dataset        path to a .csv or .json dataset (overrides config)
//	--dry-run        parse and normalize the dataset without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lenasun/kebab-api/internal/adapter/mongodb"
	"github.com/lenasun/kebab-api/internal/adapter/mongodb/song"
	"github.com/lenasun/kebab-api/internal/app"
	"github.com/lenasun/kebab-api/internal/app/seeder"
	"github.com/lenasun/kebab-api/internal/config"
)

// Compile-time interface assertion.
var _ seeder.SongBulkRepo = (*song.Repo)(nil)

func main() {
	datasetFlag := flag.String("dataset", "", "path to the dataset file (.csv or .json)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg := appCfg.Seed
	if *seederConfigFlag != "" {
		fileCfg, err := seeder.LoadConfig(*seederConfigFlag)
		if err != nil {
			logger.Error("load seeder config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		seedCfg = *fileCfg
	}

	// CLI flags override config.
	if *datasetFlag != "" {
		seedCfg.DatasetPath = *datasetFlag
	}
	if *dryRunFlag {
		seedCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	client, err := mongodb.NewClient(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	db := client.Database(appCfg.Database.Name)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Error("ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	coordinator := seeder.NewCoordinator(logger, song.New(db), seedCfg)
	res, err := coordinator.SeedIfEmpty(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.Outcome == seeder.OutcomeDatasetError {
		logger.Warn("dataset could not be read", slog.String("path", seedCfg.DatasetPath))
		os.Exit(1)
	}

	logger.Info("seeding finished",
		slog.String("outcome", string(res.Outcome)),
		slog.Int("parsed", res.Parsed),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
	)
}
