package seeder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lenasun/kebab-api/internal/app/seeder/tracks"
	"github.com/lenasun/kebab-api/internal/config"
	"github.com/lenasun/kebab-api/internal/domain"
	"github.com/lenasun/kebab-api/internal/metrics"
)

// ErrDataset marks a dataset that exists but could not be read or parsed.
var ErrDataset = errors.New("seeder: dataset unreadable")

// Outcome describes what a seed attempt did.
type Outcome string

const (
	OutcomeAlreadySeeded Outcome = "already_seeded"
	OutcomeNoDataset     Outcome = "no_dataset"
	OutcomeInserted      Outcome = "inserted"
	OutcomeEmptyDataset  Outcome = "empty_dataset"
	OutcomeDatasetError  Outcome = "dataset_error"
	OutcomeDryRun        Outcome = "dry_run"
)

// Result holds the outcome of a single SeedIfEmpty call.
type Result struct {
	Outcome  Outcome
	Parsed   int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Coordinator seeds the song collection at most once per process lifetime.
// Concurrent callers are serialized, so the empty check and the insert never
// race each other.
type Coordinator struct {
	log  *slog.Logger
	repo SongBulkRepo
	cfg  config.SeedConfig

	mu     sync.Mutex
	seeded bool
}

// NewCoordinator creates a Coordinator. cfg is expected to be validated.
func NewCoordinator(log *slog.Logger, repo SongBulkRepo, cfg config.SeedConfig) *Coordinator {
	return &Coordinator{
		log:  log.With("service", "seeder"),
		repo: repo,
		cfg:  cfg,
	}
}

// Done reports whether seeding has completed for this process.
func (c *Coordinator) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seeded
}

// Reset forgets a completed seed so the next SeedIfEmpty checks the
// collection again.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.seeded = false
	c.mu.Unlock()
}

// SeedIfEmpty loads the dataset into the song collection when the collection
// is empty. Once it has completed every later call is a no-op.
//
// A missing dataset completes seeding without error. A dataset that cannot be
// read completes seeding under the skip policy and is returned as an error
// wrapping ErrDataset under the retry policy. Count and insert failures are
// returned and leave seeding incomplete.
func (c *Coordinator) SeedIfEmpty(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seeded {
		return Result{Outcome: OutcomeAlreadySeeded}, nil
	}

	start := time.Now()
	res, err := c.seed(ctx)
	res.Duration = time.Since(start)

	if err != nil {
		outcome := string(res.Outcome)
		if outcome == "" {
			outcome = "failed"
		}
		metrics.RecordSeedRun(outcome, res.Inserted, res.Duration.Seconds())
		c.log.Error("seed failed",
			slog.String("outcome", outcome),
			slog.Int("inserted", res.Inserted),
			slog.String("error", err.Error()),
		)
		return res, err
	}

	metrics.RecordSeedRun(string(res.Outcome), res.Inserted, res.Duration.Seconds())
	c.log.Info("seed completed",
		slog.String("outcome", string(res.Outcome)),
		slog.Int("parsed", res.Parsed),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// seed runs one attempt. It must be called with c.mu held.
func (c *Coordinator) seed(ctx context.Context) (Result, error) {
	count, err := c.repo.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count songs: %w", err)
	}
	if count > 0 {
		c.seeded = true
		return Result{Outcome: OutcomeAlreadySeeded}, nil
	}

	path := strings.TrimSpace(c.cfg.DatasetPath)
	if path == "" {
		c.seeded = true
		return Result{Outcome: OutcomeNoDataset}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log.Warn("dataset not found, skipping seed", slog.String("path", path))
			c.seeded = true
			return Result{Outcome: OutcomeNoDataset}, nil
		}
		return c.datasetFailure(path, err)
	}

	records, err := tracks.ParseFile(path)
	if err != nil {
		return c.datasetFailure(path, err)
	}

	songs := tracks.Filter(tracks.NormalizeAll(records))
	res := Result{Parsed: len(records), Skipped: len(records) - len(songs)}
	c.log.Info("dataset parsed",
		slog.String("path", path),
		slog.Int("records", res.Parsed),
		slog.Int("persistable", len(songs)),
	)

	if len(songs) == 0 {
		c.seeded = true
		res.Outcome = OutcomeEmptyDataset
		return res, nil
	}

	if c.cfg.DryRun {
		c.seeded = true
		res.Outcome = OutcomeDryRun
		return res, nil
	}

	inserted, err := batchProcess(songs, c.cfg.BatchSize, func(batch []domain.Song) (int, error) {
		return c.repo.InsertMany(ctx, batch)
	})
	res.Inserted = inserted
	if err != nil {
		return res, fmt.Errorf("insert songs: %w", err)
	}

	c.seeded = true
	res.Outcome = OutcomeInserted
	return res, nil
}

func (c *Coordinator) datasetFailure(path string, err error) (Result, error) {
	res := Result{Outcome: OutcomeDatasetError}
	if c.cfg.OnDatasetError == config.DatasetErrorRetry {
		return res, fmt.Errorf("%w: %s: %w", ErrDataset, path, err)
	}

	c.log.Error("dataset unreadable, seeding skipped",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
	c.seeded = true
	return res, nil
}

// batchProcess splits items into chunks and calls fn for each chunk.
// A non-positive batchSize sends everything in one call.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = len(items)
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
