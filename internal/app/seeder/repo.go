// Package seeder loads the track dataset into an empty song collection.
package seeder

import (
	"context"

	"github.com/lenasun/kebab-api/internal/domain"
)

// SongBulkRepo defines the repository contract consumed by the Coordinator.
// All methods use only domain types; no adapter imports.
// Implemented by song.Repo.
type SongBulkRepo interface {
	// Count returns the number of stored songs.
	Count(ctx context.Context) (int64, error)
	// InsertMany stores songs and returns how many were written.
	InsertMany(ctx context.Context, songs []domain.Song) (int, error)
}
