package seeder_test

import (
	"github.com/lenasun/kebab-api/internal/adapter/mongodb/song"
	"github.com/lenasun/kebab-api/internal/app/seeder"
)

// Compile-time check: *song.Repo must satisfy SongBulkRepo.
var _ seeder.SongBulkRepo = (*song.Repo)(nil)
