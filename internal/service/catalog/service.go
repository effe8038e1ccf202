// Package catalog serves the genre list and random song lookups.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lenasun/kebab-api/internal/domain"
	"github.com/lenasun/kebab-api/internal/metrics"
)

type songRepo interface {
	DistinctGenres(ctx context.Context) ([]string, error)
	RandomByGenre(ctx context.Context, genre string) (*domain.Song, error)
}

const genresKey = "genres"

// Service provides song catalog operations. The genre list is loaded lazily
// and kept for the life of the process unless refreshed or invalidated.
type Service struct {
	songs songRepo
	log   *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	genres []string // nil until loaded
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, songs songRepo) *Service {
	return &Service{
		songs: songs,
		log:   log.With("service", "catalog"),
	}
}

// Genres returns the sorted list of known genres, loading it on first use.
// Concurrent first callers share a single load.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	if cached, ok := s.cached(); ok {
		return cached, nil
	}
	return s.load(ctx)
}

// Warm loads the genre list if it is not cached yet.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.Genres(ctx)
	return err
}

// Loaded reports whether a genre list is cached.
func (s *Service) Loaded() bool {
	_, ok := s.cached()
	return ok
}

// Refresh reloads the genre list from the store. On failure the previous
// list stays cached.
func (s *Service) Refresh(ctx context.Context) ([]string, error) {
	s.group.Forget(genresKey)
	return s.load(ctx)
}

// Invalidate drops the cached genre list; the next Genres call reloads it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.genres = nil
	s.mu.Unlock()
	s.group.Forget(genresKey)
}

// RandomSong returns a random song with exactly the given genre.
// Returns domain.ErrNotFound if the genre has no songs.
func (s *Service) RandomSong(ctx context.Context, genre string) (*domain.Song, error) {
	if genre == "" {
		return nil, domain.NewValidationError("genre", "required")
	}

	song, err := s.songs.RandomByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("random song: %w", err)
	}
	return song, nil
}

func (s *Service) cached() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.genres == nil {
		return nil, false
	}
	return slices.Clone(s.genres), true
}

func (s *Service) load(ctx context.Context) ([]string, error) {
	// The shared load must not fail because the caller that started it went away.
	loadCtx := context.WithoutCancel(ctx)

	v, err, _ := s.group.Do(genresKey, func() (any, error) {
		genres, err := s.songs.DistinctGenres(loadCtx)
		metrics.RecordGenreLoad(len(genres), err)
		if err != nil {
			return nil, fmt.Errorf("load genres: %w", err)
		}

		if genres == nil {
			genres = []string{}
		}
		slices.Sort(genres)

		s.mu.Lock()
		s.genres = genres
		s.mu.Unlock()

		s.log.Info("genre cache loaded", slog.Int("count", len(genres)))
		return genres, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.([]string)), nil
}
