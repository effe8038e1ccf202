package catalog

import (
	"context"
	"sync"

	"github.com/lenasun/kebab-api/internal/domain"
)

var _ songRepo = &songRepoMock{}

type songRepoMock struct {
	DistinctGenresFunc func(ctx context.Context) ([]string, error)
	RandomByGenreFunc  func(ctx context.Context, genre string) (*domain.Song, error)

	calls struct {
		DistinctGenres []struct{ Ctx context.Context }
		RandomByGenre  []struct {
			Ctx   context.Context
			Genre string
		}
	}
	lockDistinctGenres sync.RWMutex
	lockRandomByGenre  sync.RWMutex
}

func (mock *songRepoMock) DistinctGenres(ctx context.Context) ([]string, error) {
	if mock.DistinctGenresFunc == nil {
		panic("songRepoMock.DistinctGenresFunc: method is nil but songRepo.DistinctGenres was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockDistinctGenres.Lock()
	mock.calls.DistinctGenres = append(mock.calls.DistinctGenres, callInfo)
	mock.lockDistinctGenres.Unlock()
	return mock.DistinctGenresFunc(ctx)
}

func (mock *songRepoMock) DistinctGenresCalls() []struct{ Ctx context.Context } {
	mock.lockDistinctGenres.RLock()
	calls := mock.calls.DistinctGenres
	mock.lockDistinctGenres.RUnlock()
	return calls
}

func (mock *songRepoMock) RandomByGenre(ctx context.Context, genre string) (*domain.Song, error) {
	if mock.RandomByGenreFunc == nil {
		panic("songRepoMock.RandomByGenreFunc: method is nil but songRepo.RandomByGenre was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Genre string
	}{Ctx: ctx, Genre: genre}
	mock.lockRandomByGenre.Lock()
	mock.calls.RandomByGenre = append(mock.calls.RandomByGenre, callInfo)
	mock.lockRandomByGenre.Unlock()
	return mock.RandomByGenreFunc(ctx, genre)
}

func (mock *songRepoMock) RandomByGenreCalls() []struct {
	Ctx   context.Context
	Genre string
} {
	mock.lockRandomByGenre.RLock()
	calls := mock.calls.RandomByGenre
	mock.lockRandomByGenre.RUnlock()
	return calls
}
