package rest

import (
	"context"
	"sync"

	"github.com/lenasun/kebab-api/internal/domain"
	"github.com/lenasun/kebab-api/internal/service/kebab"
)

var (
	_ songService  = &songServiceMock{}
	_ kebabService = &kebabServiceMock{}
)

type songServiceMock struct {
	GenresFunc     func(ctx context.Context) ([]string, error)
	RefreshFunc    func(ctx context.Context) ([]string, error)
	RandomSongFunc func(ctx context.Context, genre string) (*domain.Song, error)

	calls struct {
		Genres     []struct{ Ctx context.Context }
		Refresh    []struct{ Ctx context.Context }
		RandomSong []struct {
			Ctx   context.Context
			Genre string
		}
	}
	lockGenres     sync.RWMutex
	lockRefresh    sync.RWMutex
	lockRandomSong sync.RWMutex
}

func (mock *songServiceMock) Genres(ctx context.Context) ([]string, error) {
	if mock.GenresFunc == nil {
		panic("songServiceMock.GenresFunc: method is nil but songService.Genres was just called")
	}
	mock.lockGenres.Lock()
	mock.calls.Genres = append(mock.calls.Genres, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockGenres.Unlock()
	return mock.GenresFunc(ctx)
}

func (mock *songServiceMock) GenresCalls() []struct{ Ctx context.Context } {
	mock.lockGenres.RLock()
	calls := mock.calls.Genres
	mock.lockGenres.RUnlock()
	return calls
}

func (mock *songServiceMock) Refresh(ctx context.Context) ([]string, error) {
	if mock.RefreshFunc == nil {
		panic("songServiceMock.RefreshFunc: method is nil but songService.Refresh was just called")
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx)
}

func (mock *songServiceMock) RefreshCalls() []struct{ Ctx context.Context } {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *songServiceMock) RandomSong(ctx context.Context, genre string) (*domain.Song, error) {
	if mock.RandomSongFunc == nil {
		panic("songServiceMock.RandomSongFunc: method is nil but songService.RandomSong was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Genre string
	}{Ctx: ctx, Genre: genre}
	mock.lockRandomSong.Lock()
	mock.calls.RandomSong = append(mock.calls.RandomSong, callInfo)
	mock.lockRandomSong.Unlock()
	return mock.RandomSongFunc(ctx, genre)
}

func (mock *songServiceMock) RandomSongCalls() []struct {
	Ctx   context.Context
	Genre string
} {
	mock.lockRandomSong.RLock()
	calls := mock.calls.RandomSong
	mock.lockRandomSong.RUnlock()
	return calls
}

type kebabServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Kebab, error)
	CreateFunc func(ctx context.Context, input kebab.CreateInput) (*domain.Kebab, error)

	calls struct {
		List   []struct{ Ctx context.Context }
		Create []struct {
			Ctx   context.Context
			Input kebab.CreateInput
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *kebabServiceMock) List(ctx context.Context) ([]domain.Kebab, error) {
	if mock.ListFunc == nil {
		panic("kebabServiceMock.ListFunc: method is nil but kebabService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *kebabServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *kebabServiceMock) Create(ctx context.Context, input kebab.CreateInput) (*domain.Kebab, error) {
	if mock.CreateFunc == nil {
		panic("kebabServiceMock.CreateFunc: method is nil but kebabService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input kebab.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *kebabServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input kebab.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
