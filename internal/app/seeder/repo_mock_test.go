package seeder

import (
	"context"
	"sync"

	"github.com/lenasun/kebab-api/internal/domain"
)

var _ SongBulkRepo = &SongBulkRepoMock{}

type SongBulkRepoMock struct {
	CountFunc      func(ctx context.Context) (int64, error)
	InsertManyFunc func(ctx context.Context, songs []domain.Song) (int, error)

	calls struct {
		Count      []struct{ Ctx context.Context }
		InsertMany []struct {
			Ctx   context.Context
			Songs []domain.Song
		}
	}
	lockCount      sync.RWMutex
	lockInsertMany sync.RWMutex
}

func (mock *SongBulkRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("SongBulkRepoMock.CountFunc: method is nil but SongBulkRepo.Count was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *SongBulkRepoMock) CountCalls() []struct{ Ctx context.Context } {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *SongBulkRepoMock) InsertMany(ctx context.Context, songs []domain.Song) (int, error) {
	if mock.InsertManyFunc == nil {
		panic("SongBulkRepoMock.InsertManyFunc: method is nil but SongBulkRepo.InsertMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Songs []domain.Song
	}{Ctx: ctx, Songs: songs}
	mock.lockInsertMany.Lock()
	mock.calls.InsertMany = append(mock.calls.InsertMany, callInfo)
	mock.lockInsertMany.Unlock()
	return mock.InsertManyFunc(ctx, songs)
}

func (mock *SongBulkRepoMock) InsertManyCalls() []struct {
	Ctx   context.Context
	Songs []domain.Song
} {
	mock.lockInsertMany.RLock()
	calls := mock.calls.InsertMany
	mock.lockInsertMany.RUnlock()
	return calls
}
