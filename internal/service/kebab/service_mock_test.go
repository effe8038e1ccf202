package kebab

import (
	"context"
	"sync"

	"github.com/lenasun/kebab-api/internal/domain"
)

var _ kebabRepo = &kebabRepoMock{}

type kebabRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Kebab, error)
	CreateFunc func(ctx context.Context, k domain.Kebab) (*domain.Kebab, error)

	calls struct {
		List   []struct{ Ctx context.Context }
		Create []struct {
			Ctx context.Context
			K   domain.Kebab
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *kebabRepoMock) List(ctx context.Context) ([]domain.Kebab, error) {
	if mock.ListFunc == nil {
		panic("kebabRepoMock.ListFunc: method is nil but kebabRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *kebabRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *kebabRepoMock) Create(ctx context.Context, k domain.Kebab) (*domain.Kebab, error) {
	if mock.CreateFunc == nil {
		panic("kebabRepoMock.CreateFunc: method is nil but kebabRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		K   domain.Kebab
	}{Ctx: ctx, K: k}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, k)
}

func (mock *kebabRepoMock) CreateCalls() []struct {
	Ctx context.Context
	K   domain.Kebab
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
