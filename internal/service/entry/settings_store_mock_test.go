package entry

import (
	"context"
	"sync"

	"github.com/fieldpost/backend/internal/domain"
)

var _ settingsStore = &settingsStoreMock{}

type settingsStoreMock struct {
	GetFunc func(ctx context.Context) (*domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *settingsStoreMock) Get(ctx context.Context) (*domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsStoreMock.GetFunc: method is nil but settingsStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsStoreMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
