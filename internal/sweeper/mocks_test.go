package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	ListExpiredFunc func(ctx context.Context, cutoff time.Time) ([]domain.PurgeCandidate, error)
	PurgeFunc       func(ctx context.Context, id uuid.UUID, observedDeletedAt time.Time) (bool, error)

	calls struct {
		ListExpired []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		Purge []struct {
			Ctx               context.Context
			ID                uuid.UUID
			ObservedDeletedAt time.Time
		}
	}
	lockListExpired sync.RWMutex
	lockPurge       sync.RWMutex
}

func (mock *entryStoreMock) ListExpired(ctx context.Context, cutoff time.Time) ([]domain.PurgeCandidate, error) {
	if mock.ListExpiredFunc == nil {
		panic("entryStoreMock.ListExpiredFunc: method is nil but entryStore.ListExpired was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockListExpired.Lock()
	mock.calls.ListExpired = append(mock.calls.ListExpired, callInfo)
	mock.lockListExpired.Unlock()
	return mock.ListExpiredFunc(ctx, cutoff)
}

func (mock *entryStoreMock) ListExpiredCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockListExpired.RLock()
	calls := mock.calls.ListExpired
	mock.lockListExpired.RUnlock()
	return calls
}

func (mock *entryStoreMock) Purge(ctx context.Context, id uuid.UUID, observedDeletedAt time.Time) (bool, error) {
	if mock.PurgeFunc == nil {
		panic("entryStoreMock.PurgeFunc: method is nil but entryStore.Purge was just called")
	}
	callInfo := struct {
		Ctx               context.Context
		ID                uuid.UUID
		ObservedDeletedAt time.Time
	}{Ctx: ctx, ID: id, ObservedDeletedAt: observedDeletedAt}
	mock.lockPurge.Lock()
	mock.calls.Purge = append(mock.calls.Purge, callInfo)
	mock.lockPurge.Unlock()
	return mock.PurgeFunc(ctx, id, observedDeletedAt)
}

func (mock *entryStoreMock) PurgeCalls() []struct {
	Ctx               context.Context
	ID                uuid.UUID
	ObservedDeletedAt time.Time
} {
	mock.lockPurge.RLock()
	calls := mock.calls.Purge
	mock.lockPurge.RUnlock()
	return calls
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteFunc func(ctx context.Context, path string) error

	calls struct {
		Delete []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Delete(ctx context.Context, path string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, path)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
