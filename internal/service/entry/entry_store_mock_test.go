package entry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	CreateFunc          func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	ListFunc            func(ctx context.Context, includeDeleted bool) ([]*domain.Entry, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByShareTokenFunc func(ctx context.Context, token string) (*domain.Entry, error)
	SoftDeleteFunc      func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	RestoreFunc         func(ctx context.Context, id uuid.UUID, ttl time.Duration) (*domain.Entry, error)
	SetShareTokenFunc   func(ctx context.Context, id uuid.UUID, token string) (*domain.Entry, error)
	ClearShareTokenFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
		List []struct {
			Ctx            context.Context
			IncludeDeleted bool
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByShareToken []struct {
			Ctx   context.Context
			Token string
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Restore []struct {
			Ctx context.Context
			ID  uuid.UUID
			TTL time.Duration
		}
		SetShareToken []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Token string
		}
		ClearShareToken []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockList            sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetByShareToken sync.RWMutex
	lockSoftDelete      sync.RWMutex
	lockRestore         sync.RWMutex
	lockSetShareToken   sync.RWMutex
	lockClearShareToken sync.RWMutex
}

func (mock *entryStoreMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryStoreMock.CreateFunc: method is nil but entryStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryStoreMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryStoreMock) List(ctx context.Context, includeDeleted bool) ([]*domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryStoreMock.ListFunc: method is nil but entryStore.List was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		IncludeDeleted bool
	}{Ctx: ctx, IncludeDeleted: includeDeleted}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, includeDeleted)
}

func (mock *entryStoreMock) ListCalls() []struct {
	Ctx            context.Context
	IncludeDeleted bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryStoreMock.GetByIDFunc: method is nil but entryStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryStoreMock) GetByShareToken(ctx context.Context, token string) (*domain.Entry, error) {
	if mock.GetByShareTokenFunc == nil {
		panic("entryStoreMock.GetByShareTokenFunc: method is nil but entryStore.GetByShareToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockGetByShareToken.Lock()
	mock.calls.GetByShareToken = append(mock.calls.GetByShareToken, callInfo)
	mock.lockGetByShareToken.Unlock()
	return mock.GetByShareTokenFunc(ctx, token)
}

func (mock *entryStoreMock) GetByShareTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetByShareToken.RLock()
	calls := mock.calls.GetByShareToken
	mock.lockGetByShareToken.RUnlock()
	return calls
}

func (mock *entryStoreMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.SoftDeleteFunc == nil {
		panic("entryStoreMock.SoftDeleteFunc: method is nil but entryStore.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *entryStoreMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *entryStoreMock) Restore(ctx context.Context, id uuid.UUID, ttl time.Duration) (*domain.Entry, error) {
	if mock.RestoreFunc == nil {
		panic("entryStoreMock.RestoreFunc: method is nil but entryStore.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		TTL time.Duration
	}{Ctx: ctx, ID: id, TTL: ttl}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, id, ttl)
}

func (mock *entryStoreMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	TTL time.Duration
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *entryStoreMock) SetShareToken(ctx context.Context, id uuid.UUID, token string) (*domain.Entry, error) {
	if mock.SetShareTokenFunc == nil {
		panic("entryStoreMock.SetShareTokenFunc: method is nil but entryStore.SetShareToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Token string
	}{Ctx: ctx, ID: id, Token: token}
	mock.lockSetShareToken.Lock()
	mock.calls.SetShareToken = append(mock.calls.SetShareToken, callInfo)
	mock.lockSetShareToken.Unlock()
	return mock.SetShareTokenFunc(ctx, id, token)
}

func (mock *entryStoreMock) SetShareTokenCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Token string
} {
	mock.lockSetShareToken.RLock()
	calls := mock.calls.SetShareToken
	mock.lockSetShareToken.RUnlock()
	return calls
}

func (mock *entryStoreMock) ClearShareToken(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.ClearShareTokenFunc == nil {
		panic("entryStoreMock.ClearShareTokenFunc: method is nil but entryStore.ClearShareToken was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockClearShareToken.Lock()
	mock.calls.ClearShareToken = append(mock.calls.ClearShareToken, callInfo)
	mock.lockClearShareToken.Unlock()
	return mock.ClearShareTokenFunc(ctx, id)
}

func (mock *entryStoreMock) ClearShareTokenCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockClearShareToken.RLock()
	calls := mock.calls.ClearShareToken
	mock.lockClearShareToken.RUnlock()
	return calls
}
