package entry

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	SaveFunc   func(ctx context.Context, id uuid.UUID, data []byte, mime string) (string, error)
	OpenFunc   func(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, path string) error

	calls struct {
		Save []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Data []byte
			MIME string
		}
		Open []struct {
			Ctx  context.Context
			Path string
		}
		Delete []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockSave   sync.RWMutex
	lockOpen   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Save(ctx context.Context, id uuid.UUID, data []byte, mime string) (string, error) {
	if mock.SaveFunc == nil {
		panic("blobStoreMock.SaveFunc: method is nil but blobStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Data []byte
		MIME string
	}{Ctx: ctx, ID: id, Data: data, MIME: mime}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, id, data, mime)
}

func (mock *blobStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Data []byte
	MIME string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *blobStoreMock) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if mock.OpenFunc == nil {
		panic("blobStoreMock.OpenFunc: method is nil but blobStore.Open was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, path)
}

func (mock *blobStoreMock) OpenCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
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
