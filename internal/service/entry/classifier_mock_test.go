package entry

import (
	"context"
	"sync"

	"github.com/fieldpost/backend/internal/domain"
)

var _ classifier = &classifierMock{}

type classifierMock struct {
	ClassifyFunc func(ctx context.Context, data []byte, mime string) (*domain.Classification, error)

	calls struct {
		Classify []struct {
			Ctx  context.Context
			Data []byte
			MIME string
		}
	}
	lockClassify sync.RWMutex
}

func (mock *classifierMock) Classify(ctx context.Context, data []byte, mime string) (*domain.Classification, error) {
	if mock.ClassifyFunc == nil {
		panic("classifierMock.ClassifyFunc: method is nil but classifier.Classify was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Data []byte
		MIME string
	}{Ctx: ctx, Data: data, MIME: mime}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, data, mime)
}

func (mock *classifierMock) ClassifyCalls() []struct {
	Ctx  context.Context
	Data []byte
	MIME string
} {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}
