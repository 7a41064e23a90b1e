package intake

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

var _ leadStore = &leadStoreMock{}

type leadStoreMock struct {
	AppendFunc func(ctx context.Context, lead domain.Lead) error

	calls struct {
		Append []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
	}
	lockAppend sync.RWMutex
}

func (mock *leadStoreMock) Append(ctx context.Context, lead domain.Lead) error {
	if mock.AppendFunc == nil {
		panic("leadStoreMock.AppendFunc: method is nil but leadStore.Append was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lead domain.Lead
	}{Ctx: ctx, Lead: lead}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, lead)
}

func (mock *leadStoreMock) AppendCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
