package intake

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

var _ deliverer = &delivererMock{}

type delivererMock struct {
	DeliverFunc func(ctx context.Context, lead domain.Lead) bool

	calls struct {
		Deliver []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
	}
	lockDeliver sync.RWMutex
}

func (mock *delivererMock) Deliver(ctx context.Context, lead domain.Lead) bool {
	if mock.DeliverFunc == nil {
		panic("delivererMock.DeliverFunc: method is nil but deliverer.Deliver was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lead domain.Lead
	}{Ctx: ctx, Lead: lead}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, lead)
}

func (mock *delivererMock) DeliverCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockDeliver.RLock()
	calls := mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}
