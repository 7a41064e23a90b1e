package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
	"github.com/heartmarshall/lead-intake/internal/service/inbox"
)

var _ inboxService = &inboxServiceMock{}

type inboxServiceMock struct {
	ReceiveFunc func(ctx context.Context, lead domain.Lead) (bool, error)
	ListFunc    func(ctx context.Context, input inbox.ListInput) ([]domain.InboxLead, int, error)

	calls struct {
		Receive []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
		List []struct {
			Ctx   context.Context
			Input inbox.ListInput
		}
	}
	lockReceive sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *inboxServiceMock) Receive(ctx context.Context, lead domain.Lead) (bool, error) {
	if mock.ReceiveFunc == nil {
		panic("inboxServiceMock.ReceiveFunc: method is nil but inboxService.Receive was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lead domain.Lead
	}{Ctx: ctx, Lead: lead}
	mock.lockReceive.Lock()
	mock.calls.Receive = append(mock.calls.Receive, callInfo)
	mock.lockReceive.Unlock()
	return mock.ReceiveFunc(ctx, lead)
}

func (mock *inboxServiceMock) ReceiveCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockReceive.RLock()
	calls := mock.calls.Receive
	mock.lockReceive.RUnlock()
	return calls
}

func (mock *inboxServiceMock) List(ctx context.Context, input inbox.ListInput) ([]domain.InboxLead, int, error) {
	if mock.ListFunc == nil {
		panic("inboxServiceMock.ListFunc: method is nil but inboxService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inbox.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *inboxServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input inbox.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
