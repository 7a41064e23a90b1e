package inbox

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	ConfiguredFunc func() bool
	SendFunc       func(ctx context.Context, lead domain.Lead) error

	calls struct {
		Configured []struct{}
		Send []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
	}
	lockConfigured sync.RWMutex
	lockSend       sync.RWMutex
}

func (mock *notifierMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("notifierMock.ConfiguredFunc: method is nil but notifier.Configured was just called")
	}
	callInfo := struct{}{}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, callInfo)
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *notifierMock) ConfiguredCalls() []struct{} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *notifierMock) Send(ctx context.Context, lead domain.Lead) error {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lead domain.Lead
	}{Ctx: ctx, Lead: lead}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, lead)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
