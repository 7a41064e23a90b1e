package delivery

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

var _ channel = &channelMock{}

type channelMock struct {
	NameFunc       func() domain.ChannelKind
	ConfiguredFunc func() bool
	SendFunc       func(ctx context.Context, lead domain.Lead) error

	calls struct {
		Name       []struct{}
		Configured []struct{}
		Send       []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
	}
	lockName       sync.RWMutex
	lockConfigured sync.RWMutex
	lockSend       sync.RWMutex
}

func (mock *channelMock) Name() domain.ChannelKind {
	if mock.NameFunc == nil {
		panic("channelMock.NameFunc: method is nil but channel.Name was just called")
	}
	callInfo := struct{}{}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, callInfo)
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *channelMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *channelMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("channelMock.ConfiguredFunc: method is nil but channel.Configured was just called")
	}
	callInfo := struct{}{}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, callInfo)
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *channelMock) ConfiguredCalls() []struct{} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *channelMock) Send(ctx context.Context, lead domain.Lead) error {
	if mock.SendFunc == nil {
		panic("channelMock.SendFunc: method is nil but channel.Send was just called")
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

func (mock *channelMock) SendCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
