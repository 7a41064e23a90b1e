package intake

import (
	"context"
	"sync"
)

var _ rateLimiter = &rateLimiterMock{}

type rateLimiterMock struct {
	AllowFunc func(ctx context.Context, clientID string) bool

	calls struct {
		Allow []struct {
			Ctx      context.Context
			ClientID string
		}
	}
	lockAllow sync.RWMutex
}

func (mock *rateLimiterMock) Allow(ctx context.Context, clientID string) bool {
	if mock.AllowFunc == nil {
		panic("rateLimiterMock.AllowFunc: method is nil but rateLimiter.Allow was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID string
	}{Ctx: ctx, ClientID: clientID}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(ctx, clientID)
}

func (mock *rateLimiterMock) AllowCalls() []struct {
	Ctx      context.Context
	ClientID string
} {
	mock.lockAllow.RLock()
	calls := mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
