package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/service/intake"
)

var _ intakeService = &intakeServiceMock{}

type intakeServiceMock struct {
	AdmitFunc  func(ctx context.Context, clientID string) error
	SubmitFunc func(ctx context.Context, in intake.SubmitInput) (*intake.Result, error)

	calls struct {
		Admit []struct {
			Ctx      context.Context
			ClientID string
		}
		Submit []struct {
			Ctx context.Context
			In  intake.SubmitInput
		}
	}
	lockAdmit  sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *intakeServiceMock) Admit(ctx context.Context, clientID string) error {
	if mock.AdmitFunc == nil {
		panic("intakeServiceMock.AdmitFunc: method is nil but intakeService.Admit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID string
	}{Ctx: ctx, ClientID: clientID}
	mock.lockAdmit.Lock()
	mock.calls.Admit = append(mock.calls.Admit, callInfo)
	mock.lockAdmit.Unlock()
	return mock.AdmitFunc(ctx, clientID)
}

func (mock *intakeServiceMock) AdmitCalls() []struct {
	Ctx      context.Context
	ClientID string
} {
	mock.lockAdmit.RLock()
	calls := mock.calls.Admit
	mock.lockAdmit.RUnlock()
	return calls
}

func (mock *intakeServiceMock) Submit(ctx context.Context, in intake.SubmitInput) (*intake.Result, error) {
	if mock.SubmitFunc == nil {
		panic("intakeServiceMock.SubmitFunc: method is nil but intakeService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  intake.SubmitInput
	}{Ctx: ctx, In: in}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, in)
}

func (mock *intakeServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	In  intake.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
