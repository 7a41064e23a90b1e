package inbox

import (
	"context"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

var _ leadRepo = &leadRepoMock{}

type leadRepoMock struct {
	InsertFunc func(ctx context.Context, lead domain.Lead) (bool, error)
	ListFunc   func(ctx context.Context, limit int, offset int) ([]domain.InboxLead, int, error)

	calls struct {
		Insert []struct {
			Ctx  context.Context
			Lead domain.Lead
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockInsert sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *leadRepoMock) Insert(ctx context.Context, lead domain.Lead) (bool, error) {
	if mock.InsertFunc == nil {
		panic("leadRepoMock.InsertFunc: method is nil but leadRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lead domain.Lead
	}{Ctx: ctx, Lead: lead}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, lead)
}

func (mock *leadRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Lead domain.Lead
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *leadRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.InboxLead, int, error) {
	if mock.ListFunc == nil {
		panic("leadRepoMock.ListFunc: method is nil but leadRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *leadRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
