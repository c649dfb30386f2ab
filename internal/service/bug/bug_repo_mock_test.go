package bug

import (
	"context"
	"github.com/heartmarshall/bugtracker/internal/domain"
	"sync"
)

var _ bugRepo = &bugRepoMock{}

type bugRepoMock struct {
	CreateFunc  func(ctx context.Context, b *domain.Bug) (*domain.Bug, error)
	DeleteFunc  func(ctx context.Context, id string) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Bug, error)
	ListFunc    func(ctx context.Context) ([]domain.Bug, error)
	ReplaceFunc func(ctx context.Context, b *domain.Bug) (*domain.Bug, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.Bug
		}
		Delete []struct {
			Ctx context.Context
			Id  string
		}
		GetByID []struct {
			Ctx context.Context
			Id  string
		}
		List []struct {
			Ctx context.Context
		}
		Replace []struct {
			Ctx context.Context
			B   *domain.Bug
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockReplace sync.RWMutex
}

func (mock *bugRepoMock) Create(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	if mock.CreateFunc == nil {
		panic("bugRepoMock.CreateFunc: method is nil but bugRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bug
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bugRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Bug
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bugRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("bugRepoMock.DeleteFunc: method is nil but bugRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *bugRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *bugRepoMock) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	if mock.GetByIDFunc == nil {
		panic("bugRepoMock.GetByIDFunc: method is nil but bugRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bugRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *bugRepoMock) List(ctx context.Context) ([]domain.Bug, error) {
	if mock.ListFunc == nil {
		panic("bugRepoMock.ListFunc: method is nil but bugRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *bugRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *bugRepoMock) Replace(ctx context.Context, b *domain.Bug) (*domain.Bug, error) {
	if mock.ReplaceFunc == nil {
		panic("bugRepoMock.ReplaceFunc: method is nil but bugRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bug
	}{Ctx: ctx, B: b}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, b)
}

func (mock *bugRepoMock) ReplaceCalls() []struct {
	Ctx context.Context
	B   *domain.Bug
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
