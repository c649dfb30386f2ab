package rest

import (
	"context"
	"github.com/heartmarshall/bugtracker/internal/domain"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	DeleteUserFunc func(ctx context.Context, id string) error
	GetProfileFunc func(ctx context.Context) (*domain.User, error)
	GetUserFunc    func(ctx context.Context, id string) (*domain.User, error)
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)

	calls struct {
		DeleteUser []struct {
			Ctx context.Context
			Id  string
		}
		GetProfile []struct {
			Ctx context.Context
		}
		GetUser []struct {
			Ctx context.Context
			Id  string
		}
		ListUsers []struct {
			Ctx context.Context
		}
	}
	lockDeleteUser sync.RWMutex
	lockGetProfile sync.RWMutex
	lockGetUser    sync.RWMutex
	lockListUsers  sync.RWMutex
}

func (mock *userServiceMock) DeleteUser(ctx context.Context, id string) error {
	if mock.DeleteUserFunc == nil {
		panic("userServiceMock.DeleteUserFunc: method is nil but userService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, id)
}

func (mock *userServiceMock) DeleteUserCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}
