package user

import (
	"context"
	"sync"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	RevokeAllByUserFunc func(ctx context.Context, userID string) error

	calls struct {
		RevokeAllByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockRevokeAllByUser sync.RWMutex
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID string) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockRevokeAllByUser.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, callInfo)
	mock.lockRevokeAllByUser.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockRevokeAllByUser.RLock()
	calls := mock.calls.RevokeAllByUser
	mock.lockRevokeAllByUser.RUnlock()
	return calls
}
