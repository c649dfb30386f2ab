package rest

import (
	"context"
	"github.com/heartmarshall/bugtracker/internal/domain"
	bugsvc "github.com/heartmarshall/bugtracker/internal/service/bug"
	"io"
	"sync"
)

var _ bugService = &bugServiceMock{}

type bugServiceMock struct {
	CreateBugFunc func(ctx context.Context, input bugsvc.BugInput) (*domain.Bug, error)
	DeleteBugFunc func(ctx context.Context, id string) error
	ExportPDFFunc func(ctx context.Context, w io.Writer) error
	GetBugFunc    func(ctx context.Context, id string) (*domain.Bug, error)
	QueryPageFunc func(ctx context.Context, f domain.BugFilter) (*bugsvc.QueryResult, error)
	UpdateBugFunc func(ctx context.Context, id string, input bugsvc.BugInput) (*domain.Bug, error)

	calls struct {
		CreateBug []struct {
			Ctx   context.Context
			Input bugsvc.BugInput
		}
		DeleteBug []struct {
			Ctx context.Context
			Id  string
		}
		ExportPDF []struct {
			Ctx context.Context
			W   io.Writer
		}
		GetBug []struct {
			Ctx context.Context
			Id  string
		}
		QueryPage []struct {
			Ctx context.Context
			F   domain.BugFilter
		}
		UpdateBug []struct {
			Ctx   context.Context
			Id    string
			Input bugsvc.BugInput
		}
	}
	lockCreateBug sync.RWMutex
	lockDeleteBug sync.RWMutex
	lockExportPDF sync.RWMutex
	lockGetBug    sync.RWMutex
	lockQueryPage sync.RWMutex
	lockUpdateBug sync.RWMutex
}

func (mock *bugServiceMock) CreateBug(ctx context.Context, input bugsvc.BugInput) (*domain.Bug, error) {
	if mock.CreateBugFunc == nil {
		panic("bugServiceMock.CreateBugFunc: method is nil but bugService.CreateBug was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input bugsvc.BugInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBug.Lock()
	mock.calls.CreateBug = append(mock.calls.CreateBug, callInfo)
	mock.lockCreateBug.Unlock()
	return mock.CreateBugFunc(ctx, input)
}

func (mock *bugServiceMock) CreateBugCalls() []struct {
	Ctx   context.Context
	Input bugsvc.BugInput
} {
	mock.lockCreateBug.RLock()
	calls := mock.calls.CreateBug
	mock.lockCreateBug.RUnlock()
	return calls
}

func (mock *bugServiceMock) DeleteBug(ctx context.Context, id string) error {
	if mock.DeleteBugFunc == nil {
		panic("bugServiceMock.DeleteBugFunc: method is nil but bugService.DeleteBug was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDeleteBug.Lock()
	mock.calls.DeleteBug = append(mock.calls.DeleteBug, callInfo)
	mock.lockDeleteBug.Unlock()
	return mock.DeleteBugFunc(ctx, id)
}

func (mock *bugServiceMock) DeleteBugCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDeleteBug.RLock()
	calls := mock.calls.DeleteBug
	mock.lockDeleteBug.RUnlock()
	return calls
}

func (mock *bugServiceMock) ExportPDF(ctx context.Context, w io.Writer) error {
	if mock.ExportPDFFunc == nil {
		panic("bugServiceMock.ExportPDFFunc: method is nil but bugService.ExportPDF was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   io.Writer
	}{Ctx: ctx, W: w}
	mock.lockExportPDF.Lock()
	mock.calls.ExportPDF = append(mock.calls.ExportPDF, callInfo)
	mock.lockExportPDF.Unlock()
	return mock.ExportPDFFunc(ctx, w)
}

func (mock *bugServiceMock) ExportPDFCalls() []struct {
	Ctx context.Context
	W   io.Writer
} {
	mock.lockExportPDF.RLock()
	calls := mock.calls.ExportPDF
	mock.lockExportPDF.RUnlock()
	return calls
}

func (mock *bugServiceMock) GetBug(ctx context.Context, id string) (*domain.Bug, error) {
	if mock.GetBugFunc == nil {
		panic("bugServiceMock.GetBugFunc: method is nil but bugService.GetBug was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetBug.Lock()
	mock.calls.GetBug = append(mock.calls.GetBug, callInfo)
	mock.lockGetBug.Unlock()
	return mock.GetBugFunc(ctx, id)
}

func (mock *bugServiceMock) GetBugCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetBug.RLock()
	calls := mock.calls.GetBug
	mock.lockGetBug.RUnlock()
	return calls
}

func (mock *bugServiceMock) QueryPage(ctx context.Context, f domain.BugFilter) (*bugsvc.QueryResult, error) {
	if mock.QueryPageFunc == nil {
		panic("bugServiceMock.QueryPageFunc: method is nil but bugService.QueryPage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.BugFilter
	}{Ctx: ctx, F: f}
	mock.lockQueryPage.Lock()
	mock.calls.QueryPage = append(mock.calls.QueryPage, callInfo)
	mock.lockQueryPage.Unlock()
	return mock.QueryPageFunc(ctx, f)
}

func (mock *bugServiceMock) QueryPageCalls() []struct {
	Ctx context.Context
	F   domain.BugFilter
} {
	mock.lockQueryPage.RLock()
	calls := mock.calls.QueryPage
	mock.lockQueryPage.RUnlock()
	return calls
}

func (mock *bugServiceMock) UpdateBug(ctx context.Context, id string, input bugsvc.BugInput) (*domain.Bug, error) {
	if mock.UpdateBugFunc == nil {
		panic("bugServiceMock.UpdateBugFunc: method is nil but bugService.UpdateBug was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    string
		Input bugsvc.BugInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateBug.Lock()
	mock.calls.UpdateBug = append(mock.calls.UpdateBug, callInfo)
	mock.lockUpdateBug.Unlock()
	return mock.UpdateBugFunc(ctx, id, input)
}

func (mock *bugServiceMock) UpdateBugCalls() []struct {
	Ctx   context.Context
	Id    string
	Input bugsvc.BugInput
} {
	mock.lockUpdateBug.RLock()
	calls := mock.calls.UpdateBug
	mock.lockUpdateBug.RUnlock()
	return calls
}
