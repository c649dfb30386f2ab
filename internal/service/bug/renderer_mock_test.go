package bug

import (
	"github.com/heartmarshall/bugtracker/internal/domain"
	"io"
	"sync"
)

var _ renderer = &rendererMock{}

type rendererMock struct {
	RenderFunc func(w io.Writer, bugs []domain.Bug) error

	calls struct {
		Render []struct {
			W    io.Writer
			Bugs []domain.Bug
		}
	}
	lockRender sync.RWMutex
}

func (mock *rendererMock) Render(w io.Writer, bugs []domain.Bug) error {
	if mock.RenderFunc == nil {
		panic("rendererMock.RenderFunc: method is nil but renderer.Render was just called")
	}
	callInfo := struct {
		W    io.Writer
		Bugs []domain.Bug
	}{W: w, Bugs: bugs}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(w, bugs)
}

func (mock *rendererMock) RenderCalls() []struct {
	W    io.Writer
	Bugs []domain.Bug
} {
	mock.lockRender.RLock()
	calls := mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}
