package verbalization

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ narrator = &narratorMock{}

type narratorMock struct {
	GenerateFunc func(ctx context.Context, system string, prompt string) (domain.Completion, error)
	ModelFunc    func() string

	calls struct {
		Generate []struct {
			Ctx    context.Context
			System string
			Prompt string
		}
		Model []struct{}
	}
	lockGenerate sync.RWMutex
	lockModel    sync.RWMutex
}

func (mock *narratorMock) Generate(ctx context.Context, system string, prompt string) (domain.Completion, error) {
	if mock.GenerateFunc == nil {
		panic("narratorMock.GenerateFunc: method is nil but narrator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		System string
		Prompt string
	}{Ctx: ctx, System: system, Prompt: prompt}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, system, prompt)
}

func (mock *narratorMock) GenerateCalls() []struct {
	Ctx    context.Context
	System string
	Prompt string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *narratorMock) Model() string {
	if mock.ModelFunc == nil {
		panic("narratorMock.ModelFunc: method is nil but narrator.Model was just called")
	}
	mock.lockModel.Lock()
	mock.calls.Model = append(mock.calls.Model, struct{}{})
	mock.lockModel.Unlock()
	return mock.ModelFunc()
}

func (mock *narratorMock) ModelCalls() []struct{} {
	mock.lockModel.RLock()
	calls := mock.calls.Model
	mock.lockModel.RUnlock()
	return calls
}
