package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/trip"
)

var _ tripService = &tripServiceMock{}

type tripServiceMock struct {
	CreateFunc      func(ctx context.Context, input trip.CreateInput) (*domain.Trip, error)
	GetFunc         func(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error)
	SearchFunc      func(ctx context.Context, input trip.SearchInput) ([]domain.Trip, int, error)
	UpdateTimesFunc func(ctx context.Context, tripID uuid.UUID, input trip.UpdateTimesInput) (*domain.Trip, error)
	DeleteFunc      func(ctx context.Context, tripID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input trip.CreateInput
		}
		Get []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		Search []struct {
			Ctx   context.Context
			Input trip.SearchInput
		}
		UpdateTimes []struct {
			Ctx    context.Context
			TripID uuid.UUID
			Input  trip.UpdateTimesInput
		}
		Delete []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGet         sync.RWMutex
	lockSearch      sync.RWMutex
	lockUpdateTimes sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *tripServiceMock) Create(ctx context.Context, input trip.CreateInput) (*domain.Trip, error) {
	if mock.CreateFunc == nil {
		panic("tripServiceMock.CreateFunc: method is nil but tripService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trip.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *tripServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input trip.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tripServiceMock) Get(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	if mock.GetFunc == nil {
		panic("tripServiceMock.GetFunc: method is nil but tripService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tripID)
}

func (mock *tripServiceMock) GetCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *tripServiceMock) Search(ctx context.Context, input trip.SearchInput) ([]domain.Trip, int, error) {
	if mock.SearchFunc == nil {
		panic("tripServiceMock.SearchFunc: method is nil but tripService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trip.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *tripServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input trip.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *tripServiceMock) UpdateTimes(ctx context.Context, tripID uuid.UUID, input trip.UpdateTimesInput) (*domain.Trip, error) {
	if mock.UpdateTimesFunc == nil {
		panic("tripServiceMock.UpdateTimesFunc: method is nil but tripService.UpdateTimes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
		Input  trip.UpdateTimesInput
	}{Ctx: ctx, TripID: tripID, Input: input}
	mock.lockUpdateTimes.Lock()
	mock.calls.UpdateTimes = append(mock.calls.UpdateTimes, callInfo)
	mock.lockUpdateTimes.Unlock()
	return mock.UpdateTimesFunc(ctx, tripID, input)
}

func (mock *tripServiceMock) UpdateTimesCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	Input  trip.UpdateTimesInput
} {
	mock.lockUpdateTimes.RLock()
	calls := mock.calls.UpdateTimes
	mock.lockUpdateTimes.RUnlock()
	return calls
}

func (mock *tripServiceMock) Delete(ctx context.Context, tripID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tripServiceMock.DeleteFunc: method is nil but tripService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tripID)
}

func (mock *tripServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
