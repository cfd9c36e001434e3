package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ verbalizationService = &verbalizationServiceMock{}

type verbalizationServiceMock struct {
	VerbalizeFunc func(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
	LatestFunc    func(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
	HistoryFunc   func(ctx context.Context, tripID uuid.UUID) ([]domain.AICallRecord, error)

	calls struct {
		Verbalize []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		Latest []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		History []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockVerbalize sync.RWMutex
	lockLatest    sync.RWMutex
	lockHistory   sync.RWMutex
}

func (mock *verbalizationServiceMock) Verbalize(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	if mock.VerbalizeFunc == nil {
		panic("verbalizationServiceMock.VerbalizeFunc: method is nil but verbalizationService.Verbalize was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockVerbalize.Lock()
	mock.calls.Verbalize = append(mock.calls.Verbalize, callInfo)
	mock.lockVerbalize.Unlock()
	return mock.VerbalizeFunc(ctx, tripID)
}

func (mock *verbalizationServiceMock) VerbalizeCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockVerbalize.RLock()
	calls := mock.calls.Verbalize
	mock.lockVerbalize.RUnlock()
	return calls
}

func (mock *verbalizationServiceMock) Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	if mock.LatestFunc == nil {
		panic("verbalizationServiceMock.LatestFunc: method is nil but verbalizationService.Latest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, tripID)
}

func (mock *verbalizationServiceMock) LatestCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *verbalizationServiceMock) History(ctx context.Context, tripID uuid.UUID) ([]domain.AICallRecord, error) {
	if mock.HistoryFunc == nil {
		panic("verbalizationServiceMock.HistoryFunc: method is nil but verbalizationService.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, tripID)
}

func (mock *verbalizationServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
