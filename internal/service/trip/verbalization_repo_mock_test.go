package trip

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ verbalizationRepo = &verbalizationRepoMock{}

type verbalizationRepoMock struct {
	LatestFunc func(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)

	calls struct {
		Latest []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockLatest sync.RWMutex
}

func (mock *verbalizationRepoMock) Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	if mock.LatestFunc == nil {
		panic("verbalizationRepoMock.LatestFunc: method is nil but verbalizationRepo.Latest was just called")
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

func (mock *verbalizationRepoMock) LatestCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}
