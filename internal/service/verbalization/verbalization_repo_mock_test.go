package verbalization

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ verbalizationRepo = &verbalizationRepoMock{}

type verbalizationRepoMock struct {
	CreateFunc func(ctx context.Context, v *domain.VerbalizedTrip) (*domain.VerbalizedTrip, error)
	LatestFunc func(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.VerbalizedTrip
		}
		Latest []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockLatest sync.RWMutex
}

func (mock *verbalizationRepoMock) Create(ctx context.Context, v *domain.VerbalizedTrip) (*domain.VerbalizedTrip, error) {
	if mock.CreateFunc == nil {
		panic("verbalizationRepoMock.CreateFunc: method is nil but verbalizationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.VerbalizedTrip
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *verbalizationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.VerbalizedTrip
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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
