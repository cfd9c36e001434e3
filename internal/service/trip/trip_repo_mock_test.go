package trip

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	CreateFunc      func(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	SearchFunc      func(ctx context.Context, f domain.TripFilter) ([]domain.Trip, int, error)
	UpdateTimesFunc func(ctx context.Context, id uuid.UUID, start time.Time, end time.Time, markStale bool) (*domain.Trip, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Trip
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx context.Context
			F   domain.TripFilter
		}
		UpdateTimes []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Start     time.Time
			End       time.Time
			MarkStale bool
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockSearch      sync.RWMutex
	lockUpdateTimes sync.RWMutex
}

func (mock *tripRepoMock) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	if mock.CreateFunc == nil {
		panic("tripRepoMock.CreateFunc: method is nil but tripRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Trip
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tripRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Trip
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tripRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tripRepoMock.DeleteFunc: method is nil but tripRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tripRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tripRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	if mock.GetByIDFunc == nil {
		panic("tripRepoMock.GetByIDFunc: method is nil but tripRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tripRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tripRepoMock) Search(ctx context.Context, f domain.TripFilter) ([]domain.Trip, int, error) {
	if mock.SearchFunc == nil {
		panic("tripRepoMock.SearchFunc: method is nil but tripRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TripFilter
	}{Ctx: ctx, F: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *tripRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.TripFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *tripRepoMock) UpdateTimes(ctx context.Context, id uuid.UUID, start time.Time, end time.Time, markStale bool) (*domain.Trip, error) {
	if mock.UpdateTimesFunc == nil {
		panic("tripRepoMock.UpdateTimesFunc: method is nil but tripRepo.UpdateTimes was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Start     time.Time
		End       time.Time
		MarkStale bool
	}{Ctx: ctx, ID: id, Start: start, End: end, MarkStale: markStale}
	mock.lockUpdateTimes.Lock()
	mock.calls.UpdateTimes = append(mock.calls.UpdateTimes, callInfo)
	mock.lockUpdateTimes.Unlock()
	return mock.UpdateTimesFunc(ctx, id, start, end, markStale)
}

func (mock *tripRepoMock) UpdateTimesCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Start     time.Time
	End       time.Time
	MarkStale bool
} {
	mock.lockUpdateTimes.RLock()
	calls := mock.calls.UpdateTimes
	mock.lockUpdateTimes.RUnlock()
	return calls
}
