package verbalization

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ locationCache = &locationCacheMock{}

type locationCacheMock struct {
	GetFunc    func(ctx context.Context, lat float64, lon float64) (*domain.Location, error)
	UpsertFunc func(ctx context.Context, l *domain.Location) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Lat float64
			Lon float64
		}
		Upsert []struct {
			Ctx context.Context
			L   *domain.Location
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *locationCacheMock) Get(ctx context.Context, lat float64, lon float64) (*domain.Location, error) {
	if mock.GetFunc == nil {
		panic("locationCacheMock.GetFunc: method is nil but locationCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lat float64
		Lon float64
	}{Ctx: ctx, Lat: lat, Lon: lon}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, lat, lon)
}

func (mock *locationCacheMock) GetCalls() []struct {
	Ctx context.Context
	Lat float64
	Lon float64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *locationCacheMock) Upsert(ctx context.Context, l *domain.Location) error {
	if mock.UpsertFunc == nil {
		panic("locationCacheMock.UpsertFunc: method is nil but locationCache.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Location
	}{Ctx: ctx, L: l}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, l)
}

func (mock *locationCacheMock) UpsertCalls() []struct {
	Ctx context.Context
	L   *domain.Location
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
