package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/zone"
)

var _ zoneService = &zoneServiceMock{}

type zoneServiceMock struct {
	CreateFunc      func(ctx context.Context, input zone.ZoneInput) (*domain.Zone, error)
	UpdateFunc      func(ctx context.Context, zoneID uuid.UUID, input zone.ZoneInput) (*domain.Zone, error)
	DeleteFunc      func(ctx context.Context, zoneID uuid.UUID) error
	GetFunc         func(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error)
	ListFunc        func(ctx context.Context, input zone.ListInput) ([]domain.Zone, int, error)
	TripsInZoneFunc func(ctx context.Context, zoneID uuid.UUID) ([]domain.Trip, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input zone.ZoneInput
		}
		Update []struct {
			Ctx    context.Context
			ZoneID uuid.UUID
			Input  zone.ZoneInput
		}
		Delete []struct {
			Ctx    context.Context
			ZoneID uuid.UUID
		}
		Get []struct {
			Ctx    context.Context
			ZoneID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input zone.ListInput
		}
		TripsInZone []struct {
			Ctx    context.Context
			ZoneID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGet         sync.RWMutex
	lockList        sync.RWMutex
	lockTripsInZone sync.RWMutex
}

func (mock *zoneServiceMock) Create(ctx context.Context, input zone.ZoneInput) (*domain.Zone, error) {
	if mock.CreateFunc == nil {
		panic("zoneServiceMock.CreateFunc: method is nil but zoneService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input zone.ZoneInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *zoneServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input zone.ZoneInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *zoneServiceMock) Update(ctx context.Context, zoneID uuid.UUID, input zone.ZoneInput) (*domain.Zone, error) {
	if mock.UpdateFunc == nil {
		panic("zoneServiceMock.UpdateFunc: method is nil but zoneService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ZoneID uuid.UUID
		Input  zone.ZoneInput
	}{Ctx: ctx, ZoneID: zoneID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, zoneID, input)
}

func (mock *zoneServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	ZoneID uuid.UUID
	Input  zone.ZoneInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *zoneServiceMock) Delete(ctx context.Context, zoneID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("zoneServiceMock.DeleteFunc: method is nil but zoneService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ZoneID uuid.UUID
	}{Ctx: ctx, ZoneID: zoneID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, zoneID)
}

func (mock *zoneServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	ZoneID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *zoneServiceMock) Get(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error) {
	if mock.GetFunc == nil {
		panic("zoneServiceMock.GetFunc: method is nil but zoneService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ZoneID uuid.UUID
	}{Ctx: ctx, ZoneID: zoneID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, zoneID)
}

func (mock *zoneServiceMock) GetCalls() []struct {
	Ctx    context.Context
	ZoneID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *zoneServiceMock) List(ctx context.Context, input zone.ListInput) ([]domain.Zone, int, error) {
	if mock.ListFunc == nil {
		panic("zoneServiceMock.ListFunc: method is nil but zoneService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input zone.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *zoneServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input zone.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *zoneServiceMock) TripsInZone(ctx context.Context, zoneID uuid.UUID) ([]domain.Trip, error) {
	if mock.TripsInZoneFunc == nil {
		panic("zoneServiceMock.TripsInZoneFunc: method is nil but zoneService.TripsInZone was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ZoneID uuid.UUID
	}{Ctx: ctx, ZoneID: zoneID}
	mock.lockTripsInZone.Lock()
	mock.calls.TripsInZone = append(mock.calls.TripsInZone, callInfo)
	mock.lockTripsInZone.Unlock()
	return mock.TripsInZoneFunc(ctx, zoneID)
}

func (mock *zoneServiceMock) TripsInZoneCalls() []struct {
	Ctx    context.Context
	ZoneID uuid.UUID
} {
	mock.lockTripsInZone.RLock()
	calls := mock.calls.TripsInZone
	mock.lockTripsInZone.RUnlock()
	return calls
}
