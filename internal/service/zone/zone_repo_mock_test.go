package zone

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ zoneRepo = &zoneRepoMock{}

type zoneRepoMock struct {
	CreateFunc  func(ctx context.Context, z *domain.Zone) (*domain.Zone, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	ListFunc    func(ctx context.Context, nameLike string, limit int, offset int) ([]domain.Zone, int, error)
	UpdateFunc  func(ctx context.Context, z *domain.Zone) (*domain.Zone, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Z   *domain.Zone
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			NameLike string
			Limit    int
			Offset   int
		}
		Update []struct {
			Ctx context.Context
			Z   *domain.Zone
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *zoneRepoMock) Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	if mock.CreateFunc == nil {
		panic("zoneRepoMock.CreateFunc: method is nil but zoneRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Z   *domain.Zone
	}{Ctx: ctx, Z: z}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, z)
}

func (mock *zoneRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Z   *domain.Zone
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *zoneRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("zoneRepoMock.DeleteFunc: method is nil but zoneRepo.Delete was just called")
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

func (mock *zoneRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *zoneRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	if mock.GetByIDFunc == nil {
		panic("zoneRepoMock.GetByIDFunc: method is nil but zoneRepo.GetByID was just called")
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

func (mock *zoneRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *zoneRepoMock) List(ctx context.Context, nameLike string, limit int, offset int) ([]domain.Zone, int, error) {
	if mock.ListFunc == nil {
		panic("zoneRepoMock.ListFunc: method is nil but zoneRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		NameLike string
		Limit    int
		Offset   int
	}{Ctx: ctx, NameLike: nameLike, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, nameLike, limit, offset)
}

func (mock *zoneRepoMock) ListCalls() []struct {
	Ctx      context.Context
	NameLike string
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *zoneRepoMock) Update(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	if mock.UpdateFunc == nil {
		panic("zoneRepoMock.UpdateFunc: method is nil but zoneRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Z   *domain.Zone
	}{Ctx: ctx, Z: z}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, z)
}

func (mock *zoneRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Z   *domain.Zone
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
