package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
