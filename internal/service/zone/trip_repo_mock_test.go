package zone

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/paulmach/orb"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	ListInBoundsFunc func(ctx context.Context, ownerID *uuid.UUID, bound orb.Bound) ([]domain.Trip, error)

	calls struct {
		ListInBounds []struct {
			Ctx     context.Context
			OwnerID *uuid.UUID
			Bound   orb.Bound
		}
	}
	lockListInBounds sync.RWMutex
}

func (mock *tripRepoMock) ListInBounds(ctx context.Context, ownerID *uuid.UUID, bound orb.Bound) ([]domain.Trip, error) {
	if mock.ListInBoundsFunc == nil {
		panic("tripRepoMock.ListInBoundsFunc: method is nil but tripRepo.ListInBounds was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *uuid.UUID
		Bound   orb.Bound
	}{Ctx: ctx, OwnerID: ownerID, Bound: bound}
	mock.lockListInBounds.Lock()
	mock.calls.ListInBounds = append(mock.calls.ListInBounds, callInfo)
	mock.lockListInBounds.Unlock()
	return mock.ListInBoundsFunc(ctx, ownerID, bound)
}

func (mock *tripRepoMock) ListInBoundsCalls() []struct {
	Ctx     context.Context
	OwnerID *uuid.UUID
	Bound   orb.Bound
} {
	mock.lockListInBounds.RLock()
	calls := mock.calls.ListInBounds
	mock.lockListInBounds.RUnlock()
	return calls
}
