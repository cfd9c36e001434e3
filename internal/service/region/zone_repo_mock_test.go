package region

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ zoneRepo = &zoneRepoMock{}

type zoneRepoMock struct {
	MissingIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		MissingIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockMissingIDs sync.RWMutex
}

func (mock *zoneRepoMock) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.MissingIDsFunc == nil {
		panic("zoneRepoMock.MissingIDsFunc: method is nil but zoneRepo.MissingIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockMissingIDs.Lock()
	mock.calls.MissingIDs = append(mock.calls.MissingIDs, callInfo)
	mock.lockMissingIDs.Unlock()
	return mock.MissingIDsFunc(ctx, ids)
}

func (mock *zoneRepoMock) MissingIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockMissingIDs.RLock()
	calls := mock.calls.MissingIDs
	mock.lockMissingIDs.RUnlock()
	return calls
}
