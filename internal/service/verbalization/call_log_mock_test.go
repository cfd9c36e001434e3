package verbalization

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ callLog = &callLogMock{}

type callLogMock struct {
	AppendFunc     func(ctx context.Context, rec domain.AICallRecord) error
	ListByTripFunc func(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec domain.AICallRecord
		}
		ListByTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
			Limit  int
		}
	}
	lockAppend     sync.RWMutex
	lockListByTrip sync.RWMutex
}

func (mock *callLogMock) Append(ctx context.Context, rec domain.AICallRecord) error {
	if mock.AppendFunc == nil {
		panic("callLogMock.AppendFunc: method is nil but callLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AICallRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *callLogMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.AICallRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *callLogMock) ListByTrip(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error) {
	if mock.ListByTripFunc == nil {
		panic("callLogMock.ListByTripFunc: method is nil but callLog.ListByTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
		Limit  int
	}{Ctx: ctx, TripID: tripID, Limit: limit}
	mock.lockListByTrip.Lock()
	mock.calls.ListByTrip = append(mock.calls.ListByTrip, callInfo)
	mock.lockListByTrip.Unlock()
	return mock.ListByTripFunc(ctx, tripID, limit)
}

func (mock *callLogMock) ListByTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
	Limit  int
} {
	mock.lockListByTrip.RLock()
	calls := mock.calls.ListByTrip
	mock.lockListByTrip.RUnlock()
	return calls
}
