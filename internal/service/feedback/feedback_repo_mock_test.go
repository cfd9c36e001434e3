package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc     func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	ListByTripFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, p domain.FeedbackPatch) (*domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.FeedbackPatch
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByTrip sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if mock.GetByIDFunc == nil {
		panic("feedbackRepoMock.GetByIDFunc: method is nil but feedbackRepo.GetByID was just called")
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

func (mock *feedbackRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error) {
	if mock.ListByTripFunc == nil {
		panic("feedbackRepoMock.ListByTripFunc: method is nil but feedbackRepo.ListByTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{Ctx: ctx, TripID: tripID}
	mock.lockListByTrip.Lock()
	mock.calls.ListByTrip = append(mock.calls.ListByTrip, callInfo)
	mock.lockListByTrip.Unlock()
	return mock.ListByTripFunc(ctx, tripID)
}

func (mock *feedbackRepoMock) ListByTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockListByTrip.RLock()
	calls := mock.calls.ListByTrip
	mock.lockListByTrip.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.FeedbackPatch) (*domain.Feedback, error) {
	if mock.UpdateFunc == nil {
		panic("feedbackRepoMock.UpdateFunc: method is nil but feedbackRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.FeedbackPatch
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *feedbackRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.FeedbackPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
