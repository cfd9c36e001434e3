package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	CreateFunc     func(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error)
	ListByTripFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error)
	UpdateFunc     func(ctx context.Context, feedbackID uuid.UUID, input feedback.UpdateInput) (*domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input feedback.CreateInput
		}
		ListByTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		Update []struct {
			Ctx        context.Context
			FeedbackID uuid.UUID
			Input      feedback.UpdateInput
		}
	}
	lockCreate     sync.RWMutex
	lockListByTrip sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *feedbackServiceMock) Create(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackServiceMock.CreateFunc: method is nil but feedbackService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *feedbackServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input feedback.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error) {
	if mock.ListByTripFunc == nil {
		panic("feedbackServiceMock.ListByTripFunc: method is nil but feedbackService.ListByTrip was just called")
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

func (mock *feedbackServiceMock) ListByTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockListByTrip.RLock()
	calls := mock.calls.ListByTrip
	mock.lockListByTrip.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Update(ctx context.Context, feedbackID uuid.UUID, input feedback.UpdateInput) (*domain.Feedback, error) {
	if mock.UpdateFunc == nil {
		panic("feedbackServiceMock.UpdateFunc: method is nil but feedbackService.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FeedbackID uuid.UUID
		Input      feedback.UpdateInput
	}{Ctx: ctx, FeedbackID: feedbackID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, feedbackID, input)
}

func (mock *feedbackServiceMock) UpdateCalls() []struct {
	Ctx        context.Context
	FeedbackID uuid.UUID
	Input      feedback.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
