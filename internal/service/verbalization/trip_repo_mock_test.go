package verbalization

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	ClaimVerbalizationFunc     func(ctx context.Context, id uuid.UUID, staleAfter time.Duration) error
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	SetVerbalizationStatusFunc func(ctx context.Context, id uuid.UUID, status domain.VerbalizationStatus) error

	calls struct {
		ClaimVerbalization []struct {
			Ctx        context.Context
			ID         uuid.UUID
			StaleAfter time.Duration
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetVerbalizationStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.VerbalizationStatus
		}
	}
	lockClaimVerbalization     sync.RWMutex
	lockGetByID                sync.RWMutex
	lockSetVerbalizationStatus sync.RWMutex
}

func (mock *tripRepoMock) ClaimVerbalization(ctx context.Context, id uuid.UUID, staleAfter time.Duration) error {
	if mock.ClaimVerbalizationFunc == nil {
		panic("tripRepoMock.ClaimVerbalizationFunc: method is nil but tripRepo.ClaimVerbalization was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		StaleAfter time.Duration
	}{Ctx: ctx, ID: id, StaleAfter: staleAfter}
	mock.lockClaimVerbalization.Lock()
	mock.calls.ClaimVerbalization = append(mock.calls.ClaimVerbalization, callInfo)
	mock.lockClaimVerbalization.Unlock()
	return mock.ClaimVerbalizationFunc(ctx, id, staleAfter)
}

func (mock *tripRepoMock) ClaimVerbalizationCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	StaleAfter time.Duration
} {
	mock.lockClaimVerbalization.RLock()
	calls := mock.calls.ClaimVerbalization
	mock.lockClaimVerbalization.RUnlock()
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

func (mock *tripRepoMock) SetVerbalizationStatus(ctx context.Context, id uuid.UUID, status domain.VerbalizationStatus) error {
	if mock.SetVerbalizationStatusFunc == nil {
		panic("tripRepoMock.SetVerbalizationStatusFunc: method is nil but tripRepo.SetVerbalizationStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.VerbalizationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetVerbalizationStatus.Lock()
	mock.calls.SetVerbalizationStatus = append(mock.calls.SetVerbalizationStatus, callInfo)
	mock.lockSetVerbalizationStatus.Unlock()
	return mock.SetVerbalizationStatusFunc(ctx, id, status)
}

func (mock *tripRepoMock) SetVerbalizationStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.VerbalizationStatus
} {
	mock.lockSetVerbalizationStatus.RLock()
	calls := mock.calls.SetVerbalizationStatus
	mock.lockSetVerbalizationStatus.RUnlock()
	return calls
}
