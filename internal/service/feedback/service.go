// Package feedback records analyst reviews of trips and their narratives.
package feedback

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	Update(ctx context.Context, id uuid.UUID, p domain.FeedbackPatch) (*domain.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error)
}

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

type verbalizationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VerbalizedTrip, error)
}

type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Service implements feedback operations.
type Service struct {
	log            *slog.Logger
	feedback       feedbackRepo
	trips          tripRepo
	verbalizations verbalizationRepo
	gate           accessGate
}

// NewService creates a new feedback service instance.
func NewService(
	logger *slog.Logger,
	feedback feedbackRepo,
	trips tripRepo,
	verbalizations verbalizationRepo,
	gate accessGate,
) *Service {
	return &Service{
		log:            logger.With("service", "feedback"),
		feedback:       feedback,
		trips:          trips,
		verbalizations: verbalizations,
		gate:           gate,
	}
}

var (
	opCreate = access.Operation{Resource: access.ResourceFeedback, Action: access.ActionCreate}
	opRead   = access.Operation{Resource: access.ResourceFeedback, Action: access.ActionRead}
	opUpdate = access.Operation{Resource: access.ResourceFeedback, Action: access.ActionUpdate}
)
