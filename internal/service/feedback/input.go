package feedback

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

const (
	MaxCorrectedTextLen = 10000
	MaxNotesLen         = 2000
)

// CreateInput holds parameters for submitting feedback.
type CreateInput struct {
	TripID        uuid.UUID
	VerbalizedID  *uuid.UUID
	Rating        int
	CorrectedText *string
	Notes         *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TripID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "trip_id", Message: "required"})
	}
	if i.VerbalizedID != nil && *i.VerbalizedID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "verbalized_id", Message: "must not be a nil id"})
	}
	errs = append(errs, validateRating(i.Rating)...)
	errs = append(errs, validateTexts(i.CorrectedText, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the optional fields of a feedback update.
type UpdateInput struct {
	Rating        *int
	CorrectedText *string
	Notes         *string
}

// Validate validates the update input. At least one field must be set.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Rating == nil && i.CorrectedText == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Rating != nil {
		errs = append(errs, validateRating(*i.Rating)...)
	}
	errs = append(errs, validateTexts(i.CorrectedText, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) patch() domain.FeedbackPatch {
	return domain.FeedbackPatch{Rating: i.Rating, CorrectedText: i.CorrectedText, Notes: i.Notes}
}

func validateRating(r int) []domain.FieldError {
	if r < domain.MinFeedbackRating || r > domain.MaxFeedbackRating {
		return []domain.FieldError{{Field: "rating", Message: "must be between 0 and 5"}}
	}
	return nil
}

func validateTexts(corrected, notes *string) []domain.FieldError {
	var errs []domain.FieldError
	if corrected != nil && utf8.RuneCountInString(*corrected) > MaxCorrectedTextLen {
		errs = append(errs, domain.FieldError{Field: "corrected_text", Message: "too long"})
	}
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	return errs
}
