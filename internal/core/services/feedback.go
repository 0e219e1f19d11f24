package services

import (
	"context"
	"fmt"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/ports/driving"
)

// Ensure FeedbackService implements the interface.
var _ driving.FeedbackService = (*FeedbackService)(nil)

// FeedbackService appends user feedback to stored artefacts.
// Appends are independent of pipeline runs: any caller holding a
// content identity can submit feedback.
type FeedbackService struct {
	store driven.ArtefactStore
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(store driven.ArtefactStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Submit appends one feedback entry to the artefact at (id, kind).
// The submitter identity is required; rating and written feedback are
// each optional, but an entry carrying neither is rejected.
func (s *FeedbackService) Submit(ctx context.Context, id string, kind domain.ServiceKind, form driving.FeedbackForm) (string, error) {
	if form.User == "" {
		return "", fmt.Errorf("%w: feedback user is required", domain.ErrInvalidInput)
	}
	if form.Rating == "" && form.WrittenFeedback == "" {
		return "", fmt.Errorf("%w: feedback needs a rating or written feedback", domain.ErrInvalidInput)
	}
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}

	feedback := domain.Feedback{
		User:            form.User,
		Rating:          form.Rating,
		WrittenFeedback: form.WrittenFeedback,
	}

	return s.store.AppendFeedback(ctx, id, kind, feedback)
}
