package driving

import (
	"context"

	"github.com/tessella-labs/tessella/internal/core/domain"
)

// FeedbackForm is a user's judgment on one stored artefact.
type FeedbackForm struct {
	// User is the submitter identity. Required.
	User string

	// Rating is an optional structured judgment.
	Rating string

	// WrittenFeedback is an optional free-text judgment.
	WrittenFeedback string
}

// FeedbackService appends user feedback to stored artefacts.
type FeedbackService interface {
	// Submit appends one feedback entry to the artefact at (id, kind).
	// Returns domain.ErrFeedbackTargetNotFound when no such artefact
	// exists.
	Submit(ctx context.Context, id string, kind domain.ServiceKind, form FeedbackForm) (string, error)
}
