package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFeedbackTargetNotFound indicates a feedback append targeted a
	// document identity or artefact kind with no stored record. The
	// store checks the match explicitly; a silent no-match append is a
	// bug, never an outcome.
	ErrFeedbackTargetNotFound = errors.New("feedback target not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoServices indicates a pipeline was constructed with an empty
	// service list. Caught at construction, before any I/O.
	ErrNoServices = errors.New("no generation services configured")

	// ErrNoLoader indicates a pipeline was constructed without a loader.
	ErrNoLoader = errors.New("no loader configured")

	// ErrNoStore indicates a pipeline was constructed without a store.
	ErrNoStore = errors.New("no artefact store configured")

	// ErrUnsupportedKind indicates an unknown service kind.
	ErrUnsupportedKind = errors.New("unsupported service kind")

	// ErrModelUnavailable indicates the generation model is not
	// configured or unreachable.
	ErrModelUnavailable = errors.New("generation model unavailable")
)
