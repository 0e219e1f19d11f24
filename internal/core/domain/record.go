package domain

import "time"

// DocumentRecord is the unit of storage, keyed by content identity.
// A record is created at most once per identity; later pipeline runs
// against the same bytes locate and extend the same record.
type DocumentRecord struct {
	// ID is the stable content hash of the document bytes.
	// Immutable once the record is created.
	ID string

	// RawBytes is the original payload. It is embedded only when the
	// payload fits the store's size ceiling, and only at record
	// creation. Nil when the payload was oversize or when the caller
	// asked for the stripped view.
	RawBytes []byte

	// Artefacts maps a service kind to its stored output.
	// At most one artefact per kind is retained.
	Artefacts map[ServiceKind]Artefact

	// CreatedAt is when the record was first created.
	CreatedAt time.Time
}

// Artefact is one generation service's output against one document.
type Artefact struct {
	// GeneratedID identifies the underlying generation result,
	// for dedup and audit.
	GeneratedID string

	// Content is the generated text.
	Content string

	// Metadata carries generation provenance: input file reference,
	// model identity, response and usage metadata, and any
	// service-specific parameters.
	Metadata map[string]any

	// Feedback is the ordered, append-only list of user judgments.
	// It is never truncated or reordered; overwriting the artefact
	// resets it.
	Feedback []Feedback

	// CreatedAt is when this artefact version was stored.
	CreatedAt time.Time
}

// Feedback is a user judgment on one artefact. At least one of Rating
// and WrittenFeedback should be present; neither is mechanically
// required.
type Feedback struct {
	// User is the submitter identity.
	User string

	// Rating is an optional structured judgment.
	Rating string

	// WrittenFeedback is an optional free-text judgment.
	WrittenFeedback string

	// CreatedAt is assigned by the store at append time when the
	// caller leaves it zero. Never overwritten afterwards.
	CreatedAt time.Time
}
