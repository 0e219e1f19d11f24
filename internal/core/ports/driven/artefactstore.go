package driven

import (
	"context"

	"github.com/tessella-labs/tessella/internal/core/domain"
)

// MaxEmbeddedPayloadBytes is the ceiling on raw-payload embedding.
// Payloads over this size still get a record; only the bytes are left
// out. The value is the backing document size cap of the store the
// record shape was designed for (~16 MiB).
const MaxEmbeddedPayloadBytes = 16_793_598

// ArtefactStore persists document records keyed by content identity.
// Backed by SQLite in production, with an in-memory twin for tests.
//
// Implementations must serialise concurrent create-or-attach calls for
// the same identity: at most one base record is ever created per id.
type ArtefactStore interface {
	// Get retrieves the full record, embedded bytes included.
	// Returns domain.ErrNotFound if no record matches.
	Get(ctx context.Context, id string) (*domain.DocumentRecord, error)

	// StoreServiceOutput is the central upsert. If no record exists for
	// id, it creates one, embedding raw only when it fits
	// MaxEmbeddedPayloadBytes; this creation is the only point at which
	// raw bytes are written. Then the artefact at kind is set when the
	// kind is absent or overwrite is true; otherwise the call leaves
	// the existing artefact untouched. Overwriting resets the
	// artefact's feedback list.
	//
	// Identical ids are assumed to carry identical content: raw bytes
	// passed on later calls for an existing id are ignored.
	StoreServiceOutput(ctx context.Context, id string, kind domain.ServiceKind, artefact domain.Artefact, raw []byte, overwrite bool) (string, error)

	// AppendFeedback atomically appends one feedback entry to
	// artefacts[kind]. The store assigns CreatedAt when the caller left
	// it zero. Returns domain.ErrFeedbackTargetNotFound when id or
	// kind matches nothing; the no-match case is checked, never
	// silently swallowed.
	AppendFeedback(ctx context.Context, id string, kind domain.ServiceKind, feedback domain.Feedback) (string, error)

	// Retrieve returns the record for id. Unless includeRaw is set, the
	// embedded bytes are stripped from the returned view; records
	// stored without embedded bytes are returned the same way.
	Retrieve(ctx context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error)
}
