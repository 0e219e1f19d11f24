package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Default hash window sizes in bytes.
const (
	DefaultFirstWindow = 512
	DefaultLastWindow  = 512
)

// ContentHasher derives a document's stable content identity from its
// bytes. The identity is independent of filename and upload instance.
//
// Rather than digesting the whole payload, the hasher digests the
// concatenation of the first FirstWindow and last LastWindow bytes.
// This is a deliberate trade-off: full-file collision resistance is
// given up for constant cost on large documents, on the assumption
// that headers and trailers differentiate the target corpus. The
// result is NOT a full-content checksum and must not be treated as one.
type ContentHasher struct {
	// FirstWindow is the number of leading bytes digested.
	FirstWindow int

	// LastWindow is the number of trailing bytes digested.
	LastWindow int
}

// NewContentHasher creates a hasher with the default window sizes.
func NewContentHasher() ContentHasher {
	return ContentHasher{
		FirstWindow: DefaultFirstWindow,
		LastWindow:  DefaultLastWindow,
	}
}

// Identity returns the hex-encoded SHA-256 of the payload's first and
// last windows. A payload shorter than LastWindow contributes all of
// its bytes as both windows, so short payloads hash payload+payload.
// Deterministic for a given payload across calls and processes.
func (h ContentHasher) Identity(payload []byte) string {
	first := payload
	if len(payload) > h.FirstWindow {
		first = payload[:h.FirstWindow]
	}

	last := payload
	if len(payload) >= h.LastWindow {
		last = payload[len(payload)-h.LastWindow:]
	}

	digest := sha256.New()
	digest.Write(first)
	digest.Write(last)

	return hex.EncodeToString(digest.Sum(nil))
}
