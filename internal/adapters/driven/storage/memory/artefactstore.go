// Package memory provides in-memory implementations of the driven
// storage ports. Used by tests and available for wiring when no
// durable store is needed.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// Ensure ArtefactStore implements the interface.
var _ driven.ArtefactStore = (*ArtefactStore)(nil)

// ArtefactStore is an in-memory implementation of driven.ArtefactStore.
// A single mutex serialises the create-or-attach step, so concurrent
// first-writers for the same identity create exactly one base record.
type ArtefactStore struct {
	mu      sync.RWMutex
	records map[string]*domain.DocumentRecord
}

// NewArtefactStore creates a new in-memory artefact store.
func NewArtefactStore() *ArtefactStore {
	return &ArtefactStore{
		records: make(map[string]*domain.DocumentRecord),
	}
}

// Get retrieves the full record, embedded bytes included.
func (s *ArtefactStore) Get(_ context.Context, id string) (*domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneRecord(record, true), nil
}

// StoreServiceOutput implements the create-or-attach upsert.
func (s *ArtefactStore) StoreServiceOutput(_ context.Context, id string, kind domain.ServiceKind, artefact domain.Artefact, raw []byte, overwrite bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		// The only point at which raw bytes are written. Oversize
		// payloads are tracked by metadata only, not an error.
		var embedded []byte
		if len(raw) <= driven.MaxEmbeddedPayloadBytes {
			embedded = append([]byte(nil), raw...)
		}
		record = &domain.DocumentRecord{
			ID:        id,
			RawBytes:  embedded,
			Artefacts: make(map[domain.ServiceKind]domain.Artefact),
			CreatedAt: time.Now().UTC(),
		}
		s.records[id] = record
	}

	if _, exists := record.Artefacts[kind]; exists && !overwrite {
		return id, nil
	}

	stored := cloneArtefact(artefact)
	// Overwrite replaces the judgments tied to the old output.
	stored.Feedback = []domain.Feedback{}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	record.Artefacts[kind] = stored

	return id, nil
}

// AppendFeedback atomically appends one feedback entry.
func (s *ArtefactStore) AppendFeedback(_ context.Context, id string, kind domain.ServiceKind, feedback domain.Feedback) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return "", domain.ErrFeedbackTargetNotFound
	}
	artefact, ok := record.Artefacts[kind]
	if !ok {
		return "", domain.ErrFeedbackTargetNotFound
	}

	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	artefact.Feedback = append(artefact.Feedback, feedback)
	record.Artefacts[kind] = artefact

	return id, nil
}

// Retrieve returns the record, stripping embedded bytes by default.
func (s *ArtefactStore) Retrieve(_ context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneRecord(record, includeRaw), nil
}

// cloneRecord deep-copies a record so callers never alias store state.
func cloneRecord(record *domain.DocumentRecord, includeRaw bool) *domain.DocumentRecord {
	out := &domain.DocumentRecord{
		ID:        record.ID,
		Artefacts: make(map[domain.ServiceKind]domain.Artefact, len(record.Artefacts)),
		CreatedAt: record.CreatedAt,
	}
	if includeRaw && record.RawBytes != nil {
		out.RawBytes = append([]byte(nil), record.RawBytes...)
	}
	for kind, artefact := range record.Artefacts {
		out.Artefacts[kind] = cloneArtefact(artefact)
	}
	return out
}

// cloneArtefact copies an artefact's mutable fields.
func cloneArtefact(artefact domain.Artefact) domain.Artefact {
	out := artefact
	if artefact.Metadata != nil {
		out.Metadata = make(map[string]any, len(artefact.Metadata))
		for k, v := range artefact.Metadata {
			out.Metadata[k] = v
		}
	}
	if artefact.Feedback != nil {
		out.Feedback = append([]domain.Feedback(nil), artefact.Feedback...)
	}
	return out
}
