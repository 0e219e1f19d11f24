package services

import (
	"context"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService reads stored document records.
type RecordService struct {
	store driven.ArtefactStore
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.ArtefactStore) *RecordService {
	return &RecordService{store: store}
}

// Get retrieves a record by content identity. The embedded raw bytes
// are stripped unless includeRaw is set.
func (s *RecordService) Get(ctx context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error) {
	return s.store.Retrieve(ctx, id, includeRaw)
}
