package driving

import (
	"context"

	"github.com/tessella-labs/tessella/internal/core/domain"
)

// ProcessService runs the configured generation services over one
// document and persists their artefacts.
type ProcessService interface {
	// ExecuteServices loads the document once, runs every configured
	// service in order, and returns the full merged record: all
	// artefacts stored to date, not just this run's.
	ExecuteServices(ctx context.Context) (*domain.DocumentRecord, error)
}

// RecordService reads stored document records.
type RecordService interface {
	// Get retrieves a record by content identity. The embedded raw
	// bytes are stripped unless includeRaw is set.
	Get(ctx context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error)
}
