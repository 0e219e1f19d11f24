package driven

import (
	"context"

	"github.com/tessella-labs/tessella/internal/core/domain"
)

// GenerationService turns extracted document text into one generated
// artefact's worth of output. The pipeline treats all services
// polymorphically over this capability set; concrete services differ
// only in prompt construction and service-specific parameters.
//
// A service must be stateless across documents (safe to reuse or to
// construct per request) and must not itself perform storage.
type GenerationService interface {
	// Run invokes the underlying generation call with the shared
	// extracted text.
	Run(ctx context.Context, text string) (*GenerationResult, error)

	// Kind returns the artefact-kind key this service stores under.
	Kind() domain.ServiceKind

	// Metadata describes the generation's provenance: the source file
	// reference, the response/usage metadata of the generation call,
	// and any service-specific parameters.
	Metadata(file string, result *GenerationResult) map[string]any
}
