package extractors

import (
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// Registry selects a TextExtractor by MIME type.
type Registry struct {
	extractors []driven.TextExtractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(extractor driven.TextExtractor) {
	r.extractors = append(r.extractors, extractor)
}

// ForMIMEType returns the highest-priority extractor supporting the
// MIME type, or nil if none matches.
func (r *Registry) ForMIMEType(mimeType string) driven.TextExtractor {
	var best driven.TextExtractor
	for _, extractor := range r.extractors {
		if !supports(extractor, mimeType) {
			continue
		}
		if best == nil || extractor.Priority() > best.Priority() {
			best = extractor
		}
	}
	return best
}

// supports reports whether the extractor handles the MIME type.
func supports(extractor driven.TextExtractor, mimeType string) bool {
	for _, supported := range extractor.SupportedMIMETypes() {
		if supported == mimeType {
			return true
		}
	}
	return false
}
