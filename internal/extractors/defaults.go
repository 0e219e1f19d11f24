package extractors

import (
	"github.com/tessella-labs/tessella/internal/extractors/markdown"
	"github.com/tessella-labs/tessella/internal/extractors/plaintext"
)

// DefaultRegistry returns a registry with the built-in extractors.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(markdown.New())
	return registry
}
