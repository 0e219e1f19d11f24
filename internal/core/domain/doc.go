// Package domain defines the core business entities for Tessella.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRecord: A stored document keyed by content identity
//   - Artefact: One generation service's output against a document
//   - Feedback: A user judgment appended to an artefact
//   - ContentHasher: Derives the stable content identity of a payload
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
