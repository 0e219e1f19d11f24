package driven

import "context"

// TextExtractor converts raw document bytes into plain text.
// Each extractor handles specific MIME types (e.g., Markdown).
type TextExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// MIME-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract converts raw bytes to plain text.
	Extract(ctx context.Context, raw []byte) (string, error)
}
