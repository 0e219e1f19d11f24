package driven

import "context"

// LoadedDocument is a document read exactly once from its source:
// the raw payload plus the text extracted from it.
type LoadedDocument struct {
	// Path is the source file reference.
	Path string

	// MIMEType is the detected content type.
	MIMEType string

	// Raw is the original payload.
	Raw []byte

	// Text is the extracted plain text, shared read-only by every
	// generation service in a pipeline run.
	Text string
}

// Loader reads one document and extracts its text. A Loader is bound
// to a single source; the pipeline calls Load exactly once per run.
type Loader interface {
	// Load reads the document bytes and extracts the text.
	Load(ctx context.Context) (*LoadedDocument, error)

	// Path returns the source file reference without loading.
	Path() string
}
