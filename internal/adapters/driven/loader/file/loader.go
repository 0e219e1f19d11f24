// Package file provides a filesystem-backed Loader.
//
// The loader reads the document bytes exactly once, maps the file
// extension to a MIME type, and extracts text with the matching
// extractor from the registry.
package file

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/extractors"
	"github.com/tessella-labs/tessella/internal/extractors/plaintext"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader reads one file from disk and extracts its text.
type Loader struct {
	path     string
	registry *extractors.Registry
}

// NewLoader creates a loader for the file at path. A nil registry
// falls back to the default extractor set.
func NewLoader(path string, registry *extractors.Registry) (*Loader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: loader path is required", domain.ErrInvalidInput)
	}
	if registry == nil {
		registry = extractors.DefaultRegistry()
	}
	return &Loader{path: path, registry: registry}, nil
}

// Path returns the source file reference.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the file and extracts its text. The raw payload and the
// extracted text are both produced here, once; the pipeline shares
// them across every service in a run.
func (l *Loader) Load(ctx context.Context) (*driven.LoadedDocument, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}

	mimeType := mimeTypeForPath(l.path)

	extractor := l.registry.ForMIMEType(mimeType)
	if extractor == nil {
		// Unrecognised types are read as plain text.
		extractor = plaintext.New()
	}

	text, err := extractor.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", l.path, err)
	}

	return &driven.LoadedDocument{
		Path:     l.path,
		MIMEType: mimeType,
		Raw:      raw,
		Text:     text,
	}, nil
}

// mimeTypeForPath maps a file extension to a MIME type.
// Content sniffing is out of scope; the extension is authoritative
// here, with text/plain as the default.
func mimeTypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return "text/markdown"
	case "":
		return "text/plain"
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "text/plain"
	}
	// Drop parameters like "; charset=utf-8".
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}
