// Package extractors provides text extraction from raw document bytes.
//
// Each subpackage implements driven.TextExtractor for a MIME family;
// the Registry selects the highest-priority extractor for a document's
// MIME type, falling back to plain text for anything unrecognised.
package extractors
