// Package generation implements the concrete generation services:
// summarization, description, tagging, and translation.
//
// All four are the same generic Service composed with a per-kind
// prompt template and generation options; specialisation is data, not
// subtyping. Prompt templates are resolved through a PromptStore when
// one is configured, with embedded defaults as fallback.
package generation
