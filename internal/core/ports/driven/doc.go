// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ArtefactStore: Document record persistence and the upsert/merge protocol
//   - Loader: Reads a document once and extracts its text
//   - TextExtractor: Converts raw bytes of one MIME family to plain text
//   - GenerationModel: The external text-generation backend
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: User-customisable prompt templates. Without it,
//     services fall back to their embedded default prompts.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, loader, or extractor package
package driven
