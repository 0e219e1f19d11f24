package driven

// PromptStore provides access to generation prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used by the generation services.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptSummarization condenses document text into a summary.
	// The template expects a %s placeholder for the document text.
	PromptSummarization = "summarization"

	// PromptDescription produces a short description of the document.
	// The template expects a %s placeholder for the document text.
	PromptDescription = "description"

	// PromptTagging produces topical tags for the document.
	// The template expects a %s placeholder for the document text.
	PromptTagging = "tagging"

	// PromptTranslation translates the document text.
	// The template expects %s (target language) and %s (document text)
	// placeholders, in that order.
	PromptTranslation = "translation"
)
