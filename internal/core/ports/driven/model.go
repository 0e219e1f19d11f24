package driven

import "context"

// GenerationModel is the external text-generation backend behind every
// generation service.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI (GPT family)
type GenerationModel interface {
	// Generate produces a completion for the prompt, with provenance
	// metadata from the underlying call.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (*GenerationResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight
	// request. Used at startup before committing to a run.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// GenerationResult is one completion plus its provenance.
type GenerationResult struct {
	// ID is the provider-assigned identifier of the generation.
	// May be empty; callers mint their own when it is.
	ID string

	// Content is the generated text.
	Content string

	// ResponseMetadata carries provider response fields
	// (model name, finish reason, durations).
	ResponseMetadata map[string]any

	// UsageMetadata carries token accounting
	// (input_tokens, output_tokens, total_tokens).
	UsageMetadata map[string]any
}
