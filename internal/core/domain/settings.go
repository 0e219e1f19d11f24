package domain

const unknownDescription = "Unknown"

// ModelProvider identifies a generation model backend.
type ModelProvider string

// Available model providers.
const (
	// ProviderOllama is a local Ollama server.
	ProviderOllama ModelProvider = "ollama"

	// ProviderOpenAI is the OpenAI API.
	ProviderOpenAI ModelProvider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p ModelProvider) IsValid() bool {
	switch p {
	case ProviderOllama, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if the provider needs an API key.
func (p ModelProvider) RequiresAPIKey() bool {
	return p == ProviderOpenAI
}

// String returns the string representation.
func (p ModelProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p ModelProvider) Description() string {
	switch p {
	case ProviderOllama:
		return "Ollama (local)"
	case ProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// ModelSettings holds generation model configuration.
type ModelSettings struct {
	// Provider is the model backend.
	Provider ModelProvider

	// Model is the model name (e.g. "llama3.1", "gpt-4o-mini").
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the model backend is set up.
func (m ModelSettings) IsConfigured() bool {
	if !m.Provider.IsValid() {
		return false
	}
	if m.Provider.RequiresAPIKey() && m.APIKey == "" {
		return false
	}
	return true
}

// ProcessingSettings holds pipeline defaults resolved from configuration.
type ProcessingSettings struct {
	// Services is the default ordered service list for a run.
	Services []ServiceKind

	// TargetLanguage is the translation target (e.g. "German").
	TargetLanguage string
}
