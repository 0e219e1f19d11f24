package file

import (
	"os"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// Configuration keys for the model backend and pipeline defaults.
const (
	KeyModelProvider  = "model.provider"
	KeyModelName      = "model.name"
	KeyModelBaseURL   = "model.base_url"
	KeyModelAPIKey    = "model.api_key"
	KeyServices       = "processing.services"
	KeyTargetLanguage = "processing.target_language"
)

// envOpenAIKey overrides the configured API key when set.
const envOpenAIKey = "OPENAI_API_KEY"

// ModelSettingsFrom resolves model backend settings from configuration.
// The OPENAI_API_KEY environment variable takes precedence over the
// configured key, so secrets can stay out of the config file.
func ModelSettingsFrom(cfg driven.ConfigStore) domain.ModelSettings {
	settings := domain.ModelSettings{
		Provider: domain.ModelProvider(cfg.GetString(KeyModelProvider)),
		Model:    cfg.GetString(KeyModelName),
		BaseURL:  cfg.GetString(KeyModelBaseURL),
		APIKey:   cfg.GetString(KeyModelAPIKey),
	}

	if key := os.Getenv(envOpenAIKey); key != "" {
		settings.APIKey = key
	}

	// No provider configured means a local Ollama default.
	if settings.Provider == "" {
		settings.Provider = domain.ProviderOllama
	}

	return settings
}

// ProcessingSettingsFrom resolves pipeline defaults from configuration.
// An empty or invalid service list falls back to every supported kind,
// in canonical order.
func ProcessingSettingsFrom(cfg driven.ConfigStore) domain.ProcessingSettings {
	settings := domain.ProcessingSettings{
		TargetLanguage: cfg.GetString(KeyTargetLanguage),
	}

	for _, name := range cfg.GetStringSlice(KeyServices) {
		kind, err := domain.ParseServiceKind(name)
		if err != nil {
			continue
		}
		settings.Services = append(settings.Services, kind)
	}

	if len(settings.Services) == 0 {
		settings.Services = domain.AllServiceKinds()
	}
	if settings.TargetLanguage == "" {
		settings.TargetLanguage = "English"
	}

	return settings
}
