// Package ai provides factory functions for creating generation model adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	ollamallm "github.com/tessella-labs/tessella/internal/adapters/driven/llm/ollama"
	openaillm "github.com/tessella-labs/tessella/internal/adapters/driven/llm/openai"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for backend connectivity validation.
const pingTimeout = 5 * time.Second

// CreateGenerationModel creates the appropriate generation model based on settings.
// Returns nil if no provider is configured.
func CreateGenerationModel(settings *domain.ModelSettings) (driven.GenerationModel, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.ProviderOllama:
		return createOllamaModel(settings), nil

	case domain.ProviderOpenAI:
		return createOpenAIModel(settings)

	default:
		return nil, fmt.Errorf("unsupported model provider: %s", settings.Provider)
	}
}

// CreateAndValidateGenerationModel creates a generation model and validates
// connectivity before any document work starts.
// Returns the model if successful, or an error with guidance.
func CreateAndValidateGenerationModel(settings *domain.ModelSettings) (driven.GenerationModel, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: no provider configured. Set [model] in the config file",
			domain.ErrModelUnavailable)
	}

	model, err := CreateGenerationModel(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := model.Ping(ctx); err != nil {
		model.Close()
		return nil, fmt.Errorf("%w: backend unreachable (%w)", domain.ErrModelUnavailable, err)
	}

	return model, nil
}

// createOllamaModel creates an Ollama generation model.
func createOllamaModel(settings *domain.ModelSettings) driven.GenerationModel {
	return ollamallm.New(ollamallm.Config{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createOpenAIModel creates an OpenAI generation model.
func createOpenAIModel(settings *domain.ModelSettings) (driven.GenerationModel, error) {
	return openaillm.New(openaillm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}
