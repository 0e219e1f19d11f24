package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// Ensure Service implements the interface.
var _ driven.GenerationService = (*Service)(nil)

// descriptionMaxTokens caps description output length.
const descriptionMaxTokens = 150

// Service is a generic generation service: one prompt template applied
// to the document text and sent to a GenerationModel. Stateless across
// documents; safe to reuse or to construct per request.
type Service struct {
	kind       domain.ServiceKind
	promptName string
	model      driven.GenerationModel
	prompts    driven.PromptStore
	opts       driven.GenerateOptions
	params     map[string]any

	// buildPrompt renders the template with the document text.
	// The default substitutes the text as the single %s argument.
	buildPrompt func(template, text string) string
}

// NewSummarizer creates the summarization service.
func NewSummarizer(model driven.GenerationModel, prompts driven.PromptStore) *Service {
	return &Service{
		kind:       domain.KindSummarization,
		promptName: driven.PromptSummarization,
		model:      model,
		prompts:    prompts,
	}
}

// NewDescriber creates the description service. Output is capped to a
// short description-sized token budget.
func NewDescriber(model driven.GenerationModel, prompts driven.PromptStore) *Service {
	return &Service{
		kind:       domain.KindDescription,
		promptName: driven.PromptDescription,
		model:      model,
		prompts:    prompts,
		opts:       driven.GenerateOptions{MaxTokens: descriptionMaxTokens},
	}
}

// NewTagger creates the tagging service.
func NewTagger(model driven.GenerationModel, prompts driven.PromptStore) *Service {
	return &Service{
		kind:       domain.KindTagging,
		promptName: driven.PromptTagging,
		model:      model,
		prompts:    prompts,
	}
}

// NewTranslator creates the translation service for a target language.
// The target language is a service-specific parameter and is recorded
// in artefact metadata.
func NewTranslator(model driven.GenerationModel, prompts driven.PromptStore, targetLanguage string) *Service {
	return &Service{
		kind:       domain.KindTranslation,
		promptName: driven.PromptTranslation,
		model:      model,
		prompts:    prompts,
		params:     map[string]any{"target_language": targetLanguage},
		buildPrompt: func(template, text string) string {
			return fmt.Sprintf(template, targetLanguage, text)
		},
	}
}

// NewForKind creates the service for a known kind.
// Returns domain.ErrUnsupportedKind for anything else.
func NewForKind(kind domain.ServiceKind, model driven.GenerationModel, prompts driven.PromptStore, targetLanguage string) (*Service, error) {
	switch kind {
	case domain.KindSummarization:
		return NewSummarizer(model, prompts), nil
	case domain.KindDescription:
		return NewDescriber(model, prompts), nil
	case domain.KindTagging:
		return NewTagger(model, prompts), nil
	case domain.KindTranslation:
		return NewTranslator(model, prompts, targetLanguage), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
}

// Kind returns the artefact-kind key this service stores under.
func (s *Service) Kind() domain.ServiceKind {
	return s.kind
}

// Run renders the prompt and invokes the model. The returned result
// always carries a generation id; one is minted when the provider
// returned none.
func (s *Service) Run(ctx context.Context, text string) (*driven.GenerationResult, error) {
	prompt := s.renderPrompt(text)

	result, err := s.model.Generate(ctx, prompt, s.opts)
	if err != nil {
		return nil, fmt.Errorf("%s generation: %w", s.kind, err)
	}
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	return result, nil
}

// Metadata describes the generation's provenance: source file, model
// identity, response/usage metadata of the call, and the service's own
// parameters.
func (s *Service) Metadata(file string, result *driven.GenerationResult) map[string]any {
	metadata := map[string]any{
		"input_file":   file,
		"service_type": s.kind.String(),
		"model":        s.model.ModelName(),
		"prompt":       s.promptName,
	}
	for k, v := range result.ResponseMetadata {
		metadata[k] = v
	}
	for k, v := range result.UsageMetadata {
		metadata[k] = v
	}
	for k, v := range s.params {
		metadata[k] = v
	}
	return metadata
}

// renderPrompt loads the template and substitutes the document text.
// Falls back to the embedded default when no store is configured or
// the load fails.
func (s *Service) renderPrompt(text string) string {
	template := ""
	if s.prompts != nil {
		if loaded, err := s.prompts.Load(s.promptName); err == nil {
			template = loaded
		}
	}
	if template == "" {
		template, _ = DefaultPrompt(s.promptName)
	}

	if s.buildPrompt != nil {
		return s.buildPrompt(template, text)
	}
	return fmt.Sprintf(template, text)
}
