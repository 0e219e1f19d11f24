package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/ports/driving"
	"github.com/tessella-labs/tessella/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.ProcessService = (*Pipeline)(nil)

// Pipeline runs an ordered list of generation services over one
// document and persists each service's output as an artefact on the
// document's record.
//
// The document is loaded exactly once per run; every service reads the
// same extracted-text snapshot. Services run in configured order and
// must be independent: no service may depend on another's output
// within one run.
type Pipeline struct {
	loader   driven.Loader
	store    driven.ArtefactStore
	services []driven.GenerationService
	hasher   domain.ContentHasher
}

// NewPipeline creates a pipeline. A missing loader or store and an
// empty service list are construction-time errors; nothing is loaded
// or written before validation passes.
func NewPipeline(loader driven.Loader, store driven.ArtefactStore, generationServices []driven.GenerationService) (*Pipeline, error) {
	if loader == nil {
		return nil, domain.ErrNoLoader
	}
	if store == nil {
		return nil, domain.ErrNoStore
	}
	if len(generationServices) == 0 {
		return nil, domain.ErrNoServices
	}

	return &Pipeline{
		loader:   loader,
		store:    store,
		services: generationServices,
		hasher:   domain.NewContentHasher(),
	}, nil
}

// ExecuteServices loads the document, computes its content identity,
// runs each configured service against the shared text, and stores
// every output with overwrite semantics: re-running a pipeline is
// expected to refresh every configured service's artefact.
//
// The first failing service aborts the run; artefacts already stored
// by earlier services in the same run are kept, and there is no retry.
// On success the full merged record is returned, including artefacts
// from services not part of this run.
func (p *Pipeline) ExecuteServices(ctx context.Context) (*domain.DocumentRecord, error) {
	loaded, err := p.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", p.loader.Path(), err)
	}

	id := p.hasher.Identity(loaded.Raw)
	logger.Debug("document %s -> identity %s (%d bytes, %d services)",
		loaded.Path, id, len(loaded.Raw), len(p.services))

	for _, service := range p.services {
		if err := p.executeService(ctx, service, id, loaded); err != nil {
			return nil, err
		}
	}

	record, err := p.store.Retrieve(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("retrieving record %s: %w", id, err)
	}
	return record, nil
}

// executeService runs one service and stores its output on the record.
func (p *Pipeline) executeService(ctx context.Context, service driven.GenerationService, id string, loaded *driven.LoadedDocument) error {
	kind := service.Kind()
	logger.Debug("running %s on %s", kind, id)

	result, err := service.Run(ctx, loaded.Text)
	if err != nil {
		return fmt.Errorf("service %s on document %s: %w", kind, id, err)
	}

	artefact := domain.Artefact{
		GeneratedID: generatedID(result),
		Content:     result.Content,
		Metadata:    service.Metadata(loaded.Path, result),
		Feedback:    []domain.Feedback{},
	}

	if _, err := p.store.StoreServiceOutput(ctx, id, kind, artefact, loaded.Raw, true); err != nil {
		return fmt.Errorf("storing %s output for document %s: %w", kind, id, err)
	}
	return nil
}

// generatedID prefers the provider-assigned generation id and mints
// one when the provider returned none.
func generatedID(result *driven.GenerationResult) string {
	if result.ID != "" {
		return result.ID
	}
	return uuid.New().String()
}
