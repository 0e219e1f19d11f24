package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessella-labs/tessella/internal/adapters/driven/storage/memory"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// fakeLoader serves a fixed document and counts loads.
type fakeLoader struct {
	raw   []byte
	text  string
	err   error
	loads int
}

func (l *fakeLoader) Load(context.Context) (*driven.LoadedDocument, error) {
	l.loads++
	if l.err != nil {
		return nil, l.err
	}
	return &driven.LoadedDocument{
		Path:     "/tmp/doc.txt",
		MIMEType: "text/plain",
		Raw:      l.raw,
		Text:     l.text,
	}, nil
}

func (l *fakeLoader) Path() string { return "/tmp/doc.txt" }

// fakeService returns fixed content and records the text it saw.
type fakeService struct {
	kind     domain.ServiceKind
	content  string
	genID    string
	err      error
	runs     int
	seenText string
}

func (s *fakeService) Run(_ context.Context, text string) (*driven.GenerationResult, error) {
	s.runs++
	s.seenText = text
	if s.err != nil {
		return nil, s.err
	}
	return &driven.GenerationResult{
		ID:      s.genID,
		Content: s.content,
		UsageMetadata: map[string]any{
			"total_tokens": 7,
		},
	}, nil
}

func (s *fakeService) Kind() domain.ServiceKind { return s.kind }

func (s *fakeService) Metadata(file string, _ *driven.GenerationResult) map[string]any {
	return map[string]any{
		"input_file":   file,
		"service_type": s.kind.String(),
	}
}

func TestNewPipeline_Validation(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{}
	svc := &fakeService{kind: domain.KindTagging}

	_, err := NewPipeline(nil, store, []driven.GenerationService{svc})
	assert.ErrorIs(t, err, domain.ErrNoLoader)

	_, err = NewPipeline(loader, nil, []driven.GenerationService{svc})
	assert.ErrorIs(t, err, domain.ErrNoStore)

	_, err = NewPipeline(loader, store, nil)
	assert.ErrorIs(t, err, domain.ErrNoServices)

	// Construction does no I/O.
	assert.Zero(t, loader.loads)

	pipeline, err := NewPipeline(loader, store, []driven.GenerationService{svc})
	require.NoError(t, err)
	require.NotNil(t, pipeline)
}

func TestPipeline_LoadsOnceAndSharesText(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{raw: []byte("hello world"), text: "hello world"}
	tagger := &fakeService{kind: domain.KindTagging, content: "greeting, example"}
	summarizer := &fakeService{kind: domain.KindSummarization, content: "a greeting"}

	pipeline, err := NewPipeline(loader, store, []driven.GenerationService{tagger, summarizer})
	require.NoError(t, err)

	record, err := pipeline.ExecuteServices(context.Background())
	require.NoError(t, err)

	// Extraction cost is paid once per run, not once per service.
	assert.Equal(t, 1, loader.loads)
	assert.Equal(t, "hello world", tagger.seenText)
	assert.Equal(t, "hello world", summarizer.seenText)

	// Identity matches the windowed content hash of the raw bytes.
	hasher := domain.NewContentHasher()
	assert.Equal(t, hasher.Identity([]byte("hello world")), record.ID)

	require.Len(t, record.Artefacts, 2)
	tagging := record.Artefacts[domain.KindTagging]
	assert.Equal(t, "greeting, example", tagging.Content)
	assert.NotEmpty(t, tagging.GeneratedID)
	assert.Empty(t, tagging.Feedback)
	assert.Equal(t, "/tmp/doc.txt", tagging.Metadata["input_file"])

	// The returned record is the stripped view; the stored record
	// still embeds the 11-byte payload.
	assert.Nil(t, record.RawBytes)
	full, err := store.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), full.RawBytes)
}

func TestPipeline_IdempotentReRun(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{raw: []byte("same bytes"), text: "same bytes"}

	run := func(content string) *domain.DocumentRecord {
		svc := &fakeService{kind: domain.KindSummarization, content: content}
		pipeline, err := NewPipeline(loader, store, []driven.GenerationService{svc})
		require.NoError(t, err)
		record, err := pipeline.ExecuteServices(context.Background())
		require.NoError(t, err)
		return record
	}

	first := run("first summary")
	second := run("second summary")

	// One record, not two; the second run overwrote the artefact.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "second summary", second.Artefacts[domain.KindSummarization].Content)
	assert.Len(t, second.Artefacts, 1)
}

func TestPipeline_PartialRunPreservesOtherArtefacts(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{raw: []byte("doc"), text: "doc"}
	ctx := context.Background()

	// Full run stores summarization and tagging.
	full, err := NewPipeline(loader, store, []driven.GenerationService{
		&fakeService{kind: domain.KindSummarization, content: "old summary", genID: "sum-1"},
		&fakeService{kind: domain.KindTagging, content: "old tags", genID: "tag-1"},
	})
	require.NoError(t, err)
	record, err := full.ExecuteServices(ctx)
	require.NoError(t, err)

	_, err = store.AppendFeedback(ctx, record.ID, domain.KindTagging, domain.Feedback{User: "ana", Rating: "good"})
	require.NoError(t, err)

	// Partial re-run refreshes only tagging.
	partial, err := NewPipeline(loader, store, []driven.GenerationService{
		&fakeService{kind: domain.KindTagging, content: "new tags", genID: "tag-2"},
	})
	require.NoError(t, err)
	merged, err := partial.ExecuteServices(ctx)
	require.NoError(t, err)

	// The unrelated artefact survives untouched; the merged record
	// includes artefacts from services not in this run's list.
	summary := merged.Artefacts[domain.KindSummarization]
	assert.Equal(t, "old summary", summary.Content)
	assert.Equal(t, "sum-1", summary.GeneratedID)

	tags := merged.Artefacts[domain.KindTagging]
	assert.Equal(t, "new tags", tags.Content)
	assert.Equal(t, "tag-2", tags.GeneratedID)
	assert.Empty(t, tags.Feedback, "overwrite resets feedback")
}

func TestPipeline_ServiceFailureAbortsRemaining(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{raw: []byte("doc"), text: "doc"}
	ctx := context.Background()

	first := &fakeService{kind: domain.KindSummarization, content: "summary"}
	failing := &fakeService{kind: domain.KindTagging, err: errors.New("model timeout")}
	never := &fakeService{kind: domain.KindDescription, content: "description"}

	pipeline, err := NewPipeline(loader, store, []driven.GenerationService{first, failing, never})
	require.NoError(t, err)

	_, err = pipeline.ExecuteServices(ctx)
	require.Error(t, err)

	// The error names the failing service and the document identity.
	hasher := domain.NewContentHasher()
	id := hasher.Identity([]byte("doc"))
	assert.Contains(t, err.Error(), "tagging")
	assert.Contains(t, err.Error(), id)

	// Later services never ran; the earlier artefact stays stored.
	assert.Zero(t, never.runs)
	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, record.Artefacts, domain.KindSummarization)
	assert.NotContains(t, record.Artefacts, domain.KindTagging)
}

func TestPipeline_LoaderFailureWritesNothing(t *testing.T) {
	store := memory.NewArtefactStore()
	loader := &fakeLoader{err: fmt.Errorf("unreadable")}
	svc := &fakeService{kind: domain.KindTagging}

	pipeline, err := NewPipeline(loader, store, []driven.GenerationService{svc})
	require.NoError(t, err)

	_, err = pipeline.ExecuteServices(context.Background())
	require.Error(t, err)
	assert.Zero(t, svc.runs)
}
