package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tessella-labs/tessella/internal/adapters/driven/storage/memory"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/services"
)

// fakeModel is a canned generation backend for command tests.
type fakeModel struct {
	calls int
	err   error
}

func (m *fakeModel) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (*driven.GenerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.calls++
	return &driven.GenerationResult{
		ID:      fmt.Sprintf("gen-%d", m.calls),
		Content: fmt.Sprintf("output %d for %d prompt bytes", m.calls, len(prompt)),
	}, nil
}

func (m *fakeModel) ModelName() string            { return "fake-model" }
func (m *fakeModel) Ping(_ context.Context) error { return nil }
func (m *fakeModel) Close() error                 { return nil }

// setupTestServices wires the CLI against an in-memory store and a fake
// model. Returns a cleanup that restores the previous wiring and flags.
func setupTestServices() func() {
	oldStore := artefactStore
	oldPrompts := promptStore
	oldRecord := recordService
	oldFeedback := feedbackService
	oldProcessing := processingCfg
	oldFactory := modelFactory
	oldBootstrapped := bootstrapped

	store := memory.NewArtefactStore()
	SetServices(&ServiceConfig{
		ArtefactStore:   store,
		RecordService:   services.NewRecordService(store),
		FeedbackService: services.NewFeedbackService(store),
		Processing: domain.ProcessingSettings{
			Services:       domain.AllServiceKinds(),
			TargetLanguage: "English",
		},
		ModelFactory: func() (driven.GenerationModel, error) {
			return &fakeModel{}, nil
		},
	})

	return func() {
		artefactStore = oldStore
		promptStore = oldPrompts
		recordService = oldRecord
		feedbackService = oldFeedback
		processingCfg = oldProcessing
		modelFactory = oldFactory
		bootstrapped = oldBootstrapped

		processServices = nil
		processLanguage = ""
		includeRaw = false
		feedbackUser = ""
		feedbackRating = ""
		feedbackText = ""
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
