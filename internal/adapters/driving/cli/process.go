package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	fileloader "github.com/tessella-labs/tessella/internal/adapters/driven/loader/file"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/services"
	"github.com/tessella-labs/tessella/internal/generation"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Run generation services over a document",
	Long: `Run the configured generation services over a document and store the
resulting artefacts. The document is identified by its content, so
re-processing the same bytes updates the existing record.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

// Flags for the process command.
var (
	processServices []string
	processLanguage string
)

func init() {
	processCmd.Flags().StringSliceVarP(&processServices, "services", "s", nil,
		"Services to run (summarization, description, tagging, translation)")
	processCmd.Flags().StringVarP(&processLanguage, "language", "l", "",
		"Target language for translation")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if modelFactory == nil {
		return errors.New("model backend not configured")
	}

	kinds, err := resolveKinds(processServices)
	if err != nil {
		return err
	}

	language := processLanguage
	if language == "" {
		language = processingCfg.TargetLanguage
	}

	model, err := modelFactory()
	if err != nil {
		return err
	}
	defer model.Close()

	generationServices := make([]driven.GenerationService, 0, len(kinds))
	for _, kind := range kinds {
		svc, err := generation.NewForKind(kind, model, promptStore, language)
		if err != nil {
			return err
		}
		generationServices = append(generationServices, svc)
	}

	loader, err := fileloader.NewLoader(args[0], nil)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}

	pipeline, err := services.NewPipeline(loader, artefactStore, generationServices)
	if err != nil {
		return err
	}

	record, err := pipeline.ExecuteServices(context.Background())
	if err != nil {
		return err
	}

	printRecord(cmd, record)
	return nil
}

// resolveKinds parses the --services flag, falling back to the
// configured default list.
func resolveKinds(names []string) ([]domain.ServiceKind, error) {
	if len(names) == 0 {
		return processingCfg.Services, nil
	}

	kinds := make([]domain.ServiceKind, 0, len(names))
	for _, name := range names {
		kind, err := domain.ParseServiceKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// printRecord writes a human-readable record summary.
func printRecord(cmd *cobra.Command, record *domain.DocumentRecord) {
	cmd.Printf("Document: %s\n", record.ID)
	cmd.Printf("Created:  %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))

	kinds := make([]string, 0, len(record.Artefacts))
	for kind := range record.Artefacts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		artefact := record.Artefacts[domain.ServiceKind(kind)]
		cmd.Printf("\n[%s] (generation %s)\n", kind, artefact.GeneratedID)
		cmd.Println(artefact.Content)
		if len(artefact.Feedback) > 0 {
			cmd.Printf("  %d feedback entries\n", len(artefact.Feedback))
		}
	}
}
