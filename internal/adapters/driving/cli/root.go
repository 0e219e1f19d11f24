// Package cli provides the command-line interface for Tessella.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella-labs/tessella/internal/adapters/driven/ai"
	configfile "github.com/tessella-labs/tessella/internal/adapters/driven/config/file"
	"github.com/tessella-labs/tessella/internal/adapters/driven/storage/sqlite"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/core/ports/driving"
	"github.com/tessella-labs/tessella/internal/core/services"
	"github.com/tessella-labs/tessella/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verboseFlag   bool
	configDirFlag string
	dataDirFlag   string
)

// Wired services. Populated by bootstrap on first real command, or by
// SetServices in tests.
var (
	artefactStore   driven.ArtefactStore
	promptStore     driven.PromptStore
	recordService   driving.RecordService
	feedbackService driving.FeedbackService
	processingCfg   domain.ProcessingSettings
	modelFactory    func() (driven.GenerationModel, error)
	bootstrapped    bool
	closers         []func() error
)

// rootCmd is the base command for the tessella CLI.
var rootCmd = &cobra.Command{
	Use:   "tessella",
	Short: "Document artefact pipeline",
	Long: `Tessella runs generation services (summarization, description, tagging,
translation) over documents and stores the resulting artefacts keyed by
content identity.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if skipBootstrap(cmd) {
			return nil
		}
		return bootstrap()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Configuration directory (default ~/.tessella)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (default ~/.tessella/data)")
}

// skipBootstrap reports whether a command can run without wired services.
func skipBootstrap(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "tessella":
		return true
	}
	return false
}

// bootstrap wires real adapters from configuration. Runs once; tests
// replace the wiring through SetServices instead.
func bootstrap() error {
	if bootstrapped {
		return nil
	}

	cfg, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	logger.Debug("config loaded from %s", cfg.Path())

	store, err := sqlite.NewStore(dataDirFlag)
	if err != nil {
		return fmt.Errorf("open artefact store: %w", err)
	}
	closers = append(closers, store.Close)
	logger.Debug("artefact store at %s", store.Path())

	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}
	closers = append(closers, prompts.Close)

	modelSettings := configfile.ModelSettingsFrom(cfg)

	artefactStore = store.ArtefactStore()
	promptStore = prompts
	recordService = services.NewRecordService(artefactStore)
	feedbackService = services.NewFeedbackService(artefactStore)
	processingCfg = configfile.ProcessingSettingsFrom(cfg)
	modelFactory = func() (driven.GenerationModel, error) {
		return ai.CreateAndValidateGenerationModel(&modelSettings)
	}

	bootstrapped = true
	return nil
}

// ServiceConfig carries pre-wired services for the CLI.
type ServiceConfig struct {
	ArtefactStore   driven.ArtefactStore
	PromptStore     driven.PromptStore
	RecordService   driving.RecordService
	FeedbackService driving.FeedbackService
	Processing      domain.ProcessingSettings
	ModelFactory    func() (driven.GenerationModel, error)
}

// SetServices replaces the CLI's wiring. Intended for tests.
func SetServices(cfg *ServiceConfig) {
	artefactStore = cfg.ArtefactStore
	promptStore = cfg.PromptStore
	recordService = cfg.RecordService
	feedbackService = cfg.FeedbackService
	processingCfg = cfg.Processing
	modelFactory = cfg.ModelFactory
	bootstrapped = true
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases wired resources afterwards.
func Execute() error {
	err := rootCmd.Execute()
	for _, fn := range closers {
		_ = fn()
	}
	closers = nil
	return err
}
