package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/tessella-labs/tessella/internal/core/ports/driven"
	"github.com/tessella-labs/tessella/internal/generation"
	"github.com/tessella-labs/tessella/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// promptNames lists every template the store manages on disk.
var promptNames = []string{
	driven.PromptSummarization,
	driven.PromptDescription,
	driven.PromptTagging,
	driven.PromptTranslation,
}

// PromptStore loads generation prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to the
// embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. A filesystem watcher invalidates the
// cache when a prompt file changes, so edits take effect without a restart.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
	watcher   *fsnotify.Watcher
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.tessella/prompts/.
//
// The constructor does not perform any I/O - directory creation, file
// writes, and the change watcher all start lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".tessella", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory, defaults, and watcher exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := generation.DefaultPrompt(name); ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := generation.DefaultPrompt(name); ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// Close stops the filesystem watcher.
func (s *PromptStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// initialise creates the prompt directory, default files, and the watcher.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for _, name := range promptNames {
		content, ok := generation.DefaultPrompt(name)
		if !ok {
			continue
		}
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
		return
	}

	s.startWatcher()
}

// startWatcher begins watching the prompt directory for edits.
// A watcher failure is non-fatal; edits then require a manual Reload.
func (s *PromptStore) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("prompt watcher unavailable: %v", err)
		return
	}
	if err := watcher.Add(s.promptDir); err != nil {
		logger.Warn("prompt watcher unavailable: %v", err)
		watcher.Close()
		return
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					logger.Debug("prompt file changed: %s", event.Name)
					s.Reload()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Tessella Prompts

This directory contains customisable prompts used by Tessella's generation
services.

## Files

- ` + "`summarization.txt`" + ` - Condenses document text into a summary
- ` + "`description.txt`" + ` - Produces a short document description
- ` + "`tagging.txt`" + ` - Produces topical tags for a document
- ` + "`translation.txt`" + ` - Translates document text

## Customisation

Edit any file to customise generation behaviour. Changes are picked up
automatically while a command is running.

## Format Placeholders

Prompts use Go fmt placeholders:
- ` + "`%s`" + ` - String (the document text; translation takes the target
  language first, then the text)

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
