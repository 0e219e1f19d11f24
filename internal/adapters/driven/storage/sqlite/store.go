package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tessella-labs/tessella/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// Store is the SQLite-backed artefact storage.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tessella/data/artefacts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tessella", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "artefacts.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ArtefactStore returns an ArtefactStore interface backed by this store.
func (s *Store) ArtefactStore() driven.ArtefactStore {
	return &artefactStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Artefact Store ====================

// artefactStore implements driven.ArtefactStore.
type artefactStore struct {
	store *Store
}

var _ driven.ArtefactStore = (*artefactStore)(nil)

// Get retrieves the full record, embedded bytes included.
func (s *artefactStore) Get(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	return s.load(ctx, id, true)
}

// StoreServiceOutput implements the create-or-attach upsert in one
// transaction. The INSERT OR IGNORE on the documents primary key makes
// first-record creation race-safe: concurrent callers for a brand-new
// identity create exactly one base row, and raw bytes are never
// written again for an existing id.
func (s *artefactStore) StoreServiceOutput(ctx context.Context, id string, kind domain.ServiceKind, artefact domain.Artefact, raw []byte, overwrite bool) (string, error) {
	metadataJSON, err := json.Marshal(artefact.Metadata)
	if err != nil {
		return "", fmt.Errorf("marshalling artefact metadata: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Embed the payload only when it fits the ceiling; an oversize
	// payload still gets a record, tracked by metadata alone.
	var embedded any
	if raw != nil && len(raw) <= driven.MaxEmbeddedPayloadBytes {
		embedded = raw
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO documents (id, raw_bytes, created_at)
		VALUES (?, ?, ?)
	`, id, embedded, now); err != nil {
		return "", fmt.Errorf("creating base record: %w", err)
	}

	var exists bool
	row := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM artefacts WHERE document_id = ? AND kind = ?)
	`, id, kind.String())
	if err := row.Scan(&exists); err != nil {
		return "", fmt.Errorf("checking existing artefact: %w", err)
	}

	if exists && !overwrite {
		// The existing output is preserved; this call is a no-op for
		// the artefact.
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("committing transaction: %w", err)
		}
		return id, nil
	}

	createdAt := artefact.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO artefacts (document_id, kind, generated_id, content, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id, kind) DO UPDATE SET
			generated_id = excluded.generated_id,
			content = excluded.content,
			metadata = excluded.metadata,
			created_at = excluded.created_at
	`, id, kind.String(), artefact.GeneratedID, artefact.Content, string(metadataJSON), createdAt); err != nil {
		return "", fmt.Errorf("saving artefact: %w", err)
	}

	// Overwriting replaces the judgments tied to the old output.
	if exists {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM feedback WHERE document_id = ? AND kind = ?
		`, id, kind.String()); err != nil {
			return "", fmt.Errorf("resetting feedback: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

// AppendFeedback appends one feedback entry. The target artefact is
// checked inside the same transaction as the insert: a no-match append
// fails with domain.ErrFeedbackTargetNotFound instead of silently
// writing nothing.
func (s *artefactStore) AppendFeedback(ctx context.Context, id string, kind domain.ServiceKind, feedback domain.Feedback) (string, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists bool
	row := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM artefacts WHERE document_id = ? AND kind = ?)
	`, id, kind.String())
	if err := row.Scan(&exists); err != nil {
		return "", fmt.Errorf("checking feedback target: %w", err)
	}
	if !exists {
		return "", domain.ErrFeedbackTargetNotFound
	}

	createdAt := feedback.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO feedback (document_id, kind, user, rating, written_feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, kind.String(), feedback.User, feedback.Rating, feedback.WrittenFeedback, createdAt); err != nil {
		return "", fmt.Errorf("appending feedback: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

// Retrieve returns the record, stripping embedded bytes by default.
func (s *artefactStore) Retrieve(ctx context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error) {
	return s.load(ctx, id, includeRaw)
}

// load assembles a record from its three tables.
func (s *artefactStore) load(ctx context.Context, id string, includeRaw bool) (*domain.DocumentRecord, error) {
	record := &domain.DocumentRecord{
		ID:        id,
		Artefacts: make(map[domain.ServiceKind]domain.Artefact),
	}

	var rawBytes []byte
	var createdAt sql.NullTime
	row := s.store.db.QueryRowContext(ctx, `
		SELECT raw_bytes, created_at FROM documents WHERE id = ?
	`, id)
	if err := row.Scan(&rawBytes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	if includeRaw {
		record.RawBytes = rawBytes
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}

	artefacts, err := s.loadArtefacts(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Artefacts = artefacts

	return record, nil
}

// loadArtefacts reads every artefact of a record with its feedback.
func (s *artefactStore) loadArtefacts(ctx context.Context, id string) (map[domain.ServiceKind]domain.Artefact, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT kind, generated_id, content, metadata, created_at
		FROM artefacts WHERE document_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying artefacts: %w", err)
	}
	defer rows.Close()

	artefacts := make(map[domain.ServiceKind]domain.Artefact)
	for rows.Next() {
		var kind string
		var artefact domain.Artefact
		var metadataJSON string
		var createdAt sql.NullTime
		if err := rows.Scan(&kind, &artefact.GeneratedID, &artefact.Content, &metadataJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning artefact: %w", err)
		}

		if err := json.Unmarshal([]byte(metadataJSON), &artefact.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling artefact metadata: %w", err)
		}
		if createdAt.Valid {
			artefact.CreatedAt = createdAt.Time
		}
		artefact.Feedback = []domain.Feedback{}

		artefacts[domain.ServiceKind(kind)] = artefact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artefacts: %w", err)
	}

	for kind, artefact := range artefacts {
		feedback, err := s.loadFeedback(ctx, id, kind)
		if err != nil {
			return nil, err
		}
		artefact.Feedback = feedback
		artefacts[kind] = artefact
	}

	return artefacts, nil
}

// loadFeedback reads one artefact's feedback in submission order.
func (s *artefactStore) loadFeedback(ctx context.Context, id string, kind domain.ServiceKind) ([]domain.Feedback, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT user, rating, written_feedback, created_at
		FROM feedback WHERE document_id = ? AND kind = ?
		ORDER BY id
	`, id, kind.String())
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	feedback := []domain.Feedback{}
	for rows.Next() {
		var entry domain.Feedback
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.User, &entry.Rating, &entry.WrittenFeedback, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time
		}
		feedback = append(feedback, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}

	return feedback, nil
}
