package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driven"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tessella-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testArtefact(content string) domain.Artefact {
	return domain.Artefact{
		GeneratedID: "gen-" + content,
		Content:     content,
		Metadata:    map[string]any{"input_file": "/tmp/doc.txt", "service_type": "tagging"},
	}
}

func TestNewStore_CreatesDatabaseAndRunsMigrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "artefacts.db", filepath.Base(store.Path()))

	var version int
	row := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.GreaterOrEqual(t, version, 1)
}

func TestArtefactStore_UpsertAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	raw := []byte("hello world")
	id, err := artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindTagging, testArtefact("tags"), raw, true)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", id)

	record, err := artefacts.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, raw, record.RawBytes)
	assert.False(t, record.CreatedAt.IsZero())

	stored := record.Artefacts[domain.KindTagging]
	assert.Equal(t, "gen-tags", stored.GeneratedID)
	assert.Equal(t, "tags", stored.Content)
	assert.Equal(t, "/tmp/doc.txt", stored.Metadata["input_file"])
	assert.Empty(t, stored.Feedback)

	_, err = artefacts.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtefactStore_RawBytesWrittenOnlyAtCreation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	_, err := artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindTagging, testArtefact("tags"), []byte("original"), true)
	require.NoError(t, err)

	_, err = artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindSummarization, testArtefact("summary"), []byte("divergent"), true)
	require.NoError(t, err)

	record, err := artefacts.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), record.RawBytes)
	assert.Len(t, record.Artefacts, 2)
}

func TestArtefactStore_SizeCeiling(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	oversize := make([]byte, driven.MaxEmbeddedPayloadBytes+1)
	_, err := artefacts.StoreServiceOutput(ctx, "big", domain.KindTagging, testArtefact("tags"), oversize, true)
	require.NoError(t, err)

	record, err := artefacts.Get(ctx, "big")
	require.NoError(t, err)
	assert.Nil(t, record.RawBytes)
	assert.Contains(t, record.Artefacts, domain.KindTagging)

	// Feedback still works for an oversize document.
	_, err = artefacts.AppendFeedback(ctx, "big", domain.KindTagging, domain.Feedback{User: "ana", Rating: "good"})
	require.NoError(t, err)
}

func TestArtefactStore_OverwritePolicy(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	_, err := artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindSummarization, testArtefact("first"), nil, true)
	require.NoError(t, err)
	_, err = artefacts.AppendFeedback(ctx, "doc-1", domain.KindSummarization, domain.Feedback{User: "ana", Rating: "good"})
	require.NoError(t, err)

	// overwrite=false: the existing artefact and its feedback survive.
	_, err = artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindSummarization, testArtefact("second"), nil, false)
	require.NoError(t, err)
	record, err := artefacts.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "first", record.Artefacts[domain.KindSummarization].Content)
	assert.Len(t, record.Artefacts[domain.KindSummarization].Feedback, 1)

	// overwrite=true: the artefact is replaced and feedback reset.
	_, err = artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindSummarization, testArtefact("third"), nil, true)
	require.NoError(t, err)
	record, err = artefacts.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "third", record.Artefacts[domain.KindSummarization].Content)
	assert.Empty(t, record.Artefacts[domain.KindSummarization].Feedback)
}

func TestArtefactStore_FeedbackOrderAndNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	_, err := artefacts.AppendFeedback(ctx, "missing", domain.KindTagging, domain.Feedback{User: "ana", Rating: "good"})
	assert.ErrorIs(t, err, domain.ErrFeedbackTargetNotFound)

	_, err = artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindTagging, testArtefact("tags"), nil, true)
	require.NoError(t, err)

	// Kind mismatch is a no-match too.
	_, err = artefacts.AppendFeedback(ctx, "doc-1", domain.KindTranslation, domain.Feedback{User: "ana", Rating: "good"})
	assert.ErrorIs(t, err, domain.ErrFeedbackTargetNotFound)

	users := []string{"ana", "ben", "cho"}
	for _, user := range users {
		_, err := artefacts.AppendFeedback(ctx, "doc-1", domain.KindTagging, domain.Feedback{User: user, WrittenFeedback: "note"})
		require.NoError(t, err)
	}

	record, err := artefacts.Get(ctx, "doc-1")
	require.NoError(t, err)
	feedback := record.Artefacts[domain.KindTagging].Feedback
	require.Len(t, feedback, len(users))
	for i, user := range users {
		assert.Equal(t, user, feedback[i].User)
		assert.False(t, feedback[i].CreatedAt.IsZero())
	}
}

func TestArtefactStore_RetrieveStripsRawByDefault(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	artefacts := store.ArtefactStore()
	ctx := context.Background()

	_, err := artefacts.StoreServiceOutput(ctx, "doc-1", domain.KindTagging, testArtefact("tags"), []byte("payload"), true)
	require.NoError(t, err)

	stripped, err := artefacts.Retrieve(ctx, "doc-1", false)
	require.NoError(t, err)
	assert.Nil(t, stripped.RawBytes)
	assert.Contains(t, stripped.Artefacts, domain.KindTagging)

	full, err := artefacts.Retrieve(ctx, "doc-1", true)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), full.RawBytes)
}

func TestArtefactStore_PersistsAcrossReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "tessella-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)
	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	_, err = store.ArtefactStore().StoreServiceOutput(ctx, "doc-1", domain.KindSummarization, testArtefact("summary"), []byte("raw"), true)
	require.NoError(t, err)
	_, err = store.ArtefactStore().AppendFeedback(ctx, "doc-1", domain.KindSummarization, domain.Feedback{User: "ana", Rating: "good"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	record, err := reopened.ArtefactStore().Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), record.RawBytes)
	assert.Equal(t, "summary", record.Artefacts[domain.KindSummarization].Content)
	assert.Len(t, record.Artefacts[domain.KindSummarization].Feedback, 1)
}
