package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessella-labs/tessella/internal/core/domain"
)

func TestRecordCmd_HasSubcommands(t *testing.T) {
	commands := recordCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "get")
}

func TestRecordGetCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("record", "get")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRecordGetCmd_PrintsStoredRecord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := artefactStore.StoreServiceOutput(context.Background(),
		"doc-1", domain.KindSummarization,
		domain.Artefact{GeneratedID: "gen-1", Content: "a summary"},
		[]byte("payload"), true)
	require.NoError(t, err)

	out, err := executeCommand("record", "get", "doc-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Document: doc-1")
	assert.Contains(t, out, "[summarization]")
	assert.Contains(t, out, "a summary")
	assert.NotContains(t, out, "Raw payload")
}

func TestRecordGetCmd_RawFlagReportsPayload(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := artefactStore.StoreServiceOutput(context.Background(),
		"doc-1", domain.KindSummarization,
		domain.Artefact{GeneratedID: "gen-1", Content: "a summary"},
		[]byte("payload"), true)
	require.NoError(t, err)

	out, err := executeCommand("record", "get", "doc-1", "--raw")

	require.NoError(t, err)
	assert.Contains(t, out, "Raw payload: 7 bytes embedded")
}

func TestRecordGetCmd_UnknownIDFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("record", "get", "no-such-id")

	assert.Error(t, err)
}
