package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet_RoundTrip(t *testing.T) {
	script := writeScript(t, validScript)
	db := filepath.Join(t.TempDir(), "terms.db")

	out, err := runCommand(t, "store", "put", script, "--db", db)
	require.NoError(t, err)

	batch := strings.TrimSpace(out)
	require.NotEmpty(t, batch, "put prints the batch token")

	out, err = runCommand(t, "store", "get", batch, "--db", db)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "int32: 42", lines[0])
	assert.Equal(t, "atom: héllo", lines[1])
	assert.Equal(t, "float: 1.5", lines[2])
}

func TestStore_Get_UnknownBatch(t *testing.T) {
	db := filepath.Join(t.TempDir(), "terms.db")

	// Open/create the database first so only the batch is missing.
	script := writeScript(t, "- kind: atom\n  value: seed\n")
	_, err := runCommand(t, "store", "put", script, "--db", db)
	require.NoError(t, err)

	_, err = runCommand(t, "store", "get", "no-such-batch", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestStore_Put_InvalidScript(t *testing.T) {
	script := writeScript(t, "- kind: atom\n  value: 42\n")
	db := filepath.Join(t.TempDir(), "terms.db")

	_, err := runCommand(t, "store", "put", script, "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
