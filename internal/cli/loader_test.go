package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/termwire/internal/term"
)

const validScript = `
- kind: int32
  value: 42
- kind: atom
  value: héllo
- kind: float
  value: 1.5
`

func TestParseScript_Valid(t *testing.T) {
	entries, err := ParseScript([]byte(validScript))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, KindInt32, entries[0].Kind)
	assert.Equal(t, KindAtom, entries[1].Kind)
	assert.Equal(t, KindFloat, entries[2].Kind)
}

func TestParseScript_EmptyList(t *testing.T) {
	entries, err := ParseScript([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseScript_MalformedYAML(t *testing.T) {
	_, err := ParseScript([]byte("kind: [unclosed"))
	assert.Error(t, err)
}

func TestParseScript_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown kind", "- kind: blob\n  value: x\n"},
		{"atom with numeric value", "- kind: atom\n  value: 42\n"},
		{"int32 with text value", "- kind: int32\n  value: hello\n"},
		{"int32 out of range", "- kind: int32\n  value: 4294967296\n"},
		{"missing value", "- kind: atom\n"},
		{"not a list", "kind: atom\nvalue: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.script))
			assert.Error(t, err, "script %q must fail validation", tt.script)
		})
	}
}

func TestLoadScript_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScript), 0644))

	entries, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestLoadScript_MissingFile(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestScriptEntry_Term(t *testing.T) {
	entries, err := ParseScript([]byte(validScript))
	require.NoError(t, err)

	v, err := entries[0].Term()
	require.NoError(t, err)
	assert.Equal(t, term.Int(42), v)

	v, err = entries[1].Term()
	require.NoError(t, err)
	assert.Equal(t, term.Atom("héllo"), v)

	v, err = entries[2].Term()
	require.NoError(t, err)
	assert.Equal(t, term.Float(1.5), v)
}

func TestScriptEntry_Term_FloatFromInteger(t *testing.T) {
	// YAML "value: 2" under kind float decodes as an integer; it still
	// converts.
	entries, err := ParseScript([]byte("- kind: float\n  value: 2\n"))
	require.NoError(t, err)

	v, err := entries[0].Term()
	require.NoError(t, err)
	assert.Equal(t, term.Float(2.0), v)
}
