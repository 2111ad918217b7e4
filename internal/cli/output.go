package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/termwire/internal/term"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (decode error, store miss, etc.)
	ExitCommandError = 2 // Command error (invalid paths, bad arguments, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		return ExitFailure
	}
	return ExitSuccess
}

// writeEntries renders decoded values in the requested output format.
// Text is one "kind: value" line per entry; json is a single array.
func writeEntries(w io.Writer, format string, entries []ScriptEntry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		for _, e := range entries {
			fmt.Fprintf(w, "%s: %v\n", e.Kind, e.Value)
		}
		return nil
	}
}

// termEntry converts a decoded term back to script form, so decode output
// can feed straight back into encode.
func termEntry(v term.Value) (ScriptEntry, error) {
	switch val := term.Deref(v).(type) {
	case term.Int:
		return ScriptEntry{Kind: KindInt32, Value: int64(val)}, nil
	case term.Atom:
		return ScriptEntry{Kind: KindAtom, Value: string(val)}, nil
	case term.Float:
		return ScriptEntry{Kind: KindFloat, Value: float64(val)}, nil
	default:
		return ScriptEntry{}, fmt.Errorf("no script form for term %s", term.String(v))
	}
}
