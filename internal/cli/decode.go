package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/wire"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file> <kind...>",
		Short: "Decode values from a wire file",
		Long: `Decode values from a wire file.

The wire format carries no type tags, so the kind sequence that was
encoded must be supplied: one of int32, atom, float per value, in order.

Example:
  termwire decode terms.bin int32 atom float --format json`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runDecode(opts *RootOptions, path string, kinds []string, cmd *cobra.Command) error {
	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open wire file", err)
	}
	defer f.Close()

	s := stream.New(f, path)

	entries := make([]ScriptEntry, 0, len(kinds))
	for i, kind := range kinds {
		v, err := decodeValue(s, kind)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("decode value %d (%s)", i+1, kind), err)
		}
		e, err := termEntry(v)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("decode value %d", i+1), err)
		}
		entries = append(entries, e)
	}

	return writeEntries(cmd.OutOrStdout(), opts.Format, entries)
}

// decodeValue dispatches one kind name to its wire operation.
func decodeValue(s *stream.Stream, kind string) (term.Value, error) {
	switch kind {
	case KindInt32:
		v, err := wire.ReadInt32(s)
		if err != nil {
			return nil, err
		}
		return term.Int(v), nil
	case KindAtom:
		a, err := wire.ReadAtom(s)
		if err != nil {
			return nil, err
		}
		return term.Atom(a), nil
	case KindFloat:
		f, err := wire.ReadFloat(s)
		if err != nil {
			return nil, err
		}
		return term.Float(f), nil
	default:
		return nil, fmt.Errorf("unknown kind %q: must be one of int32, atom, float", kind)
	}
}
