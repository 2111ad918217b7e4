package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/wire"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Output string
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <script.yaml>",
		Short: "Encode a script of values to a wire file",
		Long: `Encode a script of values to a wire file.

The script is a YAML list of typed values validated against a schema
before anything is written. Values are encoded in document order with
no framing between them; decoding requires the same kind sequence.

Example:
  termwire encode values.yaml -o terms.bin`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output wire file (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runEncode(opts *EncodeOptions, scriptPath string, cmd *cobra.Command) error {
	entries, err := LoadScript(scriptPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load script", err)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return WrapExitError(ExitCommandError, "create output", err)
	}
	defer f.Close()

	s := stream.New(f, opts.Output)
	for i, e := range entries {
		v, err := e.Term()
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("entry %d", i+1), err)
		}
		if err := encodeValue(s, v); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("encode entry %d", i+1), err)
		}
		if opts.Verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", e.Kind, e.Value)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "encoded %d values to %s\n", len(entries), opts.Output)
	return nil
}

// encodeValue dispatches one term to its wire operation.
func encodeValue(s *stream.Stream, v term.Value) error {
	switch val := term.Deref(v).(type) {
	case term.Int:
		return wire.WriteInt32(s, int32(val))
	case term.Atom:
		return wire.WriteAtom(s, string(val))
	case term.Float:
		return wire.WriteFloat(s, float64(val))
	default:
		return wire.TypeError(v, "atomic")
	}
}
