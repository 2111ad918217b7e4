package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/termwire/internal/store"
	"github.com/roach88/termwire/internal/term"
)

// StoreOptions holds flags shared by the store subcommands.
type StoreOptions struct {
	*RootOptions
	DB string
}

// NewStoreCommand creates the store command group.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist term batches in a SQLite store",
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to the store database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newStorePutCommand(opts))
	cmd.AddCommand(newStoreGetCommand(opts))

	return cmd
}

func newStorePutCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "put <script.yaml>",
		Short: "Encode a script into a new batch and print its token",
		Long: `Encode a script into a new batch and print its token.

Each value is stored as its exact wire payload. The printed batch token
retrieves the batch with 'store get'.

Example:
  termwire store put values.yaml --db terms.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorePut(opts, args[0], cmd)
		},
	}
}

func newStoreGetCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <batch-token>",
		Short:         "Print the terms of a stored batch",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreGet(opts, args[0], cmd)
		},
	}
}

func runStorePut(opts *StoreOptions, scriptPath string, cmd *cobra.Command) error {
	entries, err := LoadScript(scriptPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load script", err)
	}

	values := make([]term.Value, len(entries))
	for i, e := range entries {
		v, err := e.Term()
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("entry %d", i+1), err)
		}
		values[i] = v
	}

	s, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	batch, err := s.WriteBatch(cmd.Context(), values)
	if err != nil {
		return WrapExitError(ExitFailure, "write batch", err)
	}

	if opts.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "stored %d terms\n", len(values))
	}
	fmt.Fprintln(cmd.OutOrStdout(), batch)
	return nil
}

func runStoreGet(opts *StoreOptions, batch string, cmd *cobra.Command) error {
	s, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	values, err := s.ReadBatch(cmd.Context(), batch)
	if err != nil {
		return WrapExitError(ExitFailure, "read batch", err)
	}
	if len(values) == 0 {
		return WrapExitError(ExitFailure, fmt.Sprintf("batch %s not found or empty", batch), nil)
	}

	entries := make([]ScriptEntry, len(values))
	for i, v := range values {
		e, err := termEntry(v)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("term %d", i+1), err)
		}
		entries[i] = e
	}

	return writeEntries(cmd.OutOrStdout(), opts.Format, entries)
}
