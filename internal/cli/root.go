// Package cli implements the docxtract command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/docxtract/internal/version"
)

// errReported marks a failure whose message the command already printed.
var errReported = errors.New("failure already reported")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

// NewRootCmd builds the docxtract command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "docxtract",
		Short: "Extract paragraphs and tables from DOCX files as JSON",
		Long: `docxtract reads a Word (.docx) document, collects its non-empty paragraphs
and its tables, and writes them to a JSON file.

  extract    dump every paragraph and table of one document
  summarize  print a report and write the first 100 paragraphs and 20 tables
  run        execute a YAML job file`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docxtract %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newSummarizeCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))

	return rootCmd
}

// newLogger creates a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
