package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docxtract"
)

type extractOptions struct {
	stats    bool
	truncate bool
	index    bool
	summary  bool
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <docx_path> [output_json_path]",
		Short: "Extract every paragraph and table of a document",
		Long: `Extract the non-empty paragraphs and all tables of a DOCX file to JSON.

The output defaults to the input path with its extension replaced by .json.
By default no stats are written and nothing is truncated; the flags switch
on the behaviours of the summarize command one at a time.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			input := args[0]
			var output string
			if len(args) == 2 {
				output = args[1]
			}

			job := docxtract.PlainJob(input, output)
			job.Options = job.Options.
				WithStats(opts.stats).
				WithParagraphIndex(opts.index)
			if opts.truncate {
				job.Options = job.Options.WithLimits(docxtract.DefaultMaxParagraphs, docxtract.DefaultMaxTables)
			}
			job.PrintSummary = opts.summary
			job.Logger = root.logger

			if _, err := docxtract.Run(cmd.Context(), job, out); err != nil {
				switch {
				case errors.Is(err, docxtract.ErrFileNotFound):
					fmt.Fprintf(errOut, "Error: File '%s' not found.\n", input)
				case errors.Is(err, docxtract.ErrIO):
					fmt.Fprintf(errOut, "Error saving JSON: %v\n", err)
				default:
					fmt.Fprintf(errOut, "Error extracting data from DOCX: %v\n", err)
				}
				fmt.Fprintln(errOut, "Failed to extract data from the document.")
				return errReported
			}

			fmt.Fprintln(out, "Data extraction completed successfully.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Include document statistics")
	cmd.Flags().BoolVar(&opts.truncate, "truncate", false, "Keep only the first 100 paragraphs and 20 tables")
	cmd.Flags().BoolVar(&opts.index, "index", false, "Record each paragraph's position in the document")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a summary before writing")

	return cmd
}
