package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docxtract"
	"github.com/tsawler/docxtract/config"
)

func newSummarizeCmd(root *rootOptions) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print a document report and save a truncated extraction",
		Long: `Print a summary of a DOCX document and write its stats, first 100
non-empty paragraphs and first 20 tables to JSON.

Errors are printed but do not change the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out := cmd.OutOrStdout()

			job := docxtract.SummaryJob(input, output)
			job.Logger = root.logger

			if _, err := docxtract.Run(cmd.Context(), job, out); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Data extraction completed successfully.")
			fmt.Fprintf(out, "Full data saved to %s\n", job.OutputPath())
			fmt.Fprintln(out, "You can now use this data for further processing.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "DOCX file to read")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "JSON file to write")

	return cmd
}
