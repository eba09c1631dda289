package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docxtract"
	"github.com/tsawler/docxtract/config"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an extraction job described in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			file, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading job file: %w", err)
			}

			job := file.Job()
			job.Logger = root.logger
			root.logger.Debug("job loaded", "config", configPath, "preset", file.Preset, "input", job.Input)

			if _, err := docxtract.Run(cmd.Context(), job, cmd.OutOrStdout()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Data extraction completed successfully.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "docxtract.yaml", "Job file")

	return cmd
}
