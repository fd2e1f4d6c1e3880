package cmd

import (
	"fmt"

	"sdaprof/internal"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	viewCmd := &cobra.Command{
		Use:   "view <input-file>",
		Short: "Display the samples in a dataset or CSV file",
		Long: `Display the samples from a previously saved dataset (CBOR) or collect CSV file.
Values are listed as collected, in row order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()

			inputFile := args[0]

			var (
				verbose  bool
				json     bool
				filetype string
			)

			parseFlags(cmd, map[string]any{
				"verbose":  &verbose,
				"json":     &json,
				"filetype": &filetype,
			})

			if verbose && json {
				return fmt.Errorf("--verbose and --json are mutually exclusive")
			}

			dataset, err := loadDataset(cmd, inputFile, filetype, verbose)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			if json {
				stdout := cmd.OutOrStdout()
				if err := internal.OutputDatasetStatsJSON(stdout, dataset); err != nil {
					cmd.SilenceUsage = true
					return err
				}
				return nil
			}

			if err := internal.OutputDatasetStats(stderr, dataset); err != nil {
				cmd.SilenceUsage = true
				return err
			}

			return nil
		},
	}

	viewCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	viewCmd.Flags().BoolP("json", "j", false, "JSON output")
	viewCmd.Flags().StringP("filetype", "t", "", "Input file type, 'csv' or 'cbor' (default: csv for *.csv files, otherwise cbor)")

	return viewCmd
}
