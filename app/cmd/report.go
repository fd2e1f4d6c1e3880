package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"sdaprof/internal"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report <dataset-file>",
		Short: "Generate a JSON report from a dataset file",
		Long: `Generate a JSON report from a dataset file saved with --dataset, listing every sample
with the profile summary it was extracted from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			filename := args[0]

			var (
				platform string
				output   string
				verbose  bool
			)

			parseFlags(cmd, map[string]any{
				"platform": &platform,
				"output":   &output,
				"verbose":  &verbose,
			})

			dataset, err := loadDataset(cmd, filename, "cbor", verbose)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			report := internal.GenerateReport(dataset, platform)

			jsonData, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				cmd.SilenceUsage = true
				return fmt.Errorf("failed to generate JSON report: %w", err)
			}

			// Write the report to the specified output file or stdout
			if output != "" && output != "-" {
				err = os.WriteFile(output, jsonData, 0o644) // #nosec G306
				if err != nil {
					cmd.SilenceUsage = true
					return fmt.Errorf("failed to write report to %s: %w", output, err)
				}
				if verbose {
					fmt.Fprintf(stderr, "Report written to %s\n", output)
				}
			} else {
				fmt.Fprintln(stdout, string(jsonData))
				if verbose {
					fmt.Fprintf(stderr, "Report written to STDOUT\n")
				}
			}

			return nil
		},
	}

	reportCmd.Flags().StringP("platform", "p", "", "Name of the accelerator platform the profiles were recorded on (optional)")
	reportCmd.Flags().StringP("output", "o", "", "Output file (optional, defaults to stdout)")
	reportCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	return reportCmd
}
