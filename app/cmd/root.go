package cmd

import (
	"fmt"
	"os"

	"sdaprof/internal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdaprof <folder> <regex> <output>",
		Short: "Collect timing values from SDAccel profile summaries into a CSV file",
		Long: `Collect the total time (clWaitForEvents) and the kernel execution time from every
SDAccel timing profile summary in <folder> whose filename matches <regex> from its
first character, and write them to the CSV file <output> as time_total,time_kernel rows.

Files are processed in filename order. The first file that cannot be read or parsed
stops the run, leaving the rows written so far in <output>.

A <regex> starting with '-' is read as a flag unless the positional arguments
follow '--', e.g. sdaprof -- <folder> -run_ <output>. A <folder> named like a
subcommand must be given as a path, e.g. ./view.`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			folder, pattern, output := args[0], args[1], args[2]

			var (
				verbose     bool
				datasetFile string
			)

			parseFlags(cmd, map[string]any{
				"verbose": &verbose,
				"dataset": &datasetFile,
			})

			timing := internal.NewTimingStats()

			collector, err := internal.NewCollector(folder, pattern, verbose, nil, timing)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			if err := collector.CollectToFile(output, stderr); err != nil {
				return err
			}
			timing.Finish()

			if verbose {
				fmt.Fprintf(stderr, "Wrote %d rows to %s\n\n", len(collector.Result.Samples), output)
				if err := internal.OutputRunStats(stderr, collector); err != nil {
					return err
				}
			}

			// The dataset is only written when every row made it into the CSV file
			if datasetFile == "-" {
				if err := internal.WriteDataset(stdout, collector.Result); err != nil {
					return fmt.Errorf("failed to write dataset to STDOUT: %w", err)
				}
			} else if datasetFile != "" {
				if err := internal.WriteDatasetFile(collector.Result, datasetFile); err != nil {
					return fmt.Errorf("failed to write dataset to %s: %w", datasetFile, err)
				}
				if verbose {
					fmt.Fprintf(stderr, "Saved dataset to %s\n", datasetFile)
				}
			}

			return nil
		},
	}

	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output on STDERR")
	rootCmd.Flags().StringP("dataset", "d", "", "Also save the samples with their source filenames to a CBOR dataset file ('-' for STDOUT)")

	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
