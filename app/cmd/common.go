package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sdaprof/internal"

	"github.com/spf13/cobra"
)

// parseFlags parses command flags in a table-driven manner
func parseFlags(cmd *cobra.Command, flags map[string]any) {
	for name, dest := range flags {
		var err error
		switch v := dest.(type) {
		case *bool:
			*v, err = cmd.Flags().GetBool(name)
		case *string:
			*v, err = cmd.Flags().GetString(name)
		default:
			fmt.Fprintf(os.Stderr, "Unsupported flag type for %s\n", name)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
}

// inputFiletype returns the filetype to use for filename. Files ending in .csv are CSV files written by
// a collect run, everything else (including STDIN) is expected to be a CBOR dataset unless filetype is set.
func inputFiletype(filename, filetype string) (string, error) {
	switch filetype {
	case "csv", "cbor":
		return filetype, nil
	case "":
		if strings.EqualFold(filepath.Ext(filename), ".csv") {
			return "csv", nil
		}
		return "cbor", nil
	default:
		return "", fmt.Errorf("invalid filetype '%s'. Must be 'csv' or 'cbor'", filetype)
	}
}

// loadDataset loads a CBOR dataset or a collect CSV file, or if the filename "-" is used, from STDIN.
func loadDataset(cmd *cobra.Command, filename, filetype string, verbose bool) (internal.ProfileDataset, error) {
	stderr := cmd.ErrOrStderr()

	filetype, err := inputFiletype(filename, filetype)
	if err != nil {
		return internal.ProfileDataset{}, err
	}

	if filename == "-" {
		if verbose {
			fmt.Fprintf(stderr, "Loading %s from STDIN\n", filetype)
		}
		if filetype == "csv" {
			samples, err := internal.LoadSamplesCSV(cmd.InOrStdin())
			if err != nil {
				return internal.ProfileDataset{}, fmt.Errorf("failed to load CSV from STDIN: %w", err)
			}
			return internal.ProfileDataset{Samples: samples}, nil
		}
		dataset, err := internal.LoadDatasetFromReader(cmd.InOrStdin())
		if err != nil {
			return internal.ProfileDataset{}, fmt.Errorf("failed to load dataset from STDIN: %w", err)
		}
		return dataset, nil
	}

	if verbose {
		fmt.Fprintf(stderr, "Loading %s file %s\n", filetype, filename)
	}

	if filetype == "csv" {
		samples, err := internal.LoadSamplesCSVFile(filename)
		if err != nil {
			return internal.ProfileDataset{}, err
		}
		return internal.ProfileDataset{Samples: samples}, nil
	}

	dataset, err := internal.LoadDatasetFile(filename)
	if err != nil {
		return internal.ProfileDataset{}, fmt.Errorf("failed to load dataset file %s: %w", filename, err)
	}
	return dataset, nil
}
