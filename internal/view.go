package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// tableRow represents a row in the output table with left and right columns
type tableRow struct {
	lhs string
	rhs string
}

// printTable prints a table with dynamic column widths. A row with an empty lhs is printed as a blank line.
func printTable(w io.Writer, rows []tableRow) error {
	if len(rows) == 0 {
		return nil
	}

	maxLHSWidth := 0
	for _, row := range rows {
		if len(row.lhs) > maxLHSWidth {
			maxLHSWidth = len(row.lhs)
		}
	}

	for _, row := range rows {
		if row.lhs == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%-*s : %s\n", maxLHSWidth, row.lhs, row.rhs); err != nil {
			return err
		}
	}
	return nil
}

// sampleLabel names a sample. Rows read back from CSV have no filename.
func sampleLabel(s Sample, idx int) string {
	if s.Filename != "" {
		return s.Filename
	}
	return fmt.Sprintf("row %d", idx+1)
}

// formatSampleRecords builds one line per sample, in row order
func formatSampleRecords(samples []Sample) []string {
	width := 0
	for i, s := range samples {
		if l := len(sampleLabel(s, i)); l > width {
			width = l
		}
	}

	var lines []string
	for i, s := range samples {
		line := fmt.Sprintf("%-*s %s: %s, %s: %s",
			width, sampleLabel(s, i),
			TotalTimeColumn, formatTime(s.TotalTime),
			KernelTimeColumn, formatTime(s.KernelTime),
		)
		if s.Fingerprint != 0 {
			line += ", content " + s.FingerprintString()
		}
		lines = append(lines, line)
	}
	return lines
}

// formatDatasetStats prepares dataset metadata for printing
func formatDatasetStats(dataset ProfileDataset) []tableRow {
	var table []tableRow

	table = append(table, tableRow{"Dataset statistics", ""})
	if dataset.Identifier != "" {
		table = append(table, tableRow{"Identifier", dataset.Identifier})
		table = append(table, tableRow{"Generator", dataset.Generator})
		table = append(table, tableRow{"Date", dataset.DateString()})
		table = append(table, tableRow{"Folder", dataset.Folder})
		table = append(table, tableRow{"Filename pattern", dataset.Pattern})
	}
	table = append(table, tableRow{"Rows", fmt.Sprintf("%d", len(dataset.Samples))})

	if dups := dataset.Duplicates(); len(dups) > 0 {
		table = append(table, tableRow{"Duplicate content", fmt.Sprintf("%d (%v)", len(dups), dups)})
	}

	return table
}

// formatRunStats describes what a collect run did with the directory entries
func formatRunStats(c *Collector) []tableRow {
	var table []tableRow

	table = append(table, tableRow{"Collection statistics", ""})
	table = append(table, tableRow{"Folder", c.Result.Folder})
	table = append(table, tableRow{"Filename pattern", c.Result.Pattern})
	table = append(table, tableRow{"Directory entries", fmt.Sprintf("%d", c.filesListed)})
	table = append(table, tableRow{"Files skipped", fmt.Sprintf("%d", c.filesSkipped)})
	table = append(table, tableRow{"Rows written", fmt.Sprintf("%d", len(c.Result.Samples))})

	return table
}

// formatTimingStats formats timing statistics as table rows
func formatTimingStats(timing *TimingStats) []tableRow {
	var table []tableRow

	table = append(table, tableRow{"Timing statistics", ""})
	table = append(table, tableRow{"Total execution time", timing.TotalElapsed.Truncate(time.Millisecond).String()})
	if timing.ScanElapsed > 0 {
		overhead := timing.TotalElapsed - timing.ScanElapsed
		table = append(table, tableRow{"Directory scan time", timing.ScanElapsed.Truncate(time.Millisecond).String()})
		table = append(table, tableRow{"Processing overhead", overhead.Truncate(time.Millisecond).String()})
	}

	return table
}

// OutputRunStats prints the collection and timing statistics of a finished run
func OutputRunStats(w io.Writer, c *Collector) error {
	table := formatRunStats(c)
	table = append(table, tableRow{})
	table = append(table, formatTimingStats(c.Timing())...)

	if err := printTable(w, table); err != nil {
		return fmt.Errorf("failed to print run statistics: %w", err)
	}
	return nil
}

// OutputDatasetStats prints the samples and the dataset metadata
func OutputDatasetStats(w io.Writer, dataset ProfileDataset) error {
	lines := formatSampleRecords(dataset.Samples)
	if len(lines) > 0 {
		if _, err := fmt.Fprintln(w, "Samples:"); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if err := printTable(w, formatDatasetStats(dataset)); err != nil {
		return fmt.Errorf("failed to print dataset statistics: %w", err)
	}
	return nil
}

type datasetJSON struct {
	Identifier string       `json:"id,omitempty"`
	Generator  string       `json:"generator,omitempty"`
	Date       string       `json:"date,omitempty"`
	Folder     string       `json:"folder,omitempty"`
	Pattern    string       `json:"pattern,omitempty"`
	Samples    []SampleData `json:"samples"`
}

// OutputDatasetStatsJSON prints the dataset as indented JSON
func OutputDatasetStatsJSON(w io.Writer, dataset ProfileDataset) error {
	out := datasetJSON{
		Identifier: dataset.Identifier,
		Generator:  dataset.Generator,
		Folder:     dataset.Folder,
		Pattern:    dataset.Pattern,
		Samples:    sampleData(dataset.Samples),
	}
	if dataset.Date != nil {
		out.Date = dataset.DateString()
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
