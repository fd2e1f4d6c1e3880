package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

type Collector struct {
	filePattern  *regexp.Regexp
	verbose      bool
	Result       ProfileDataset // Samples in the order they were written
	timing       *TimingStats   // Timing statistics
	filesListed  uint           // Directory entries seen
	filesSkipped uint           // Directory entries not matching filePattern
}

// NewCollector compiles the filename pattern. No I/O happens before the pattern is known to be valid.
func NewCollector(folder, pattern string, verbose bool, date *time.Time, timing *TimingStats) (*Collector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filename pattern: %w", err)
	}

	if timing == nil {
		timing = NewTimingStats()
	}

	return &Collector{
		filePattern: re,
		verbose:     verbose,
		Result:      newDataset(folder, pattern, date),
		timing:      timing,
	}, nil
}

// MatchFilename reports whether the pattern matches at the start of name. The whole name need not be consumed.
func (c *Collector) MatchFilename(name string) bool {
	// The leftmost match starts at 0 whenever any match starting at 0 exists
	loc := c.filePattern.FindStringIndex(name)
	return loc != nil && loc[0] == 0
}

// CollectToFile creates (or truncates) output and writes the collected rows to it.
// On error the rows written so far are left in the file.
func (c *Collector) CollectToFile(output string, stderr io.Writer) (err error) {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", output, cerr)
		}
	}()

	return c.ProcessFolder(file, stderr)
}

// ProcessFolder writes the CSV header, then one row for every matching file in the folder, in filename order.
// The first error stops processing. Rows already written are flushed to w before returning.
func (c *Collector) ProcessFolder(w io.Writer, stderr io.Writer) (err error) {
	c.timing.StartScan()
	defer c.timing.StopScan()

	out, err := newSampleWriter(w)
	if err != nil {
		return err
	}
	defer func() {
		out.Flush()
		if ferr := out.Error(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to write CSV: %w", ferr)
		}
	}()

	folder := c.Result.Folder

	// os.ReadDir returns the entries sorted by filename
	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	for _, entry := range entries {
		c.filesListed++

		if !c.MatchFilename(entry.Name()) {
			c.filesSkipped++
			continue
		}

		if c.verbose {
			fmt.Fprintf(stderr, "Loading profile summary: %s\n", entry.Name())
		}

		sample, err := loadSample(filepath.Join(folder, entry.Name()))
		if err != nil {
			return err
		}

		if err := out.Write(sampleRecord(sample)); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", entry.Name(), err)
		}
		c.Result.Samples = append(c.Result.Samples, sample)
	}

	return nil
}

// loadSample reads a whole profile summary and extracts its timing values
func loadSample(path string) (Sample, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read profile summary: %w", err)
	}

	times, err := ParseProfileSummary(string(content))
	if err != nil {
		return Sample{}, fmt.Errorf("failed to parse profile summary %s: %w", path, err)
	}

	return newSample(filepath.Base(path), content, times), nil
}

// Timing returns the timing statistics of the run
func (c *Collector) Timing() *TimingStats {
	return c.timing
}

// CollectProfiling writes time_total,time_kernel rows for every file in folder whose name matches pattern to output.
func CollectProfiling(folder, pattern, output string) error {
	c, err := NewCollector(folder, pattern, false, nil, nil)
	if err != nil {
		return err
	}
	return c.CollectToFile(output, io.Discard)
}
