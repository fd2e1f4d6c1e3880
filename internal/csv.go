package internal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var csvHeader = []string{TotalTimeColumn, KernelTimeColumn}

// formatTime renders a value with the fewest digits that parse back to the same float64, never in exponent form.
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sampleRecord(s Sample) []string {
	return []string{formatTime(s.TotalTime), formatTime(s.KernelTime)}
}

// newSampleWriter returns a CSV writer with the header row already written
func newSampleWriter(w io.Writer) (*csv.Writer, error) {
	out := csv.NewWriter(w)
	if err := out.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return out, nil
}

// WriteSamplesCSV writes the header followed by one row per sample.
func WriteSamplesCSV(w io.Writer, samples []Sample) error {
	out, err := newSampleWriter(w)
	if err != nil {
		return err
	}
	for _, s := range samples {
		if err := out.Write(sampleRecord(s)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	out.Flush()
	return out.Error()
}

func LoadSamplesCSVFile(filename string) ([]Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	samples, err := LoadSamplesCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", filename, err)
	}
	return samples, nil
}

// LoadSamplesCSV reads rows written by a collect run back. The header row is required.
func LoadSamplesCSV(reader io.Reader) ([]Sample, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = len(csvHeader)

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if header[0] != TotalTimeColumn || header[1] != KernelTimeColumn {
		return nil, fmt.Errorf("unexpected header '%s'", strings.Join(header, ","))
	}

	samples := []Sample{}
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError carries the line number
			return samples, fmt.Errorf("failed to read CSV: %w", err)
		}

		sample, err := parseSampleRecord(record)
		if err != nil {
			line, _ := csvReader.FieldPos(0)
			return samples, fmt.Errorf("failed to process CSV record at line %d: %w", line, err)
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

func parseSampleRecord(record []string) (Sample, error) {
	total, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("invalid %s '%s': %w", TotalTimeColumn, record[0], err)
	}
	kernel, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("invalid %s '%s': %w", KernelTimeColumn, record[1], err)
	}
	return Sample{TotalTime: total, KernelTime: kernel}, nil
}
