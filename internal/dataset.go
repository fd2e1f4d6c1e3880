package internal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// TimeWrapper wraps time.Time to provide custom CBOR marshaling as tag 1004
type TimeWrapper struct {
	time.Time
}

// ProfileDataset records where every row of a collect run came from. This matches the structure of the CBOR files.
type ProfileDataset struct {
	Version    uint16       `cbor:"version"`
	Identifier string       `cbor:"id"`        // Unique identifier of the dataset
	Generator  string       `cbor:"generator"` // Generator identifier (e.g., the software creating the dataset)
	Date       *TimeWrapper `cbor:"date"`      // UTC date of collection
	Folder     string       `cbor:"folder"`
	Pattern    string       `cbor:"pattern"`
	Samples    []Sample     `cbor:"samples"`
}

// Sample is one processed profile summary, i.e. one CSV row.
type Sample struct {
	Filename    string  `cbor:"filename"`
	Fingerprint uint64  `cbor:"fingerprint"` // xxh3 hash of the file content
	TotalTime   float64 `cbor:"time_total"`
	KernelTime  float64 `cbor:"time_kernel"`
}

func newDataset(folder, pattern string, date *time.Time) ProfileDataset {
	dataset := ProfileDataset{
		Version:    DatasetFormatVersion,
		Identifier: uuid.New().String(),
		Generator:  fmt.Sprintf("sdaprof %s", Version),
		Folder:     folder,
		Pattern:    pattern,
		Samples:    []Sample{},
	}

	dataset.SetDate(date)
	return dataset
}

func newSample(filename string, content []byte, times ProfileTimes) Sample {
	return Sample{
		Filename:    filename,
		Fingerprint: xxh3.Hash(content),
		TotalTime:   times.TotalTime,
		KernelTime:  times.KernelTime,
	}
}

func (dataset *ProfileDataset) SetDate(date *time.Time) {
	if date == nil {
		now := time.Now().UTC()
		date = &now
	}
	var dateOnly = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dataset.Date = &TimeWrapper{Time: dateOnly}
}

// DateString returns the date in the format YYYY-MM-DD, or "unknown"
func (dataset *ProfileDataset) DateString() string {
	if dataset.Date == nil {
		return "unknown"
	}
	return dataset.Date.Format(time.DateOnly)
}

// FingerprintString returns the content hash as a fixed width hex string
func (s Sample) FingerprintString() string {
	if s.Fingerprint == 0 {
		return "-"
	}
	return fmt.Sprintf("%016x", s.Fingerprint)
}

// Duplicates returns the filenames of samples whose content is identical to an earlier sample, in sample order.
func (dataset *ProfileDataset) Duplicates() []string {
	seen := make(map[uint64]struct{}, len(dataset.Samples))
	var dups []string
	for _, s := range dataset.Samples {
		if s.Fingerprint == 0 {
			continue
		}
		if _, ok := seen[s.Fingerprint]; ok {
			dups = append(dups, s.Filename)
			continue
		}
		seen[s.Fingerprint] = struct{}{}
	}
	return dups
}
