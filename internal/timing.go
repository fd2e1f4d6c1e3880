package internal

import (
	"time"
)

// TimingStats tracks how long a run took, and how much of it was spent scanning profile summaries
type TimingStats struct {
	TotalStart   time.Time
	TotalElapsed time.Duration
	ScanStart    time.Time
	ScanElapsed  time.Duration
}

func NewTimingStats() *TimingStats {
	return &TimingStats{
		TotalStart: time.Now(),
	}
}

// StartScan marks the beginning of the directory scan
func (ts *TimingStats) StartScan() {
	ts.ScanStart = time.Now()
}

// StopScan marks the end of the directory scan, successful or not
func (ts *TimingStats) StopScan() {
	ts.ScanElapsed = time.Since(ts.ScanStart)
}

// Finish calculates the total elapsed time
func (ts *TimingStats) Finish() {
	ts.TotalElapsed = time.Since(ts.TotalStart)
}
