package internal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The SDAccel timing summary is a loose collection of CSV tables. Only two values are picked out of it:
//
//	clWaitForEvents,<calls>,<total time>,...
//
// from the API call table, and the third column of the first data row under
//
//	Kernel Execution
//	<column headings>
//	<kernel>,<enqueues>,<total time>,...
//
// Values end at the next comma or end of line.
var (
	totalTimePattern  = regexp.MustCompile(`clWaitForEvents,[^,]+,([^,\n]+)`)
	kernelTimePattern = regexp.MustCompile("Kernel Execution\n[^\n]+\n[^,]+,[^,]+,([^,\n]+)")
)

// ErrNoMatch is returned when a timing value cannot be located in a profile summary.
var ErrNoMatch = errors.New("no match")

// ProfileTimes holds the timing values extracted from one profile summary
type ProfileTimes struct {
	TotalTime  float64
	KernelTime float64
}

// ExtractTotalTime returns the total time spent in clWaitForEvents.
func ExtractTotalTime(content string) (float64, error) {
	return extractValue(totalTimePattern, content, TotalTimeColumn)
}

// ExtractKernelTime returns the total time of the first kernel listed in the Kernel Execution table.
func ExtractKernelTime(content string) (float64, error) {
	return extractValue(kernelTimePattern, content, KernelTimeColumn)
}

// ParseProfileSummary extracts both timing values. Both must be present.
// CRLF and lone CR line endings are read as LF.
func ParseProfileSummary(content string) (ProfileTimes, error) {
	content = normalizeNewlines(content)

	total, err := ExtractTotalTime(content)
	if err != nil {
		return ProfileTimes{}, err
	}
	kernel, err := ExtractKernelTime(content)
	if err != nil {
		return ProfileTimes{}, err
	}
	return ProfileTimes{TotalTime: total, KernelTime: kernel}, nil
}

func extractValue(pattern *regexp.Regexp, content, name string) (float64, error) {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return 0, fmt.Errorf("%s: %w for %q", name, ErrNoMatch, pattern.String())
	}

	value, err := parseTimeValue(strings.TrimSpace(m[1]))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid value '%s': %w", name, m[1], err)
	}
	return value, nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return newlineReplacer.Replace(content)
}

// parseTimeValue parses a decimal float. Values too large for a float64 become +Inf or -Inf.
// Hexadecimal floats are not decimal values and are rejected.
func parseTimeValue(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		// ParseFloat already returns the correctly signed infinity
		return value, nil
	}
	return value, err
}
