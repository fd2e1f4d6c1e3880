package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// validateReportJSON is a helper function to validate the expected JSON structure
func validateReportJSON(t *testing.T, jsonData []byte, expectedPlatform string) {
	t.Helper()

	var reportData map[string]any
	err := json.Unmarshal(jsonData, &reportData)
	if err != nil {
		t.Fatalf("Report output is not valid JSON: %v\nOutput: %s", err, string(jsonData))
	}

	for _, field := range []string{"id", "generator", "date", "datasetId", "folder"} {
		if v, ok := reportData[field].(string); !ok || v == "" {
			t.Errorf("Field %s missing or empty in report", field)
		}
	}

	if expectedPlatform != "" && reportData["platform"] != expectedPlatform {
		t.Errorf("Field platform: expected %q, got %v", expectedPlatform, reportData["platform"])
	}
	if expectedPlatform == "" {
		if _, ok := reportData["platform"]; ok {
			t.Errorf("Field platform should be omitted when not given")
		}
	}
	if reportData["id"] == reportData["datasetId"] {
		t.Errorf("Report and dataset should have different identifiers")
	}

	samples, ok := reportData["samples"].([]any)
	if !ok {
		t.Fatalf("Expected samples to be an array, got %T", reportData["samples"])
	}
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}

	first, _ := samples[0].(map[string]any)
	delete(first, "fingerprint")
	expectedFirst := map[string]any{
		"filename":   "sdaccel_profile_summary_16.csv",
		"totalTime":  812.5,
		"kernelTime": 799.25,
	}
	if !reflect.DeepEqual(first, expectedFirst) {
		t.Errorf("First sample: expected %v, got %v", expectedFirst, first)
	}
}

// collectDataset runs a collect and returns the dataset written to STDOUT
func collectDataset(t *testing.T) []byte {
	t.Helper()

	dir := profileFolder(t)
	output := filepath.Join(t.TempDir(), "timings.csv")

	dataset, stderr, err := executeCommand(newRootCmd(), nil, "--dataset", "-", dir, "sdaccel", output)
	if err != nil {
		t.Fatalf("collect failed: %v\nstderr: %s", err, stderr)
	}
	return []byte(dataset)
}

func TestReport_Stdin(t *testing.T) {
	stdout, stderr, err := executeCommand(newReportCmd(), collectDataset(t), "-", "--platform", "xilinx_vcu1525", "--verbose")
	if err != nil {
		t.Fatalf("report failed: %v\nstderr: %s", err, stderr)
	}

	validateReportJSON(t, []byte(stdout), "xilinx_vcu1525")
	expectPatterns(t, stderr, `Loading cbor from STDIN`, `Report written to STDOUT`)
}

func TestReport_OutputFile(t *testing.T) {
	datasetFile := filepath.Join(t.TempDir(), "timings.cbor")
	if err := os.WriteFile(datasetFile, collectDataset(t), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	reportFile := filepath.Join(t.TempDir(), "report.json")

	stdout, stderr, err := executeCommand(newReportCmd(), nil, datasetFile, "--output", reportFile)
	if err != nil {
		t.Fatalf("report failed: %v\nstderr: %s", err, stderr)
	}
	if stdout != "" {
		t.Errorf("unexpected stdout output:\n%s", stdout)
	}

	jsonData, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	validateReportJSON(t, jsonData, "")
}

func TestReport_NotADataset(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "timings.csv")
	if err := os.WriteFile(csvFile, []byte("time_total,time_kernel\n1,2\n"), 0o600); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}

	_, _, err := executeCommand(newReportCmd(), nil, csvFile)
	if err == nil {
		t.Fatal("expected error for a CSV file, got nil")
	}
}
