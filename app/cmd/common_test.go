package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/cobra"
)

// profileSummary returns a minimal SDAccel timing summary
func profileSummary(totalTime, kernelTime string) string {
	return fmt.Sprintf(`OpenCL API Calls
API Name,Number Of Calls,Total Time (ms),Minimum Time (ms),Average Time (ms),Maximum Time (ms),
clWaitForEvents,4,%s,0.00275,383.355,1533.37,

Kernel Execution
Kernel,Number Of Enqueues,Total Time (ms),Minimum Time (ms),Average Time (ms),Maximum Time (ms),
Jacobi2D,1,%s,1521.87,1521.87,1521.87,
`, totalTime, kernelTime)
}

// profileFolder creates a temporary folder with profile summaries, plus one file that is not a profile summary
func profileFolder(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"sdaccel_profile_summary_8.csv":  profileSummary("1533.42", "1521.87"),
		"sdaccel_profile_summary_16.csv": profileSummary("812.5", "799.25"),
		"README.md":                      "# Not a profile, never read",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// executeCommand runs cmd with args and returns what it wrote to stdout and stderr
func executeCommand(cmd *cobra.Command, stdin []byte, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if stdin != nil {
		cmd.SetIn(bytes.NewReader(stdin))
	}
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// expectPatterns fails the test for every pattern not found in output
func expectPatterns(t *testing.T, output string, patterns ...string) {
	t.Helper()

	for _, pattern := range patterns {
		if !regexp.MustCompile(pattern).MatchString(output) {
			t.Errorf("expected pattern %q not found in output:\n%s", pattern, output)
		}
	}
}
