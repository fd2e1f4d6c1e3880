package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// profileSummary returns an SDAccel style timing summary with the given clWaitForEvents and kernel total times
func profileSummary(totalTime, kernelTime string) string {
	return fmt.Sprintf(`Profile Summary
Generated on: 2018-06-12 14:12:55
Msec since Epoch: 1528805575411
Profiled application: RunJacobi2D.exe
Target platform: Xilinx
Tool version: 2017.4
Target devices: xilinx_vcu1525_dynamic_5_1-0
Flow mode: System Run

OpenCL API Calls
API Name,Number Of Calls,Total Time (ms),Minimum Time (ms),Average Time (ms),Maximum Time (ms),
clWaitForEvents,4,%s,0.00275,383.355,1533.37,
clCreateProgramWithBinary,1,812.005,812.005,812.005,812.005,
clEnqueueMigrateMemObjects,3,2.11232,0.0341,0.70410,2.01513,

Kernel Execution
Kernel,Number Of Enqueues,Total Time (ms),Minimum Time (ms),Average Time (ms),Maximum Time (ms),
Jacobi2D,1,%s,1521.87,1521.87,1521.87,

Compute Unit Utilization
Device,Compute Unit,Kernel,Global Work Size,Local Work Size,Number Of Calls,Total Time (ms),Minimum Time (ms),Average Time (ms),Maximum Time (ms),Clock Frequency (MHz),
xilinx_vcu1525_dynamic_5_1-0,Jacobi2D_1,Jacobi2D,1:1:1,1:1:1,1,1521.84,1521.84,1521.84,1521.84,250,
`, totalTime, kernelTime)
}

// writeFiles creates the given files in a new temporary directory and returns its path
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// readLines returns the lines of a file, without the trailing empty line
func readLines(t *testing.T, filename string) []string {
	t.Helper()

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	if len(data) == 0 {
		return nil
	}
	if data[len(data)-1] != '\n' {
		t.Fatalf("%s does not end with a newline: %q", filename, string(data))
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
