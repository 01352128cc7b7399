// internal/adapters/output/json_test.go
package output

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tldhunt/internal/core/domain"
)

func newTestResult(t *testing.T, root string) *domain.RunResult {
	t.Helper()
	target := domain.NewTarget(root)
	if err := target.Validate(); err != nil {
		t.Fatalf("Validate() failed for %q: %v", root, err)
	}
	return domain.NewRunResult(*target)
}

func TestOutputJSON(t *testing.T) {
	tmpDir := t.TempDir()

	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), true)
	result.AddDiscovery("example.org", domain.Zone("org"), false)
	result.Finalize()

	err := OutputJSON(tmpDir, result)
	if err != nil {
		t.Fatalf("OutputJSON() failed: %v", err)
	}

	// Verify subdirectory was created
	domainDir := filepath.Join(tmpDir, "example_com")
	files, err := os.ReadDir(domainDir)
	if err != nil {
		t.Fatalf("failed to read domain subdirectory: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file in subdirectory, got %d", len(files))
	}

	// Verify filename format
	filename := files[0].Name()
	if !strings.HasPrefix(filename, "tldhunt_example.com_") {
		t.Errorf("filename should start with 'tldhunt_example.com_', got %q", filename)
	}
	if !strings.HasSuffix(filename, ".json") {
		t.Errorf("filename should end with '.json', got %q", filename)
	}

	// Verify file content
	filePath := filepath.Join(domainDir, filename)
	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var decodedResult domain.RunResult
	if err := json.Unmarshal(data, &decodedResult); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if decodedResult.Target.Root != "example.com" {
		t.Errorf("Target.Root: expected %q, got %q", "example.com", decodedResult.Target.Root)
	}
	if len(decodedResult.Discoveries) != 2 {
		t.Errorf("Discoveries: expected 2, got %d", len(decodedResult.Discoveries))
	}

	// Verify JSON is indented (pretty-printed)
	if !strings.Contains(string(data), "\n") || !strings.Contains(string(data), "  ") {
		t.Error("JSON should be pretty-printed with indentation")
	}
}

func TestOutputJSON_EmptyDir(t *testing.T) {
	result := newTestResult(t, "example.com")

	// Execute with empty dir (should use current directory)
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer os.Chdir(originalWd)

	os.Chdir(tmpDir)

	err := OutputJSON("", result)
	if err != nil {
		t.Fatalf("OutputJSON() with empty dir failed: %v", err)
	}

	// Verify subdirectory was created in current directory
	domainDir := "./example_com"
	files, err := os.ReadDir(domainDir)
	if err != nil {
		t.Fatalf("failed to read domain subdirectory in current dir: %v", err)
	}

	found := false
	for _, file := range files {
		if strings.HasPrefix(file.Name(), "tldhunt_") && strings.HasSuffix(file.Name(), ".json") {
			found = true
			break
		}
	}

	if !found {
		t.Error("expected JSON file to be created in current directory subdirectory")
	}
}

func TestOutputJSON_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "nested", "output", "dir")

	result := newTestResult(t, "example.com")

	err := OutputJSON(outputDir, result)
	if err != nil {
		t.Fatalf("OutputJSON() failed to create nested directory: %v", err)
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		t.Error("output directory should be created")
	}

	files, err := os.ReadDir(filepath.Join(outputDir, "example_com"))
	if err != nil {
		t.Fatalf("failed to read output dir: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d", len(files))
	}
}

func TestOutputJSON_InvalidDirectory(t *testing.T) {
	result := newTestResult(t, "example.com")

	// Try to write to a file as if it were a directory
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "file.txt")
	os.WriteFile(invalidPath, []byte("test"), 0644)

	err := OutputJSON(filepath.Join(invalidPath, "subdir"), result)
	if err == nil {
		t.Error("OutputJSON() should fail with invalid directory path")
	}
}

func TestOutputJSON_TimestampFormat(t *testing.T) {
	tmpDir := t.TempDir()

	result := newTestResult(t, "test.com")

	err := OutputJSON(tmpDir, result)
	if err != nil {
		t.Fatalf("OutputJSON() failed: %v", err)
	}

	domainDir := filepath.Join(tmpDir, "test_com")
	files, err := os.ReadDir(domainDir)
	if err != nil {
		t.Fatalf("failed to read domain subdirectory: %v", err)
	}

	filename := files[0].Name()

	// Extract timestamp from filename: tldhunt_test.com_20060102_150405.json
	parts := strings.Split(filename, "_")
	if len(parts) < 3 {
		t.Fatalf("unexpected filename format: %q", filename)
	}

	timestampPart := strings.TrimSuffix(strings.Join(parts[2:], "_"), ".json")

	_, err = time.Parse("20060102_150405", timestampPart)
	if err != nil {
		t.Errorf("timestamp format is invalid: %q, error: %v", timestampPart, err)
	}
}

func TestOutputJSON_WithWarningsAndErrors(t *testing.T) {
	tmpDir := t.TempDir()

	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.biz", domain.Zone("biz"), false)
	result.AddWarning("resolve", "batch partially failed")
	result.AddError("tldlist", "connection timeout", false)
	result.Finalize()

	err := OutputJSON(tmpDir, result)
	if err != nil {
		t.Fatalf("OutputJSON() failed: %v", err)
	}

	domainDir := filepath.Join(tmpDir, "example_com")
	files, err := os.ReadDir(domainDir)
	if err != nil {
		t.Fatalf("failed to read domain subdirectory: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(domainDir, files[0].Name()))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	var decoded domain.RunResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if len(decoded.Discoveries) != 1 {
		t.Errorf("Discoveries: expected 1, got %d", len(decoded.Discoveries))
	}
	if len(decoded.Warnings) != 1 {
		t.Errorf("Warnings: expected 1, got %d", len(decoded.Warnings))
	}
	if len(decoded.Errors) != 1 {
		t.Errorf("Errors: expected 1, got %d", len(decoded.Errors))
	}
}

func TestOutputJSONStdout_Pretty(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), true)
	result.Finalize()

	// Redirect stdout to capture output
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := OutputJSONStdout(result, true)

	w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("OutputJSONStdout() failed: %v", err)
	}

	var buf strings.Builder
	io.Copy(&buf, r)
	output := buf.String()

	var decoded domain.RunResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !strings.Contains(output, "\n") || !strings.Contains(output, "  ") {
		t.Error("JSON should be pretty-printed when pretty=true")
	}

	if decoded.Target.Root != "example.com" {
		t.Errorf("Target.Root: expected %q, got %q", "example.com", decoded.Target.Root)
	}
}

func TestOutputJSONStdout_Compact(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), true)
	result.Finalize()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := OutputJSONStdout(result, false)

	w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("OutputJSONStdout() failed: %v", err)
	}

	var buf strings.Builder
	io.Copy(&buf, r)
	output := buf.String()

	var decoded domain.RunResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 3 {
		t.Logf("Compact JSON has %d lines, expected fewer for compact mode", len(lines))
	}
}

func TestSanitizeDomainName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"example.com", "example_com"},
		{"sub.example.co.uk", "sub_example_co_uk"},
		{"xn--p1ai", "xn--p1ai"},
	}

	for _, tt := range tests {
		if got := sanitizeDomainName(tt.input); got != tt.expected {
			t.Errorf("sanitizeDomainName(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestBuildRunSummary(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), true)
	result.AddDiscovery("example.org", domain.Zone("org"), false)
	result.AddDiscovery("example.co.uk", domain.Zone("co.uk"), false)
	result.Metadata.TLDCount = 5
	result.Metadata.CandidatesGenerated = 9
	result.Metadata.CandidatesResolved = 3
	result.Metadata.WildcardZonesSkipped = 1
	result.Finalize()

	summary := BuildRunSummary(result)

	if summary.Target != "example.com" {
		t.Errorf("Target: expected %q, got %q", "example.com", summary.Target)
	}
	if summary.Keyword != "example" {
		t.Errorf("Keyword: expected %q, got %q", "example", summary.Keyword)
	}
	if summary.TotalDiscoveries != 3 {
		t.Errorf("TotalDiscoveries: expected 3, got %d", summary.TotalDiscoveries)
	}
	if summary.DiscoveriesByZone["net"] != 1 {
		t.Errorf("DiscoveriesByZone[net]: expected 1, got %d", summary.DiscoveriesByZone["net"])
	}
	if summary.DiscoveriesByZone["co.uk"] != 1 {
		t.Errorf("DiscoveriesByZone[co.uk]: expected 1, got %d", summary.DiscoveriesByZone["co.uk"])
	}
	if summary.CompositeDiscoveries != 1 {
		t.Errorf("CompositeDiscoveries: expected 1, got %d", summary.CompositeDiscoveries)
	}
	if summary.CandidatesGenerated != 9 {
		t.Errorf("CandidatesGenerated: expected 9, got %d", summary.CandidatesGenerated)
	}
	if summary.WildcardZonesSkipped != 1 {
		t.Errorf("WildcardZonesSkipped: expected 1, got %d", summary.WildcardZonesSkipped)
	}
	if summary.Cancelled {
		t.Error("Cancelled: expected false")
	}
}
