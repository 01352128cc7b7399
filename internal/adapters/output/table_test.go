// internal/adapters/output/table_test.go
package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"tldhunt/internal/core/domain"
)

// captureTable redirige la salida de pterm a un buffer durante la llamada.
func captureTable(t *testing.T, result *domain.RunResult) string {
	t.Helper()

	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableStyling()
	// pterm.Warning/pterm.Error capturan su Writer en el init del paquete,
	// así que SetDefaultOutput no los redirige; hay que sobrescribirlos.
	prevWarning, prevError := pterm.Warning.Writer, pterm.Error.Writer
	pterm.Warning.Writer = &buf
	pterm.Error.Writer = &buf
	defer func() {
		pterm.Warning.Writer = prevWarning
		pterm.Error.Writer = prevError
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	}()

	if err := OutputTable(result); err != nil {
		t.Fatalf("OutputTable() failed: %v", err)
	}
	return buf.String()
}

func TestOutputTable(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), true)
	result.AddDiscovery("example.co.uk", domain.Zone("co.uk"), false)
	result.Metadata.TLDCount = 5
	result.Metadata.CandidatesGenerated = 9
	result.Metadata.CandidatesResolved = 2
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "Hunt Results") {
		t.Error("output should contain header")
	}
	if !strings.Contains(output, "example.com") {
		t.Error("output should contain target")
	}
	if !strings.Contains(output, "example") {
		t.Error("output should contain keyword")
	}

	// Table headers
	for _, header := range []string{"DOMAIN", "ZONE", "VERIFIED"} {
		if !strings.Contains(output, header) {
			t.Errorf("output should contain %s header", header)
		}
	}

	// Discoveries appear with their zones
	if !strings.Contains(output, "example.net") {
		t.Error("output should contain discovered domain")
	}
	if !strings.Contains(output, "co.uk") {
		t.Error("output should contain composite zone")
	}
	if !strings.Contains(output, "yes") || !strings.Contains(output, "no") {
		t.Error("output should show verified status for each discovery")
	}
}

func TestOutputTable_NoDiscoveries(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "No similar domains discovered") {
		t.Error("output should indicate no discoveries")
	}
	if !strings.Contains(output, "Hunt Results") {
		t.Error("output should still contain header")
	}
}

func TestOutputTable_Cancelled(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddDiscovery("example.net", domain.Zone("net"), false)
	result.Metadata.Cancelled = true
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "canceled") {
		t.Error("output should mention the run was canceled")
	}
	if !strings.Contains(output, "example.net") {
		t.Error("partial discoveries should still be listed")
	}
}

func TestOutputTable_WithWarnings(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddWarning("resolve", "batch partially failed")
	result.AddWarning("wildcard", "probe timed out")
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "Warnings") {
		t.Error("output should contain Warnings section")
	}
	if !strings.Contains(output, "batch partially failed") {
		t.Error("output should contain warning message")
	}
	if !strings.Contains(output, "probe timed out") {
		t.Error("output should contain second warning")
	}
	if !strings.Contains(output, "(2)") {
		t.Error("output should show warning count")
	}
}

func TestOutputTable_WithErrors(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.AddError("resolve", "connection timeout", false)
	result.AddError("tldlist", "list unavailable", true)
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "Errors") {
		t.Error("output should contain Errors section")
	}
	if !strings.Contains(output, "connection timeout") {
		t.Error("output should contain error message")
	}
	if !strings.Contains(output, "list unavailable") {
		t.Error("output should contain second error")
	}
	if !strings.Contains(output, "(2)") {
		t.Error("output should show error count")
	}
	if !strings.Contains(output, "FATAL") {
		t.Error("output should mark fatal errors")
	}
}

func TestOutputTable_Counters(t *testing.T) {
	result := newTestResult(t, "example.com")
	result.Metadata.TLDCount = 1442
	result.Metadata.CandidatesGenerated = 7200
	result.Metadata.CandidatesResolved = 12
	result.Metadata.WildcardZonesSkipped = 3
	result.Finalize()

	output := captureTable(t, result)

	if !strings.Contains(output, "1442") {
		t.Error("output should show TLD count")
	}
	if !strings.Contains(output, "7200") {
		t.Error("output should show candidates generated")
	}
	if !strings.Contains(output, "skipped 3") {
		t.Error("output should show wildcard zones skipped")
	}
	if !strings.Contains(output, "Duration:") {
		t.Error("output should show duration")
	}
}
