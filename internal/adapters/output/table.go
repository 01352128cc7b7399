// internal/adapters/output/table.go
package output

import (
	"fmt"

	"github.com/pterm/pterm"

	"tldhunt/internal/core/domain"
)

// OutputTable imprime un resumen legible en terminal.
func OutputTable(result *domain.RunResult) error {
	pterm.DefaultSection.Println("Hunt Results")

	info := fmt.Sprintf("Target: %s\n", pterm.Cyan(result.Target.Root))
	info += fmt.Sprintf("Keyword: %s\n", pterm.Yellow(result.Target.Keyword))
	info += fmt.Sprintf("Duration: %s\n", result.Metadata.Duration)
	info += fmt.Sprintf("TLDs: %d\n", result.Metadata.TLDCount)
	info += fmt.Sprintf("Candidates: %d (resolved %d, wildcard zones skipped %d)\n",
		result.Metadata.CandidatesGenerated,
		result.Metadata.CandidatesResolved,
		result.Metadata.WildcardZonesSkipped,
	)
	info += fmt.Sprintf("Discoveries: %d", result.TotalDiscoveries())
	pterm.DefaultBox.Println(info)

	if result.Metadata.Cancelled {
		pterm.Warning.Println("Run was canceled before completing; results are partial.")
	}

	// Tabla de descubrimientos
	if len(result.Discoveries) > 0 {
		data := pterm.TableData{{"DOMAIN", "ZONE", "VERIFIED", "FOUND AT"}}
		for _, d := range result.Discoveries {
			verified := "no"
			if d.Verified {
				verified = "yes"
			}
			data = append(data, []string{
				d.Value,
				string(d.Zone),
				verified,
				d.FoundAt.Format("15:04:05"),
			})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	} else {
		pterm.DefaultBasicText.Println("No similar domains discovered.")
	}

	// Warnings
	if len(result.Warnings) > 0 {
		pterm.DefaultBasicText.Println()
		pterm.Warning.Printfln("Warnings (%d):", len(result.Warnings))
		for i, warning := range result.Warnings {
			pterm.DefaultBasicText.Printfln("  %d. [%s] %s", i+1, warning.Stage, warning.Message)
		}
	}

	// Errors
	if len(result.Errors) > 0 {
		pterm.DefaultBasicText.Println()
		pterm.Error.Printfln("Errors (%d):", len(result.Errors))
		for i, err := range result.Errors {
			fatal := ""
			if err.Fatal {
				fatal = " (FATAL)"
			}
			pterm.DefaultBasicText.Printfln("  %d. [%s] %s%s", i+1, err.Stage, err.Message, fatal)
		}
	}

	pterm.DefaultBasicText.Println()
	return nil
}
