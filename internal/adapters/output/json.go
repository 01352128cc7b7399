// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tldhunt/internal/core/domain"
)

// sanitizeDomainName convierte un nombre de dominio en un nombre de carpeta válido.
// Ejemplo: "example.com" -> "example_com"
func sanitizeDomainName(domain string) string {
	// Reemplazar puntos por guiones bajos
	sanitized := strings.ReplaceAll(domain, ".", "_")
	// Remover cualquier otro carácter que no sea alfanumérico, guión bajo o guión
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	return sanitized
}

// OutputJSON exporta el resultado en formato JSON.
func OutputJSON(dir string, result *domain.RunResult) error {
	if dir == "" {
		dir = "."
	}

	// Crear subdirectorio específico para el dominio
	domainDir := sanitizeDomainName(result.Target.Root)
	fullDir := filepath.Join(dir, domainDir)

	// Crear directorio completo si no existe
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Generar nombre de archivo con timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("tldhunt_%s_%s.json", result.Target.Root, timestamp)
	filepath := filepath.Join(fullDir, filename)

	// Crear archivo
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	// Codificar JSON con indentación
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// OutputJSONStdout exporta el resultado a stdout en formato JSON.
func OutputJSONStdout(result *domain.RunResult, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// RunSummary representa un resumen plano de una ejecución.
type RunSummary struct {
	Target               string         `json:"target"`
	Keyword              string         `json:"keyword"`
	TotalDiscoveries     int            `json:"total_discoveries"`
	DiscoveriesByZone    map[string]int `json:"discoveries_by_zone"`
	CompositeDiscoveries int            `json:"composite_discoveries"`
	CandidatesGenerated  int            `json:"candidates_generated"`
	CandidatesResolved   int            `json:"candidates_resolved"`
	WildcardZonesSkipped int            `json:"wildcard_zones_skipped"`
	Cancelled            bool           `json:"cancelled"`
	Timestamp            time.Time      `json:"timestamp"`
}

// BuildRunSummary construye un resumen desde un RunResult.
func BuildRunSummary(result *domain.RunResult) RunSummary {
	byZone := make(map[string]int)
	composites := 0
	for _, d := range result.Discoveries {
		byZone[string(d.Zone)]++
		if d.Zone.IsComposite() {
			composites++
		}
	}

	return RunSummary{
		Target:               result.Target.Root,
		Keyword:              result.Target.Keyword,
		TotalDiscoveries:     result.TotalDiscoveries(),
		DiscoveriesByZone:    byZone,
		CompositeDiscoveries: composites,
		CandidatesGenerated:  result.Metadata.CandidatesGenerated,
		CandidatesResolved:   result.Metadata.CandidatesResolved,
		WildcardZonesSkipped: result.Metadata.WildcardZonesSkipped,
		Cancelled:            result.Metadata.Cancelled,
		Timestamp:            result.Metadata.EndTime,
	}
}
