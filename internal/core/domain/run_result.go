// internal/core/domain/run_result.go
package domain

import (
	"fmt"
	"time"
)

// RunResult representa el resultado completo de una búsqueda de
// dominios hermanos.
type RunResult struct {
	// ID identificador único de la ejecución
	ID string

	// Target objetivo de la búsqueda
	Target Target

	// Discoveries dominios hermanos confirmados
	Discoveries []Discovery

	// Metadata información sobre la ejecución
	Metadata RunMetadata

	// Warnings advertencias no críticas durante la ejecución
	Warnings []Warning

	// Errors errores ocurridos durante la ejecución
	Errors []Error
}

// Discovery es un dominio hermano confirmado.
type Discovery struct {
	// Value es el FQDN descubierto
	Value string

	// Zone es la zona bajo la que se encontró
	Zone Zone

	// Verified indica si el dominio sirvió contenido HTTP
	Verified bool

	// FoundAt momento del descubrimiento
	FoundAt time.Time
}

// RunMetadata contiene información sobre la ejecución.
type RunMetadata struct {
	// StartTime momento de inicio
	StartTime time.Time

	// EndTime momento de finalización
	EndTime time.Time

	// Duration duración total
	Duration time.Duration

	// TLDCount número de TLDs de la lista descargada
	TLDCount int

	// CandidatesGenerated candidatos emitidos por el generador
	CandidatesGenerated int

	// CandidatesResolved candidatos que resolvieron en DNS
	CandidatesResolved int

	// BatchesDispatched lotes enviados al resolver
	BatchesDispatched int

	// WildcardZonesSkipped zonas omitidas por wildcard DNS
	WildcardZonesSkipped int

	// Cancelled indica si la ejecución fue interrumpida
	Cancelled bool

	// Version versión de tldhunt utilizada
	Version string

	// Environment información del entorno (opcional)
	Environment map[string]string
}

// Warning representa una advertencia no crítica durante la ejecución.
type Warning struct {
	// Stage fase que generó la advertencia
	Stage string

	// Message descripción de la advertencia
	Message string

	// Timestamp momento de la advertencia
	Timestamp time.Time
}

// Error representa un error ocurrido durante la ejecución.
type Error struct {
	// Stage fase que generó el error
	Stage string

	// Message descripción del error
	Message string

	// Fatal indica si el error detuvo la ejecución
	Fatal bool

	// Timestamp momento del error
	Timestamp time.Time
}

// NewRunResult crea un nuevo resultado de ejecución.
func NewRunResult(target Target) *RunResult {
	return &RunResult{
		ID:          generateRunID(),
		Target:      target,
		Discoveries: []Discovery{},
		Metadata: RunMetadata{
			StartTime:   time.Now(),
			Environment: make(map[string]string),
		},
		Warnings: []Warning{},
		Errors:   []Error{},
	}
}

// AddDiscovery añade un descubrimiento al resultado.
func (r *RunResult) AddDiscovery(value string, zone Zone, verified bool) {
	if value == "" {
		return
	}
	r.Discoveries = append(r.Discoveries, Discovery{
		Value:    value,
		Zone:     zone,
		Verified: verified,
		FoundAt:  time.Now(),
	})
}

// AddWarning añade una advertencia al resultado.
func (r *RunResult) AddWarning(stage, message string) {
	r.Warnings = append(r.Warnings, Warning{
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// AddError añade un error al resultado.
func (r *RunResult) AddError(stage, message string, fatal bool) {
	r.Errors = append(r.Errors, Error{
		Stage:     stage,
		Message:   message,
		Fatal:     fatal,
		Timestamp: time.Now(),
	})
}

// Finalize marca la ejecución como completada y calcula la duración.
func (r *RunResult) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// TotalDiscoveries retorna el número de dominios descubiertos.
func (r *RunResult) TotalDiscoveries() int {
	return len(r.Discoveries)
}

// HasErrors indica si hubo errores durante la ejecución.
func (r *RunResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasFatalErrors indica si hubo errores fatales durante la ejecución.
func (r *RunResult) HasFatalErrors() bool {
	for _, err := range r.Errors {
		if err.Fatal {
			return true
		}
	}
	return false
}

// Summary retorna un resumen legible del resultado.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"RunResult{target=%s, discoveries=%d, warnings=%d, errors=%d, duration=%s}",
		r.Target.Root,
		len(r.Discoveries),
		len(r.Warnings),
		len(r.Errors),
		r.Metadata.Duration,
	)
}

// generateRunID genera un ID único para la ejecución basado en timestamp.
func generateRunID() string {
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}
