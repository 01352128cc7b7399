// internal/core/ports/sink.go
package ports

import (
	"context"
	"time"

	"tldhunt/internal/core/domain"
)

// EventKind clasifica los eventos emitidos durante una ejecución.
type EventKind string

const (
	// EventKindSimilarDomain es un dominio hermano confirmado. El valor
	// literal forma parte del contrato con consumidores externos.
	EventKindSimilarDomain EventKind = "SIMILARDOMAIN"

	// Eventos de ciclo de vida
	EventKindRunStarted    EventKind = "run.started"
	EventKindBatchResolved EventKind = "batch.resolved"
	EventKindRunCompleted  EventKind = "run.completed"
	EventKindRunCanceled   EventKind = "run.canceled"
)

// Event es una notificación puntual emitida durante la ejecución.
type Event struct {
	// Kind clasifica el evento
	Kind EventKind

	// Value es el dato principal (FQDN para descubrimientos)
	Value string

	// Source identifica el productor del evento
	Source string

	// Zone es la zona asociada, si aplica
	Zone domain.Zone

	// Timestamp momento de emisión
	Timestamp time.Time

	// Metadata contexto adicional
	Metadata map[string]string
}

// NewEvent construye un evento con timestamp actual.
func NewEvent(kind EventKind, value string) Event {
	return Event{
		Kind:      kind,
		Value:     value,
		Source:    "tldhunt",
		Timestamp: time.Now(),
		Metadata:  make(map[string]string),
	}
}

// Sink es el port de salida para eventos de ejecución.
type Sink interface {
	// Emit entrega un evento al consumidor.
	Emit(ctx context.Context, event Event) error

	// Close libera recursos del sink.
	Close() error
}
