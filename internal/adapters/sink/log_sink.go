// internal/adapters/sink/log_sink.go
package sink

import (
	"context"

	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/logx"
)

// LogSink emite los eventos de ejecución por el logger estructurado.
type LogSink struct {
	logger logx.Logger
}

// NewLogSink crea un sink de logging.
func NewLogSink(logger logx.Logger) *LogSink {
	if logger == nil {
		logger = logx.New()
	}
	return &LogSink{logger: logger.With("component", "event-sink")}
}

// Emit registra el evento. Nunca falla.
func (s *LogSink) Emit(ctx context.Context, event ports.Event) error {
	args := []any{"kind", string(event.Kind), "value", event.Value, "source", event.Source}
	if event.Zone != "" {
		args = append(args, "zone", string(event.Zone))
	}
	for k, v := range event.Metadata {
		args = append(args, k, v)
	}

	if event.Kind == ports.EventKindSimilarDomain {
		s.logger.Info("event", args...)
	} else {
		s.logger.Debug("event", args...)
	}
	return nil
}

// Close no tiene recursos que liberar.
func (s *LogSink) Close() error {
	return nil
}
