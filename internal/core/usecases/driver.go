// internal/core/usecases/driver.go
package usecases

import (
	"context"
	"fmt"

	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/logx"
)

// Fases de una ejecución, en orden de avance.
const (
	phaseIdle        = "idle"
	phaseFetchingTLD = "fetching_tld_list"
	phaseGenerating  = "generating"
	phaseDraining    = "draining"
	phaseDone        = "done"
	phaseCancelled   = "cancelled"
)

// Driver coordina una ejecución completa: descarga de la lista de
// TLDs, generación de candidatos, resolución por lotes, verificación
// de contenido y emisión de descubrimientos.
type Driver struct {
	opts     DriverOptions
	resolver *BatchResolver
	verifier *ContentVerifier
	logger   logx.Logger

	phase string
}

// DriverOptions configura el driver. Todas las capacidades externas
// (red DNS, HTTP, sinks) se inyectan como ports.
type DriverOptions struct {
	Target domain.Target

	TLDListURL    string
	CommonTLDs    []string
	CheckCommon   bool
	SkipWildcards bool
	ActiveOnly    bool

	// MaxConcurrency acota resoluciones simultáneas y el tamaño de lote
	MaxConcurrency int

	Version string

	Fetcher   ports.PageFetcher
	Resolver  ports.HostResolver
	Wildcards ports.WildcardChecker
	Sinks     []ports.Sink

	Logger logx.Logger
}

// NewDriver crea un driver listo para ejecutar.
func NewDriver(opts DriverOptions) (*Driver, error) {
	if opts.Target.Keyword == "" {
		return nil, domain.ErrEmptyKeyword
	}
	if opts.MaxConcurrency < 1 {
		return nil, domain.ErrInvalidConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	logger := opts.Logger.With("component", "driver")

	return &Driver{
		opts: opts,
		resolver: NewBatchResolver(BatchResolverOptions{
			Resolver:       opts.Resolver,
			MaxConcurrency: opts.MaxConcurrency,
			Logger:         opts.Logger,
		}),
		verifier: NewContentVerifier(opts.Fetcher, opts.Logger),
		logger:   logger,
		phase:    phaseIdle,
	}, nil
}

// Run ejecuta la búsqueda completa. Los fallos operativos (lista de
// TLDs inalcanzable, cancelación) quedan registrados en el resultado;
// el error de retorno se reserva para fallos de programación.
func (d *Driver) Run(ctx context.Context) (*domain.RunResult, error) {
	result := domain.NewRunResult(d.opts.Target)
	result.Metadata.Version = d.opts.Version

	d.emit(ctx, ports.NewEvent(ports.EventKindRunStarted, d.opts.Target.Root))
	d.logger.Info("starting hunt",
		"target", d.opts.Target.Root,
		"keyword", d.opts.Target.Keyword,
		"concurrency", d.opts.MaxConcurrency,
		"active_only", d.opts.ActiveOnly,
	)

	d.setPhase(phaseFetchingTLD)
	tlds, err := d.fetchTLDList(ctx)
	if err != nil {
		result.AddError("tldlist", err.Error(), true)
		d.logger.Err(err, "stage", "tldlist", "url", d.opts.TLDListURL)
		d.finish(ctx, result)
		return result, nil
	}
	result.Metadata.TLDCount = len(tlds)
	d.logger.Info("tld list fetched", "tlds", len(tlds))

	generator := NewCandidateGenerator(GeneratorOptions{
		Target:        d.opts.Target,
		TLDs:          tlds,
		CommonTLDs:    d.opts.CommonTLDs,
		CheckCommon:   d.opts.CheckCommon,
		SkipWildcards: d.opts.SkipWildcards,
		Wildcards:     d.opts.Wildcards,
		Logger:        d.opts.Logger,
	})

	d.setPhase(phaseGenerating)
	batch := make(domain.Batch, 0, d.opts.MaxConcurrency)
	stats, genErr := generator.Each(ctx, func(candidate domain.Candidate) error {
		batch = append(batch, candidate)
		if len(batch) >= d.opts.MaxConcurrency {
			d.flush(ctx, batch, result)
			batch = batch[:0]
			// El lote en vuelo siempre termina; el corte se decide aquí
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
	result.Metadata.CandidatesGenerated = stats.Emitted
	result.Metadata.WildcardZonesSkipped = stats.SkippedZones

	if genErr != nil {
		// Cancelación a mitad de generación: el lote parcial se descarta
		d.setPhase(phaseCancelled)
		result.Metadata.Cancelled = true
		result.AddWarning("driver", "run canceled before completing generation")
		d.emit(ctx, ports.NewEvent(ports.EventKindRunCanceled, d.opts.Target.Root))
		d.logger.Warn("hunt canceled",
			"generated", stats.Emitted,
			"discoveries", result.TotalDiscoveries(),
		)
		result.Finalize()
		return result, nil
	}

	d.setPhase(phaseDraining)
	if len(batch) > 0 {
		d.flush(ctx, batch, result)
	}

	d.finish(ctx, result)
	return result, nil
}

// Close libera el pool de resolución y los sinks.
func (d *Driver) Close() error {
	d.resolver.Close()
	for _, sink := range d.opts.Sinks {
		if err := sink.Close(); err != nil {
			d.logger.Warn("sink close failed", "error", err.Error())
		}
	}
	return nil
}

// fetchTLDList descarga y parsea la lista de TLDs.
func (d *Driver) fetchTLDList(ctx context.Context) ([]string, error) {
	body, err := d.opts.Fetcher.Fetch(ctx, d.opts.TLDListURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTLDListUnavailable, err)
	}

	tlds := ParseTLDList(body)
	if len(tlds) == 0 {
		return nil, domain.ErrTLDListEmpty
	}
	return tlds, nil
}

// flush resuelve un lote completo, verifica contenido si procede y
// emite los descubrimientos.
func (d *Driver) flush(ctx context.Context, batch domain.Batch, result *domain.RunResult) {
	result.Metadata.BatchesDispatched++

	outcome := d.resolver.ResolveBatch(batch)
	result.Metadata.CandidatesResolved += outcome.Resolved()

	batchEvent := ports.NewEvent(ports.EventKindBatchResolved, d.opts.Target.Root)
	batchEvent.Metadata["size"] = fmt.Sprintf("%d", len(batch))
	batchEvent.Metadata["resolved"] = fmt.Sprintf("%d", outcome.Resolved())
	d.emit(ctx, batchEvent)

	for _, candidate := range FilterResolved(batch, outcome, d.opts.Target) {
		verified := false
		if d.opts.ActiveOnly {
			verified = d.verifier.HasContent(ctx, candidate.Name)
			if !verified {
				d.logger.Debug("domain resolves but serves no content", "domain", candidate.Name)
				continue
			}
		}

		result.AddDiscovery(candidate.Name, candidate.Zone, verified)

		event := ports.NewEvent(ports.EventKindSimilarDomain, candidate.Name)
		event.Zone = candidate.Zone
		d.emit(ctx, event)

		d.logger.Info("similar domain found",
			"domain", candidate.Name,
			"zone", string(candidate.Zone),
			"verified", verified,
		)
	}
}

// finish cierra el resultado y emite el evento final.
func (d *Driver) finish(ctx context.Context, result *domain.RunResult) {
	d.setPhase(phaseDone)
	result.Finalize()

	event := ports.NewEvent(ports.EventKindRunCompleted, d.opts.Target.Root)
	event.Metadata["discoveries"] = fmt.Sprintf("%d", result.TotalDiscoveries())
	d.emit(ctx, event)

	d.logger.Info("hunt completed",
		"discoveries", result.TotalDiscoveries(),
		"candidates", result.Metadata.CandidatesGenerated,
		"batches", result.Metadata.BatchesDispatched,
		"duration", result.Metadata.Duration.String(),
	)
}

// emit entrega un evento a todos los sinks configurados.
func (d *Driver) emit(ctx context.Context, event ports.Event) {
	for _, sink := range d.opts.Sinks {
		if err := sink.Emit(ctx, event); err != nil {
			d.logger.Warn("sink emit failed",
				"kind", string(event.Kind),
				"error", err.Error(),
			)
		}
	}
}

func (d *Driver) setPhase(phase string) {
	d.logger.Debug("phase transition", "from", d.phase, "to", phase)
	d.phase = phase
}
