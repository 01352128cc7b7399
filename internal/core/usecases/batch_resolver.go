// internal/core/usecases/batch_resolver.go
package usecases

import (
	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/logx"
	"tldhunt/internal/platform/workerpool"
)

// BatchResolver resuelve lotes de candidatos sobre un worker pool de
// ancho fijo. El ancho del pool es la cota de resoluciones simultáneas.
type BatchResolver struct {
	pool     *workerpool.WorkerPool
	resolver ports.HostResolver
	logger   logx.Logger
}

// BatchResolverOptions configura el batch resolver.
type BatchResolverOptions struct {
	Resolver       ports.HostResolver
	MaxConcurrency int
	Logger         logx.Logger
}

// NewBatchResolver crea un batch resolver con su pool ya arrancado.
func NewBatchResolver(opts BatchResolverOptions) *BatchResolver {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers: opts.MaxConcurrency,
		Logger:  opts.Logger,
	})
	pool.Start()

	return &BatchResolver{
		pool:     pool,
		resolver: opts.Resolver,
		logger:   opts.Logger.With("component", "batch-resolver"),
	}
}

// ResolveBatch resuelve todos los candidatos del lote y bloquea hasta
// tener un veredicto por candidato. El outcome contiene exactamente una
// entrada por candidato.
func (br *BatchResolver) ResolveBatch(batch domain.Batch) domain.ResolutionOutcome {
	outcome := make(domain.ResolutionOutcome, len(batch))
	if len(batch) == 0 {
		return outcome
	}

	// Pre-sembrar un veredicto por candidato; los tasks solo lo mejoran
	for _, name := range batch.Names() {
		outcome[name] = false
	}

	tasks := make([]workerpool.Task, len(batch))
	for i, candidate := range batch {
		tasks[i] = newResolveTask(candidate, br.resolver)
	}

	results := br.pool.Submit(tasks)

	for _, res := range results {
		task, ok := res.Task.(*resolveTask)
		if !ok {
			continue
		}
		outcome[task.candidate.Name] = res.Error == nil && task.resolved
	}

	br.logger.Debug("batch resolved",
		"size", len(batch),
		"resolved", outcome.Resolved(),
	)

	return outcome
}

// Close detiene el pool subyacente.
func (br *BatchResolver) Close() {
	br.pool.Stop()
}
