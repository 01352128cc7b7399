// internal/core/usecases/resolve_task.go
package usecases

import (
	"context"

	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
)

// resolveTask adapta la resolución de un candidato a workerpool.Task.
type resolveTask struct {
	candidate domain.Candidate
	resolver  ports.HostResolver

	// Result storage
	resolved bool
}

func newResolveTask(candidate domain.Candidate, resolver ports.HostResolver) *resolveTask {
	return &resolveTask{
		candidate: candidate,
		resolver:  resolver,
	}
}

// Execute resuelve el candidato. Un error o cero direcciones dejan el
// candidato como no resuelto.
func (rt *resolveTask) Execute(ctx context.Context) error {
	addrs, err := rt.resolver.Resolve(ctx, rt.candidate.Name)
	if err != nil {
		return err
	}
	rt.resolved = len(addrs) > 0
	return nil
}

// Name retorna el nombre de la tarea (el FQDN candidato).
func (rt *resolveTask) Name() string {
	return rt.candidate.Name
}
