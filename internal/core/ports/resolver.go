// internal/core/ports/resolver.go
package ports

import (
	"context"

	"tldhunt/internal/core/domain"
)

// HostResolver es el port para resolución DNS de candidatos.
type HostResolver interface {
	// Resolve resuelve un FQDN a sus direcciones. Un error o un slice
	// vacío significan que el nombre no resuelve.
	Resolve(ctx context.Context, name string) ([]string, error)
}

// WildcardChecker detecta zonas con DNS wildcard, donde cualquier
// etiqueta resuelve y los candidatos no aportan señal.
type WildcardChecker interface {
	// IsWildcard indica si la zona responde a nombres arbitrarios.
	IsWildcard(ctx context.Context, zone domain.Zone) bool
}
