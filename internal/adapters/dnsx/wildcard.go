// internal/adapters/dnsx/wildcard.go
package dnsx

import (
	"context"
	"math/rand"
	"time"

	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/cache"
	"tldhunt/internal/platform/logx"
)

const (
	probeLabelLength = 12
	wildcardCacheTTL = 30 * time.Minute
	wildcardCacheCap = 2048
)

const probeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// WildcardChecker detecta zonas con resolución wildcard sondeando una
// etiqueta aleatoria: si un nombre que no debería existir resuelve, la
// zona responde a cualquier cosa. Los veredictos se cachean por zona.
type WildcardChecker struct {
	resolver ports.HostResolver
	cache    *cache.MemoryCache
	logger   logx.Logger
}

// NewWildcardChecker crea un detector de wildcards sobre un resolver.
func NewWildcardChecker(resolver ports.HostResolver, logger logx.Logger) *WildcardChecker {
	if logger == nil {
		logger = logx.New()
	}
	return &WildcardChecker{
		resolver: resolver,
		cache:    cache.NewMemoryCache(wildcardCacheCap),
		logger:   logger.With("component", "wildcard-checker"),
	}
}

// IsWildcard indica si la zona resuelve etiquetas arbitrarias. Un
// fallo del sondeo cuenta como no-wildcard para no descartar zonas
// por errores transitorios.
func (w *WildcardChecker) IsWildcard(ctx context.Context, zone domain.Zone) bool {
	key := string(zone)
	if cached, ok := w.cache.Get(key); ok {
		return cached.(bool)
	}

	probe := randomLabel(probeLabelLength) + "." + string(zone)
	addrs, err := w.resolver.Resolve(ctx, probe)
	wildcard := err == nil && len(addrs) > 0

	if wildcard {
		w.logger.Debug("wildcard zone detected", "zone", key, "probe", probe)
	}

	w.cache.Set(key, wildcard, wildcardCacheTTL)
	return wildcard
}

func randomLabel(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = probeAlphabet[rand.Intn(len(probeAlphabet))]
	}
	return string(b)
}
