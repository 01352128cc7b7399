// internal/core/usecases/verifier.go
package usecases

import (
	"bytes"
	"context"

	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/logx"
)

// ContentVerifier comprueba si un dominio resuelto sirve contenido
// HTTP. Se usa en modo active-only para separar dominios aparcados o
// vacíos de los que están realmente en uso.
type ContentVerifier struct {
	fetcher ports.PageFetcher
	logger  logx.Logger
}

// NewContentVerifier crea un verificador de contenido.
func NewContentVerifier(fetcher ports.PageFetcher, logger logx.Logger) *ContentVerifier {
	if logger == nil {
		logger = logx.New()
	}
	return &ContentVerifier{
		fetcher: fetcher,
		logger:  logger.With("component", "verifier"),
	}
}

// HasContent indica si el dominio responde por HTTP con un cuerpo no
// vacío. Errores de red y contextos cancelados cuentan como sin
// contenido.
func (v *ContentVerifier) HasContent(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}

	body, err := v.fetcher.Fetch(ctx, "http://"+name+"/")
	if err != nil {
		v.logger.Debug("content probe failed", "domain", name, "error", err.Error())
		return false
	}

	return len(bytes.TrimSpace(body)) > 0
}
