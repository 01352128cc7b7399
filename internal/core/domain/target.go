// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"

	"tldhunt/internal/platform/validator"
)

// Target representa el dominio objetivo y el keyword derivado de él.
type Target struct {
	// Root es el dominio objetivo normalizado
	Root string

	// Keyword es la etiqueta registrable del root (ej: "example" para
	// sub.example.co.uk), usada para construir candidatos hermanos
	Keyword string
}

// NewTarget crea un target sin validar.
func NewTarget(root string) *Target {
	return &Target{Root: root}
}

// Validate normaliza el root, valida su formato y deriva el keyword.
func (t *Target) Validate() error {
	if t.Root == "" {
		return ErrEmptyTarget
	}

	t.Root = validator.NormalizeDomain(t.Root)

	if !validator.IsDomain(t.Root) {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Root)
	}

	keyword := deriveKeyword(t.Root)
	if keyword == "" {
		return fmt.Errorf("%w: %s", ErrEmptyKeyword, t.Root)
	}
	t.Keyword = keyword

	return nil
}

// IsSelf indica si un nombre es el propio target (y debe excluirse
// de los descubrimientos).
func (t *Target) IsSelf(name string) bool {
	return strings.EqualFold(strings.TrimSuffix(name, "."), t.Root)
}

// deriveKeyword extrae la etiqueta registrable del dominio usando la
// public suffix list; si el dominio no tiene sufijo conocido, cae a la
// primera etiqueta.
func deriveKeyword(root string) string {
	base, err := publicsuffix.EffectiveTLDPlusOne(root)
	if err != nil {
		base = root
	}
	keyword, _, _ := strings.Cut(base, ".")
	return keyword
}
