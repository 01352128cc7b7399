// internal/core/domain/candidate.go
package domain

import "strings"

// Zone es la zona DNS bajo la que cuelga un candidato: un TLD ("net")
// o una combinación sub-TLD ("co.uk").
type Zone string

// IsComposite indica si la zona incluye un sub-TLD.
func (z Zone) IsComposite() bool {
	return strings.Contains(string(z), ".")
}

// Candidate es un nombre de dominio hermano pendiente de resolución.
type Candidate struct {
	// Name es el FQDN candidato (keyword + zona)
	Name string

	// Zone es la zona de la que se derivó el candidato
	Zone Zone
}

// NewCandidate construye un candidato a partir de keyword y zona.
func NewCandidate(keyword string, zone Zone) Candidate {
	return Candidate{
		Name: keyword + "." + string(zone),
		Zone: zone,
	}
}

// Batch es un lote de candidatos que se resuelve como unidad.
type Batch []Candidate

// Names retorna los FQDNs del lote en orden.
func (b Batch) Names() []string {
	names := make([]string, len(b))
	for i, c := range b {
		names[i] = c.Name
	}
	return names
}

// ResolutionOutcome mapea FQDN candidato a si resolvió o no.
// Contiene exactamente una entrada por candidato del lote resuelto.
type ResolutionOutcome map[string]bool

// Resolved retorna cuántos candidatos del lote resolvieron.
func (o ResolutionOutcome) Resolved() int {
	n := 0
	for _, ok := range o {
		if ok {
			n++
		}
	}
	return n
}
