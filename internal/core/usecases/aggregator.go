// internal/core/usecases/aggregator.go
package usecases

import (
	"tldhunt/internal/core/domain"
)

// FilterResolved retorna los candidatos del lote que resolvieron según
// el outcome, preservando el orden del lote y excluyendo el propio
// target. Candidatos sin entrada en el outcome se tratan como no
// resueltos.
func FilterResolved(batch domain.Batch, outcome domain.ResolutionOutcome, target domain.Target) []domain.Candidate {
	resolved := make([]domain.Candidate, 0, len(batch))
	for _, candidate := range batch {
		if !outcome[candidate.Name] {
			continue
		}
		if target.IsSelf(candidate.Name) {
			continue
		}
		resolved = append(resolved, candidate)
	}
	return resolved
}
