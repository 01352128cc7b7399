// internal/core/usecases/generator.go
package usecases

import (
	"context"
	"strings"

	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/platform/logx"
	"tldhunt/internal/platform/validator"
)

// CandidateGenerator produce candidatos hermanos para un keyword: uno
// por TLD y, opcionalmente, uno por cada sub-TLD común bajo cada TLD.
type CandidateGenerator struct {
	target      domain.Target
	tlds        []string
	commonTLDs  []string
	checkCommon bool

	skipWildcards bool
	wildcards     ports.WildcardChecker

	logger logx.Logger
}

// GeneratorOptions configura el generador.
type GeneratorOptions struct {
	Target        domain.Target
	TLDs          []string
	CommonTLDs    []string
	CheckCommon   bool
	SkipWildcards bool
	Wildcards     ports.WildcardChecker
	Logger        logx.Logger
}

// GeneratorStats resume una pasada de generación.
type GeneratorStats struct {
	// Emitted candidatos entregados al callback
	Emitted int

	// SkippedZones TLDs omitidos por wildcard DNS
	SkippedZones int
}

// NewCandidateGenerator crea un nuevo generador.
func NewCandidateGenerator(opts GeneratorOptions) *CandidateGenerator {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &CandidateGenerator{
		target:        opts.Target,
		tlds:          opts.TLDs,
		commonTLDs:    opts.CommonTLDs,
		checkCommon:   opts.CheckCommon,
		skipWildcards: opts.SkipWildcards,
		wildcards:     opts.Wildcards,
		logger:        opts.Logger.With("component", "generator"),
	}
}

// Each recorre todos los candidatos en orden determinista y los entrega
// uno a uno al callback. Si el callback retorna error (o el contexto se
// cancela), la pasada se corta ahí. El generador no guarda estado entre
// pasadas.
func (g *CandidateGenerator) Each(ctx context.Context, fn func(domain.Candidate) error) (GeneratorStats, error) {
	var stats GeneratorStats

	for _, tld := range g.tlds {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		// Cada zona se comprueba por separado: un TLD wildcard solo
		// suprime su candidato directo, no sus combinaciones sub-TLD
		zone := domain.Zone(tld)
		if g.isWildcard(ctx, zone) {
			stats.SkippedZones++
			g.logger.Debug("skipping wildcard zone", "zone", tld)
		} else if err := g.emit(domain.NewCandidate(g.target.Keyword, zone), fn, &stats); err != nil {
			return stats, err
		}

		if !g.checkCommon {
			continue
		}

		for _, sub := range g.commonTLDs {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			composite := domain.Zone(sub + "." + tld)
			if g.isWildcard(ctx, composite) {
				stats.SkippedZones++
				g.logger.Debug("skipping wildcard zone", "zone", string(composite))
				continue
			}

			if err := g.emit(domain.NewCandidate(g.target.Keyword, composite), fn, &stats); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// isWildcard consulta el checker solo cuando el filtrado está activo.
func (g *CandidateGenerator) isWildcard(ctx context.Context, zone domain.Zone) bool {
	return g.skipWildcards && g.wildcards != nil && g.wildcards.IsWildcard(ctx, zone)
}

// emit entrega un candidato al callback, excluyendo el propio target.
func (g *CandidateGenerator) emit(c domain.Candidate, fn func(domain.Candidate) error, stats *GeneratorStats) error {
	if g.target.IsSelf(c.Name) {
		return nil
	}
	if err := fn(c); err != nil {
		return err
	}
	stats.Emitted++
	return nil
}

// ParseTLDList parsea una lista de TLDs en texto plano (una entrada por
// línea, estilo IANA): normaliza a minúsculas y descarta comentarios,
// líneas en blanco y entradas mal formadas.
func ParseTLDList(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	tlds := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		valid := true
		for _, part := range strings.Split(line, ".") {
			if !validator.IsTLDLabel(part) {
				valid = false
				break
			}
		}
		if valid {
			tlds = append(tlds, line)
		}
	}

	return tlds
}
