// internal/adapters/dnsx/resolver.go
package dnsx

import (
	"context"
	"time"

	"github.com/miekg/dns"

	"tldhunt/internal/platform/errors"
	"tldhunt/internal/platform/logx"
)

// Resolver resuelve registros A consultando una lista de servidores
// DNS en orden hasta obtener respuesta. Implementa ports.HostResolver.
type Resolver struct {
	servers []string
	retries int
	client  *dns.Client
	logger  logx.Logger
}

// Config configura el resolver.
type Config struct {
	Servers []string
	Timeout time.Duration
	Retries int
	Logger  logx.Logger
}

// NewResolver crea un resolver DNS.
func NewResolver(cfg Config) *Resolver {
	if len(cfg.Servers) == 0 {
		cfg.Servers = []string{
			"8.8.8.8:53",
			"8.8.4.4:53",
			"1.1.1.1:53",
			"1.0.0.1:53",
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	return &Resolver{
		servers: cfg.Servers,
		retries: cfg.Retries,
		client: &dns.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger.With("component", "dns-resolver"),
	}
}

// Resolve consulta el registro A del nombre. NXDOMAIN retorna slice
// vacío sin error; fallos de red contra todos los servidores retornan
// error.
func (r *Resolver) Resolve(ctx context.Context, name string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)
	msg.RecursionDesired = true

	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		for _, server := range r.servers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			resp, rtt, err := r.client.ExchangeContext(ctx, msg, server)
			if err != nil {
				lastErr = err
				continue
			}

			r.logger.Debug("dns query answered",
				"name", name,
				"server", server,
				"rcode", dns.RcodeToString[resp.Rcode],
				"rtt_ms", rtt.Milliseconds(),
			)

			if resp.Rcode == dns.RcodeNameError {
				return nil, nil
			}
			if resp.Rcode != dns.RcodeSuccess {
				lastErr = errors.Errorf("dns rcode %s for %s", dns.RcodeToString[resp.Rcode], name)
				continue
			}

			return extractA(resp), nil
		}
	}

	if lastErr == nil {
		lastErr = errors.ErrConnectionFailed
	}
	return nil, errors.Wrapf(lastErr, "no usable response for %s", name)
}

func extractA(resp *dns.Msg) []string {
	var ips []string
	for _, answer := range resp.Answer {
		if a, ok := answer.(*dns.A); ok {
			ips = append(ips, a.A.String())
		}
	}
	return ips
}
