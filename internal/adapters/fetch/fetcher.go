// internal/adapters/fetch/fetcher.go
package fetch

import (
	"context"
	"time"

	"tldhunt/internal/platform/httpclient"
	"tldhunt/internal/platform/logx"
)

// HTTPFetcher descarga páginas vía el cliente HTTP de plataforma
// (retry, backoff, rate limit). Implementa ports.PageFetcher.
type HTTPFetcher struct {
	client *httpclient.Client
	logger logx.Logger
}

// Config configura el fetcher.
type Config struct {
	Timeout   time.Duration
	Retries   int
	RateLimit float64
	Logger    logx.Logger
}

// NewHTTPFetcher crea un fetcher HTTP.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	clientCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		clientCfg.Timeout = cfg.Timeout
	}
	if cfg.Retries >= 0 {
		clientCfg.MaxRetries = cfg.Retries
	}
	clientCfg.RateLimit = cfg.RateLimit

	return &HTTPFetcher{
		client: httpclient.New(clientCfg, cfg.Logger),
		logger: cfg.Logger.With("component", "fetcher"),
	}
}

// Fetch descarga una URL y retorna el cuerpo. Respuestas no-2xx
// cuentan como error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	if err := httpclient.CheckStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("fetched", "url", url, "bytes", len(body))
	return body, nil
}
