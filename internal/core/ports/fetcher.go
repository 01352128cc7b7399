// internal/core/ports/fetcher.go
package ports

import "context"

// PageFetcher es el port para descargas HTTP: la lista de TLDs y las
// sondas de contenido de la fase activa.
type PageFetcher interface {
	// Fetch descarga una URL y retorna el cuerpo de la respuesta.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
