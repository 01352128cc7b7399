// internal/adapters/fetch/fetcher_test.go
package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tldhunt/internal/platform/logx"
	"tldhunt/internal/testutil"
)

func newTestFetcher() *HTTPFetcher {
	return NewHTTPFetcher(Config{
		Timeout: 2 * time.Second,
		Retries: 0,
		Logger:  logx.NewSilent(),
	})
}

func TestFetchReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("COM\nNET\n"))
	}))
	defer server.Close()

	body, err := newTestFetcher().Fetch(context.Background(), server.URL)

	testutil.AssertNoError(t, err, "fetch")
	testutil.AssertEqual(t, string(body), "COM\nNET\n", "body")
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)

	testutil.AssertError(t, err, "404 is an error")
}

func TestFetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // ya cerrado: conexión rechazada

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)

	testutil.AssertError(t, err, "connection refused")
}

func TestFetchCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("body"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher().Fetch(ctx, server.URL)

	testutil.AssertError(t, err, "canceled context")
}
