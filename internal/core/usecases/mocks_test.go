// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/testutil"
)

// mockResolver es un mock de ports.HostResolver para tests
type mockResolver struct {
	mu       sync.Mutex
	existing map[string]bool
	failWith error

	calls    []string
	inFlight int
	maxSeen  int
}

func newMockResolver(existing ...string) *mockResolver {
	m := &mockResolver{existing: make(map[string]bool)}
	for _, name := range existing {
		m.existing[name] = true
	}
	return m
}

func (m *mockResolver) Resolve(ctx context.Context, name string) ([]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.inFlight++
	if m.inFlight > m.maxSeen {
		m.maxSeen = m.inFlight
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.existing[name] {
		return []string{"198.51.100.7"}, nil
	}
	return nil, errors.New("no such host")
}

func (m *mockResolver) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockWildcards es un mock de ports.WildcardChecker para tests
type mockWildcards struct {
	mu    sync.Mutex
	zones map[domain.Zone]bool
	calls int
}

func newMockWildcards(zones ...domain.Zone) *mockWildcards {
	m := &mockWildcards{zones: make(map[domain.Zone]bool)}
	for _, z := range zones {
		m.zones[z] = true
	}
	return m
}

func (m *mockWildcards) IsWildcard(ctx context.Context, zone domain.Zone) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.zones[zone]
}

// mockFetcher es un mock de ports.PageFetcher para tests
type mockFetcher struct {
	mu        sync.Mutex
	responses map[string][]byte
	failWith  error
	calls     []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{responses: make(map[string][]byte)}
}

func (m *mockFetcher) respond(url string, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[url] = []byte(body)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.failWith != nil {
		return nil, m.failWith
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if body, ok := m.responses[url]; ok {
		return body, nil
	}
	return nil, errors.New("connection refused")
}

// captureSink es un mock de ports.Sink que acumula eventos
type captureSink struct {
	mu     sync.Mutex
	events []ports.Event
	closed bool
}

func (s *captureSink) Emit(ctx context.Context, event ports.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *captureSink) kinds(kind ports.EventKind) []ports.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ports.Event
	for _, e := range s.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (s *captureSink) discoveries() []string {
	var out []string
	for _, e := range s.kinds(ports.EventKindSimilarDomain) {
		out = append(out, e.Value)
	}
	return out
}

func mustTarget(t *testing.T, root string) domain.Target {
	t.Helper()
	target := domain.NewTarget(root)
	testutil.AssertNoError(t, target.Validate(), "target validation")
	return *target
}
