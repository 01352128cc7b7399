// internal/adapters/dnsx/resolver_test.go
package dnsx

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"

	"tldhunt/internal/platform/logx"
	"tldhunt/internal/testutil"
)

// startDNSServer levanta un servidor DNS UDP local para tests.
func startDNSServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	testutil.AssertNoError(t, err, "listen udp")

	server := &dns.Server{PacketConn: pc, Handler: handler}
	go server.ActivateAndServe()
	t.Cleanup(func() { server.Shutdown() })

	return pc.LocalAddr().String()
}

func testHandler(existing map[string]string) dns.HandlerFunc {
	return func(w dns.ResponseWriter, req *dns.Msg) {
		resp := new(dns.Msg)
		resp.SetReply(req)

		name := req.Question[0].Name
		ip, ok := existing[name]
		if !ok {
			resp.Rcode = dns.RcodeNameError
			w.WriteMsg(resp)
			return
		}

		resp.Answer = append(resp.Answer, &dns.A{
			Hdr: dns.RR_Header{
				Name:   name,
				Rrtype: dns.TypeA,
				Class:  dns.ClassINET,
				Ttl:    60,
			},
			A: net.ParseIP(ip),
		})
		w.WriteMsg(resp)
	}
}

func TestResolverResolvesA(t *testing.T) {
	addr := startDNSServer(t, testHandler(map[string]string{
		"acme.net.": "198.51.100.5",
	}))

	r := NewResolver(Config{
		Servers: []string{addr},
		Timeout: 2 * time.Second,
		Logger:  logx.NewSilent(),
	})

	ips, err := r.Resolve(context.Background(), "acme.net")
	testutil.AssertNoError(t, err, "resolve")
	testutil.AssertEqual(t, len(ips), 1, "address count")
	testutil.AssertEqual(t, ips[0], "198.51.100.5", "resolved address")
}

func TestResolverNXDomain(t *testing.T) {
	addr := startDNSServer(t, testHandler(nil))

	r := NewResolver(Config{
		Servers: []string{addr},
		Timeout: 2 * time.Second,
		Logger:  logx.NewSilent(),
	})

	ips, err := r.Resolve(context.Background(), "acme.invalid")
	testutil.AssertNoError(t, err, "nxdomain is not an error")
	testutil.AssertEqual(t, len(ips), 0, "no addresses")
}

func TestResolverFallsBackAcrossServers(t *testing.T) {
	addr := startDNSServer(t, testHandler(map[string]string{
		"acme.net.": "198.51.100.5",
	}))

	r := NewResolver(Config{
		// El primer servidor no escucha; el segundo responde
		Servers: []string{"127.0.0.1:1", addr},
		Timeout: 500 * time.Millisecond,
		Logger:  logx.NewSilent(),
	})

	ips, err := r.Resolve(context.Background(), "acme.net")
	testutil.AssertNoError(t, err, "resolve via fallback")
	testutil.AssertEqual(t, len(ips), 1, "address count")
}

func TestResolverAllServersUnreachable(t *testing.T) {
	r := NewResolver(Config{
		Servers: []string{"127.0.0.1:1"},
		Timeout: 300 * time.Millisecond,
		Logger:  logx.NewSilent(),
	})

	_, err := r.Resolve(context.Background(), "acme.net")
	testutil.AssertError(t, err, "unreachable servers")
}

func TestResolverCanceledContext(t *testing.T) {
	r := NewResolver(Config{
		Servers: []string{"127.0.0.1:1"},
		Timeout: 300 * time.Millisecond,
		Logger:  logx.NewSilent(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, "acme.net")
	testutil.AssertError(t, err, "canceled context")
}

func TestResolverDefaults(t *testing.T) {
	r := NewResolver(Config{Logger: logx.NewSilent()})
	testutil.AssertEqual(t, len(r.servers), 4, "default server list")
}
