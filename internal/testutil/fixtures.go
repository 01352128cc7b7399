// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureDomains contiene dominios de prueba válidos.
var FixtureDomains = []string{
	"example.com",
	"test.example.com",
	"subdomain.example.com",
	"another.test.example.com",
}

// FixtureInvalidDomains contiene dominios inválidos.
var FixtureInvalidDomains = []string{
	"",
	"not a domain",
	"192.168.1.1",
	"2001:db8::1",
	"-invalid.com",
	"invalid-.com",
	".example.com",
	"example..com",
}

// FixtureTLDList es una respuesta cruda al estilo IANA, con cabecera
// de comentario, líneas en blanco y mayúsculas.
const FixtureTLDList = `# Version 2026082900, Last Updated Sat Aug 29 07:07:01 2026 UTC
COM
NET
ORG

BIZ
XN--P1AI
`

// FixtureTLDs contiene la lista parseada equivalente a FixtureTLDList.
var FixtureTLDs = []string{"com", "net", "org", "biz", "xn--p1ai"}

// FixtureCommonTLDs contiene sub-TLDs comunes de prueba.
var FixtureCommonTLDs = []string{"com", "net", "org"}

// FixtureDNSServers contiene resolvers de prueba.
var FixtureDNSServers = []string{"127.0.0.1:5353"}
