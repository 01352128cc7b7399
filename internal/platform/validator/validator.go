// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strconv"
	"strings"
)

var (
	domainRegex   = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	tldLabelRegex = regexp.MustCompile(`^(xn--)?[a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?$`)
)

// Domain validators

// IsDomain verifica si un string es un dominio válido.
// Soporta dominios internacionales (IDN) y punycode.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	// Verificar que no sea una IP
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// IsTLDLabel verifica si un string es una etiqueta TLD bien formada
// (minúsculas, alfanumérica o punycode, sin puntos).
func IsTLDLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	return tldLabelRegex.MatchString(label)
}

// Network validators

// IsHostPort valida una dirección "host:puerto" de servidor DNS.
func IsHostPort(addr string) bool {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return false
	}
	return IsPort(port)
}

// IsPort valida que un puerto esté en el rango válido [1-65535].
func IsPort(portStr string) bool {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}

// Generic validators

// IsEmpty verifica si un string está vacío o solo contiene espacios.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
