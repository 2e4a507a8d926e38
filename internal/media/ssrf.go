package media

import (
	"net"
	"strings"
)

// IsPrivateHostname reports whether a hostname must never be fetched by the
// proxy. It rejects loopback names, literal loopback and RFC 1918 addresses,
// IPv6 loopback, unique-local (fd00::/8) and link-local (fe80::/10) prefixes.
// Names that are not IP literals are only matched against the loopback names;
// DNS resolution is not performed here.
func IsPrivateHostname(host string) bool {
	host = strings.ToLower(strings.TrimSpace(strings.Trim(host, "[]")))
	if host == "" {
		return true
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
		return true
	}
	if ip.IsPrivate() {
		return true
	}
	// net.IP.IsPrivate covers fc00::/7, which includes fd00::/8.
	return false
}
