// Package media implements the media URL rewriting policy and the same-origin
// proxy that serves external images, including its SSRF host validation.
package media

import (
	"net/url"
	"strings"
)

// ProxyPath is the same-origin endpoint external media is rewritten to.
const ProxyPath = "/api/media"

// NormalizeURL classifies a raw media reference and rewrites it according to
// the proxy policy. The empty string means the reference was rejected.
// The function is idempotent: feeding its own output back returns the same
// value.
//
//   - protocol-relative //host/p is upgraded to https and reprocessed
//   - data: and blob: URIs pass through
//   - already-proxied /api/media?url=... passes through
//   - absolute https URLs are rewritten to /api/media?url=<encoded>
//   - absolute http URLs are rejected, plaintext origins are not proxied
//   - root-relative paths pass through, bare relative paths gain a leading /
//   - malformed absolute URLs come back as-is, best effort
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "//") {
		return NormalizeURL("https:" + raw)
	}
	if strings.HasPrefix(raw, "data:") || strings.HasPrefix(raw, "blob:") {
		return raw
	}
	if strings.HasPrefix(raw, ProxyPath+"?") || raw == ProxyPath {
		return raw
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "https://"):
		if _, err := url.Parse(raw); err != nil {
			return raw
		}
		return ProxyPath + "?url=" + url.QueryEscape(raw)
	case strings.HasPrefix(lower, "http://"):
		return ""
	}

	if strings.HasPrefix(raw, "/") {
		return raw
	}
	return "/" + raw
}
