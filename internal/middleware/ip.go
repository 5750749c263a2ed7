package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP without port. The first valid address in
// X-Forwarded-For wins, then X-Real-IP, then RemoteAddr. Header values that do
// not parse as an IP are ignored.
//
// The proxy headers are trusted as-is, so the server must sit behind a reverse
// proxy that overwrites them. Exposed directly, clients can pick their own key
// and dodge the rate limit.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := parseIP(first); ip != "" {
			return ip
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
