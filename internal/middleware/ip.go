package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP without port. Forwarding headers are
// trusted: X-Forwarded-For (first entry) wins over X-Real-IP, which wins over
// RemoteAddr. Header values that do not parse as an IP are ignored.
//
// Only run behind a reverse proxy that sets these headers, otherwise clients
// can spoof them to dodge the rate limiter.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := validIP(first); ip != "" {
			return ip
		}
	}

	if ip := validIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func validIP(s string) string {
	s = strings.TrimSpace(s)
	if net.ParseIP(s) == nil {
		return ""
	}
	return s
}
