package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/mtlprog/giftideas/internal/static"
)

// CacheControl sets Cache-Control headers by path.
// Form, loading and result pages belong to one browser session and are never
// cached; static files are cached for a day, swagger docs for an hour.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheHeader(r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func cacheHeader(method, path string) string {
	if method != http.MethodGet && method != http.MethodHead {
		return "no-store"
	}

	switch {
	case isStaticFile(path):
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/swagger/"):
		return "public, max-age=3600"
	case path == "/history":
		return "private, max-age=60, must-revalidate"
	default:
		// /, /healthz and anything session-bound
		return "private, no-store"
	}
}

func isStaticFile(path string) bool {
	return slices.Contains(static.Paths, path)
}
