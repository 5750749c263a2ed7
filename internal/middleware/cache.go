package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// CacheControl sets Cache-Control headers based on request path:
//   - static assets: 1 year, immutable
//   - robots.txt: 1 day
//   - swagger docs: 1 hour
//   - API endpoints: 1 minute with revalidation
//   - sell form and metrics: never stored
//   - HTML pages: 5 minutes with revalidation
//   - anything but GET and HEAD: never stored
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(method, path string) string {
	if method != http.MethodGet && method != http.MethodHead {
		return "no-store"
	}

	switch {
	case isStaticAsset(path):
		return "public, max-age=31536000, immutable"
	case path == "/robots.txt":
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/swagger/"):
		return "public, max-age=3600"
	case strings.HasPrefix(path, "/api/"):
		return "public, max-age=60, must-revalidate"
	case path == "/sell", path == "/metrics":
		return "no-store"
	}

	// Includes /, /category/{category}, /horses/{id}
	return "public, max-age=300, must-revalidate"
}

func isStaticAsset(path string) bool {
	return slices.Contains([]string{"/favicon.svg"}, path)
}
