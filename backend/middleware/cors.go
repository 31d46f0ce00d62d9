// ABOUTME: CORS middleware for API cross-origin requests
// ABOUTME: Echoes whitelisted origins and answers preflight OPTIONS requests

package middleware

import (
	"net/http"
	"slices"
)

const (
	corsAllowedMethods = "GET, POST, OPTIONS"
	corsAllowedHeaders = "Content-Type, X-Request-ID"
)

// CORSWithConfig returns middleware that allows only the listed origins.
// An empty list blocks every cross-origin request; same-origin requests,
// which carry no Origin header, always pass through.
func CORSWithConfig(allowedOrigins []string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && slices.Contains(allowedOrigins, origin)

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && origin != "" {
				if !allowed {
					writeJSONError(w, "Origin not allowed", http.StatusForbidden)
					return
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next(w, r)
		}
	}
}
