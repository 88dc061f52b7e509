package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AnshRaj112/cinnamon-backend/pkg/clientip"
	"golang.org/x/time/rate"
)

// Snippet writes re-render HTML, so they get their own per-IP budget.
// Auth: 30/min burst 10. Anonymous: 6/min burst 3.
const (
	snippetWriteAuthPerMin = 30
	snippetWriteAuthBurst  = 10
	snippetWriteAnonPerMin = 6
	snippetWriteAnonBurst  = 3
)

var (
	snippetWriteAuthLimiters = newLimiterRegistry(rate.Limit(snippetWriteAuthPerMin)/60, snippetWriteAuthBurst)
	snippetWriteAnonLimiters = newLimiterRegistry(rate.Limit(snippetWriteAnonPerMin)/60, snippetWriteAnonBurst)
)

func hasBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && len(strings.TrimPrefix(auth, "Bearer ")) > 0
}

func isSnippetWrite(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return strings.HasPrefix(r.URL.Path, "/snippets")
	}
	return false
}

// SnippetWriteRateLimit limits snippet create and update requests per IP.
func SnippetWriteRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isSnippetWrite(r) {
			next.ServeHTTP(w, r)
			return
		}

		registry, limit := snippetWriteAnonLimiters, snippetWriteAnonBurst
		if hasBearerToken(r) {
			registry, limit = snippetWriteAuthLimiters, snippetWriteAuthBurst
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
		if !registry.get(clientip.RealClientIP(r)).Allow() {
			w.Header().Set("X-RateLimit-Remaining", "0")
			tooManyRequests(w, "Too many snippet writes. Please slow down.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
