package contact

import (
	"net/http"
	"slices"
)

// CORS headers attached to every response, success or error.
const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "POST, OPTIONS"

	// corsDenyOrigin is the sentinel value that denies cross-origin access
	// when the request's origin is not on the configured allow-list.
	corsDenyOrigin = "null"
)

// CORSConfig holds the origin allow-list. An empty list allows all origins.
type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// allowOrigin computes the Access-Control-Allow-Origin value for a request
// origin: with no allow-list configured every origin is allowed ("*");
// with an allow-list, a listed origin is echoed back and anything else
// gets the deny sentinel.
func (c CORSConfig) allowOrigin(origin string) string {
	if len(c.AllowedOrigins) == 0 {
		return "*"
	}
	if slices.Contains(c.AllowedOrigins, origin) {
		return origin
	}
	return corsDenyOrigin
}

// applyHeaders attaches the CORS header set to a response.
func (c CORSConfig) applyHeaders(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", c.allowOrigin(r.Header.Get("Origin")))
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
}
