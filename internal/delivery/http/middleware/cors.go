package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, Accept"
	corsMaxAge       = "86400"
)

// CORS returns a handler that adds CORS headers for the configured origins
// and answers OPTIONS preflight requests with 204. An empty origin list
// disables CORS entirely; "*" allows any origin.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAny := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o == "*" {
			allowAny = true
			continue
		}
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		ok := origin != "" && allowAny
		if !ok {
			_, ok = allowed[origin]
		}

		if r.Method == http.MethodOptions {
			if ok {
				applyCORSHeaders(w.Header(), origin)
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if ok {
			next.ServeHTTP(&corsResponseWriter{ResponseWriter: w, origin: origin}, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func applyCORSHeaders(h http.Header, origin string) {
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Vary", "Origin")
}

// corsResponseWriter defers the CORS headers until the handler commits the
// response, so handlers that replace headers cannot drop them.
type corsResponseWriter struct {
	http.ResponseWriter
	origin string
}

func (w *corsResponseWriter) WriteHeader(code int) {
	applyCORSHeaders(w.ResponseWriter.Header(), w.origin)
	w.ResponseWriter.WriteHeader(code)
}
