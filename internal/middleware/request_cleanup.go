package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies; the API only accepts small JSON documents.
const DefaultMaxBodyBytes = 1 << 20

// DrainAndCloseRequest limits the request body size, and drains and closes the body
// once the handler is done, so the connection can be reused.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
