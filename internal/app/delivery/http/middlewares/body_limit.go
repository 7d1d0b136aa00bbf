package middlewares

import (
	"net/http"
)

// BodyLimit caps every request body at App.RequestBodyLimitInMegabyte.
// Reads past the limit fail, which decoders surface as parse errors.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := m.InternalConfig.App.BodyLimitInBytes()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
