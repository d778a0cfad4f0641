package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/warrenjonahb/bible-study-app/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied IDs that are echoed and logged.
const maxRequestIDLen = 128

// RequestID returns middleware that stores a request ID in the context and
// echoes it in the response. A client-supplied ID is reused when present and
// not oversized; otherwise a random UUID is generated.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
