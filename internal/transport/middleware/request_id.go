package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/wikisynset/pkg/ctxutil"
)

// RequestIDHeader is the HTTP header used to propagate the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that assigns each request an identifier,
// honoring an incoming X-Request-Id header, and echoes it back in the
// response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
