// Package requestid tags every request with a correlation ID so a single
// catalog call can be followed across access logs and traces.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the correlation ID.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// FromContext retrieves the request ID, or "" when the request was never
// tagged (background jobs, direct service calls).
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID tags a context with a request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware tags each request with a correlation ID. A caller-supplied
// X-Request-ID is trusted and propagated as-is; otherwise a fresh UUID v4 is
// minted. The ID is echoed on the response and stored in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
