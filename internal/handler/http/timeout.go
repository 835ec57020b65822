package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that enforces a per-request deadline. The
// handler runs on its own goroutine with a deadline-carrying context; if the
// deadline passes first, a 504 Gateway Timeout is written and any later
// handler output is discarded.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			gw := &gatedWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if gw.abandon() {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(`{"error":"request timeout"}`))
				}
			}
		})
	}
}

// gatedWriter serializes the handler goroutine and the timeout path onto one
// underlying writer. Exactly one side gets to produce the response.
type gatedWriter struct {
	http.ResponseWriter
	mu        sync.Mutex
	abandoned bool
	wrote     bool
}

// abandon shuts the gate for the handler and reports whether the timeout
// response may still be written (no handler output escaped first).
func (g *gatedWriter) abandon() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.abandoned = true
	return !g.wrote
}

func (g *gatedWriter) WriteHeader(statusCode int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abandoned || g.wrote {
		return
	}
	g.wrote = true
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gatedWriter) Write(b []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if !g.wrote {
		g.wrote = true
		g.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return g.ResponseWriter.Write(b)
}
