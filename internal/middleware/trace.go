package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TraceHeader carries the request trace id in both directions.
const TraceHeader = "X-Trace-ID"

type traceKey struct{}

// maxTraceIDLen bounds caller-supplied ids before they reach the logs.
const maxTraceIDLen = 128

// TraceID returns middleware that tags every request with a trace id.
// A caller-supplied X-Trace-ID is reused; otherwise a random UUID is generated.
// The id is echoed in the response header and stored in the request context.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(TraceHeader))
		if id == "" || len(id) > maxTraceIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(TraceHeader, id)
		ctx := context.WithValue(r.Context(), traceKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TraceIDFrom returns the trace id stored by TraceID, or "".
func TraceIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
