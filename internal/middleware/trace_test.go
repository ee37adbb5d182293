package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID_Generated(t *testing.T) {
	var seen string
	handler := TraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFrom(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/merchants", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated id should be a UUID")
	assert.Equal(t, seen, w.Header().Get(TraceHeader))
}

func TestTraceID_Propagated(t *testing.T) {
	var seen string
	handler := TraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/merchants", nil)
	req.Header.Set(TraceHeader, "caller-trace-1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "caller-trace-1", seen)
	assert.Equal(t, "caller-trace-1", w.Header().Get(TraceHeader))
}

func TestTraceID_OversizedReplaced(t *testing.T) {
	var seen string
	handler := TraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/merchants", nil)
	req.Header.Set(TraceHeader, strings.Repeat("x", maxTraceIDLen+1))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestTraceID_LoggedByLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := Chain(TraceID, Logging(logger))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/merchants", nil)
	req.Header.Set(TraceHeader, "abc123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "trace_id=abc123")
}
