// Package handler provides HTTP handlers for the configuration inspector API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"gateway-config/internal/model"
	"gateway-config/internal/negotiation"
	"gateway-config/internal/snapshot"
)

// MaxRequestBodySize is the default limit for request bodies (1MB).
const MaxRequestBodySize = 1 << 20

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store        snapshot.Store
	negotiator   *negotiation.Negotiator
	logger       *slog.Logger
	maxBodyBytes int64
}

// New creates a new Handler with the given snapshot store, negotiator, and logger.
// The negotiator may be nil to skip the SDK version check on MCP tools.
// maxBodyBytes <= 0 selects MaxRequestBodySize.
func New(store snapshot.Store, negotiator *negotiation.Negotiator, logger *slog.Logger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = MaxRequestBodySize
	}
	return &Handler{
		store:        store,
		negotiator:   negotiator,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// RegisterRoutes registers all HTTP routes with the given ServeMux.
// Uses Go 1.22+ method routing patterns.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Stateless parsing
	mux.HandleFunc("POST /configurations/parse", h.handleParse)

	// Merchant snapshots
	mux.HandleFunc("GET /merchants", h.handleListMerchants)
	mux.HandleFunc("GET /merchants/{id}/configuration", h.handleGetDocument)
	mux.HandleFunc("GET /merchants/{id}/summary", h.handleGetSummary)
	mux.HandleFunc("GET /merchants/{id}/features/{feature}", h.handleGetFeature)

	// MCP transport - JSON-RPC endpoint using official MCP SDK
	mux.Handle("/mcp", h.NewMCPHandler())

	// Health check
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

// === Response Helpers ===

// writeJSON sends a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// writeError sends an error response, extracting status/code from APIError if present.
// Uses errors.As() to unwrap error chains (e.g., fmt.Errorf wrapping).
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		apiErr = model.NewInternalError(err)
		h.logger.Error("internal error", slog.String("error", err.Error()))
	}

	h.writeJSON(w, apiErr.StatusCode, errorResponse{
		Error: errorBody{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		},
	})
}

// errorResponse is the JSON structure for error responses.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// readBody reads the whole request body, bounded by maxBodyBytes.
// Returns an APIError if the body is too large or unreadable.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, model.NewTooLargeError(maxErr.Limit)
		}
		return nil, model.NewValidationError("body", "unreadable request body")
	}
	return data, nil
}
