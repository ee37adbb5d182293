package handler

import (
	"log/slog"
	"net/http"

	"gateway-config/internal/configuration"
	"gateway-config/internal/model"
	"gateway-config/internal/negotiation"
)

// handleParse parses the posted document and returns its summary.
// POST /configurations/parse
func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	cfg, err := configuration.Parse(body)
	if err != nil {
		h.logger.InfoContext(ctx, "rejected configuration",
			slog.Int("bytes", len(body)),
			slog.String("error", err.Error()),
		)
		h.writeError(w, model.NewParseError(err))
		return
	}

	h.writeSummary(w, r, cfg)
}

// handleListMerchants lists merchants with an installed snapshot.
// GET /merchants
func (h *Handler) handleListMerchants(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, merchantList{Merchants: h.store.List(r.Context())})
}

type merchantList struct {
	Merchants []string `json:"merchants"`
}

// handleGetDocument returns the stored document exactly as installed.
// GET /merchants/{id}/configuration
func (h *Handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(cfg.ToJSON())); err != nil {
		h.logger.Error("failed to write document", slog.String("error", err.Error()))
	}
}

// handleGetSummary returns the derived view of a merchant's configuration.
// GET /merchants/{id}/summary
func (h *Handler) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	h.writeSummary(w, r, cfg)
}

// handleGetFeature reports whether a GraphQL feature is usable for a merchant.
// GET /merchants/{id}/features/{feature}
func (h *Handler) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	feature := r.PathValue("feature")
	h.writeJSON(w, http.StatusOK, featureResult{
		MerchantID: cfg.MerchantID(),
		Feature:    feature,
		Enabled:    cfg.IsGraphQLFeatureEnabled(feature),
	})
}

type featureResult struct {
	MerchantID string `json:"merchant_id"`
	Feature    string `json:"feature"`
	Enabled    bool   `json:"enabled"`
}

// lookup resolves {id} to a stored configuration, writing the error response
// itself when that fails.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*configuration.Configuration, bool) {
	merchantID := r.PathValue("id")
	if merchantID == "" {
		h.writeError(w, model.NewValidationError("id", "merchant ID required"))
		return nil, false
	}

	cfg, err := h.store.Get(r.Context(), merchantID)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}

	h.logger.DebugContext(r.Context(), "resolved merchant snapshot",
		slog.String("merchant_id", merchantID),
	)
	return cfg, true
}

// writeSummary answers with the summary of cfg. Features named in the
// request's GraphQL-Features header are checked, and the ones the merchant
// supports are echoed back in the same header.
func (h *Handler) writeSummary(w http.ResponseWriter, r *http.Request, cfg configuration.InternalReader) {
	var requested []string
	if client := negotiation.GetClientContext(r.Context()); client != nil {
		requested = client.GraphQLFeatures
	}

	if len(requested) > 0 {
		enabled := negotiation.IntersectFeatures(cfg, requested)
		if header, err := negotiation.FormatGraphQLFeaturesHeader(enabled); err == nil && header != "" {
			w.Header().Set(negotiation.GraphQLFeaturesHeader, header)
		}
	}

	h.writeJSON(w, http.StatusOK, model.NewSummary(cfg, requested...))
}
