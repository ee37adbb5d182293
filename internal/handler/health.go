package handler

import (
	"net/http"
)

// handleHealth returns a simple health check response.
// GET /health, GET /healthz
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Merchants: len(h.store.List(r.Context())),
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Merchants int    `json:"merchants"`
}
