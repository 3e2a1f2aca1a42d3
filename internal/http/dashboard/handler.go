package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/dashboard"
	"github.com/mrodal/paydown/internal/http/auth"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	tf := cashflow.ParseTimeframe(r.URL.Query().Get("timeframe"))

	overview, err := h.svc.Overview(r.Context(), auth.Entitlement(r.Context()), tf)
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOverviewResponse(overview)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Refresh forces a snapshot re-fetch from the ledger service.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		slog.Error("snapshot refresh failed", "error", err)
		http.Error(w, "refresh failed", http.StatusBadGateway)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
