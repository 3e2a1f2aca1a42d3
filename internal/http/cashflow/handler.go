package cashflow

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

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
	r.Get("/", h.list)
	r.Get("/projection", h.projection)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Cashflow(r.Context())
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCashflowResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) projection(w http.ResponseWriter, r *http.Request) {
	months := 1
	if s := r.URL.Query().Get("months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			months = n
		}
	}

	days, err := h.svc.Projection(r.Context(), auth.Entitlement(r.Context()), months)
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProjectionResponse(days)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
