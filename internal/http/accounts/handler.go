package accounts

import (
	"encoding/json"
	"log/slog"
	"net/http"

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
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Accounts(r.Context(), auth.Entitlement(r.Context()))
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(views)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
