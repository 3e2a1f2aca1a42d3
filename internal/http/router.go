package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mrodal/paydown/internal/http/accounts"
	"github.com/mrodal/paydown/internal/http/auth"
	"github.com/mrodal/paydown/internal/http/cashflow"
	"github.com/mrodal/paydown/internal/http/dashboard"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func New(
	dashboardV1 *dashboard.Handler,
	cashflowV1 *cashflow.Handler,
	accountsV1 *accounts.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		r.Route("/dashboard", dashboardV1.Routes)
		r.Route("/cashflow", cashflowV1.Routes)
		r.Route("/accounts", accountsV1.Routes)
		r.Post("/refresh", dashboardV1.Refresh)
	})

	return router
}
