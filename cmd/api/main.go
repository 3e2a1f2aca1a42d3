package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mrodal/paydown/internal/config"
	"github.com/mrodal/paydown/internal/dashboard"
	paydownHttp "github.com/mrodal/paydown/internal/http"
	accountsHandler "github.com/mrodal/paydown/internal/http/accounts"
	cashflowHandler "github.com/mrodal/paydown/internal/http/cashflow"
	dashboardHandler "github.com/mrodal/paydown/internal/http/dashboard"
	"github.com/mrodal/paydown/internal/ledger"
	"github.com/mrodal/paydown/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		ledgerClient     = ledger.NewClient(cfg.Ledger.BaseURL, cfg.Ledger.Token, cfg.Ledger.Timeout)
		holder           = snapshot.NewHolder(ledgerClient)
		dashboardService = dashboard.NewService(holder)
	)

	var (
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		cashflowH  = cashflowHandler.NewHandler(dashboardService)
		accountsH  = accountsHandler.NewHandler(dashboardService)
	)

	router := paydownHttp.New(dashboardH, cashflowH, accountsH, paydownHttp.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	srv := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
