package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwalczyk/solo/internal/config"
	"github.com/mwalczyk/solo/internal/database"
	soloHttp "github.com/mwalczyk/solo/internal/http"
	clientHandler "github.com/mwalczyk/solo/internal/http/client"
	invoiceHandler "github.com/mwalczyk/solo/internal/http/invoice"
	metricsHandler "github.com/mwalczyk/solo/internal/http/metrics"
	paymentHandler "github.com/mwalczyk/solo/internal/http/payment"
	projectHandler "github.com/mwalczyk/solo/internal/http/project"
	timelogHandler "github.com/mwalczyk/solo/internal/http/timelog"
	"github.com/mwalczyk/solo/internal/metrics"
	"github.com/mwalczyk/solo/internal/record"
	recordStore "github.com/mwalczyk/solo/internal/record/store"
)

func main() {
	// Missing .env is fine, config falls back to process env and defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString(), cfg.DB.Name)
	if err != nil {
		slog.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	var (
		store          = recordStore.New(db)
		recordService  = record.NewService(store)
		metricsService = metrics.NewService(store)
		validate       = record.NewValidator()
	)

	router := soloHttp.New(
		clientHandler.NewHandler(recordService, validate),
		projectHandler.NewHandler(recordService, validate),
		timelogHandler.NewHandler(recordService, validate),
		invoiceHandler.NewHandler(recordService, validate),
		paymentHandler.NewHandler(recordService, validate),
		metricsHandler.NewHandler(metricsService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
