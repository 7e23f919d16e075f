package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwalczyk/solo/internal/http/client"
	"github.com/mwalczyk/solo/internal/http/invoice"
	"github.com/mwalczyk/solo/internal/http/metrics"
	"github.com/mwalczyk/solo/internal/http/payment"
	"github.com/mwalczyk/solo/internal/http/project"
	"github.com/mwalczyk/solo/internal/http/timelog"
)

func New(
	clients *client.Handler,
	projects *project.Handler,
	timelogs *timelog.Handler,
	invoices *invoice.Handler,
	payments *payment.Handler,
	metricsH *metrics.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/", root)

	router.Route("/api", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clients.Routes(r)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			projects.Routes(r)
		})

		r.Route("/timelogs", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			timelogs.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoices.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			payments.Routes(r)
		})

		r.Route("/metrics", metricsH.Routes)
	})

	return router
}

func root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Solo API"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
