package client

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mwalczyk/solo/internal/apperror"
	"github.com/mwalczyk/solo/internal/record"
)

type Handler struct {
	svc      *record.Service
	validate *validator.Validate
}

func NewHandler(svc *record.Service, validate *validator.Validate) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req record.Client
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		if err := json.NewEncoder(w).Encode(apperror.ValidationMessages(err)); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	id, err := h.svc.Create(r.Context(), record.KindClient, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context(), record.KindClient, record.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(docs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
