package record

import (
	"context"
)

// Document is a stored record as returned by the store: the kind's fields
// plus the identifier exposed as a string field named "id". The store's
// internal identifier representation never leaves the store layer.
type Document map[string]any

// Filter is a set of exact-match field constraints, AND-combined.
type Filter map[string]string

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=record
type Repository interface {
	Insert(ctx context.Context, kind Kind, doc any) (string, error)
	List(ctx context.Context, kind Kind, filter Filter) ([]Document, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a validated record and returns its new identifier.
func (s *Service) Create(ctx context.Context, kind Kind, doc any) (string, error) {
	return s.repo.Insert(ctx, kind, doc)
}

// List returns every record of the kind matching the filter.
func (s *Service) List(ctx context.Context, kind Kind, filter Filter) ([]Document, error) {
	return s.repo.List(ctx, kind, filter)
}
