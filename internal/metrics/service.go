package metrics

import (
	"context"

	"github.com/mwalczyk/solo/internal/record"
)

// Summary holds the dashboard totals. Outstanding is the invoice total
// minus the payment total.
type Summary struct {
	Clients      int     `json:"clients"`
	Projects     int     `json:"projects"`
	TotalHours   float64 `json:"total_hours"`
	InvoiceTotal float64 `json:"invoice_total"`
	PaymentTotal float64 `json:"payment_total"`
	Outstanding  float64 `json:"outstanding"`
}

type Service struct {
	repo record.Repository
}

func NewService(repo record.Repository) *Service {
	return &Service{repo: repo}
}

// Summary reads all five collections and recomputes the totals from
// scratch. Records missing a numeric field contribute zero to its sum.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	clients, err := s.repo.List(ctx, record.KindClient, nil)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.List(ctx, record.KindProject, nil)
	if err != nil {
		return nil, err
	}

	timelogs, err := s.repo.List(ctx, record.KindTimeLog, nil)
	if err != nil {
		return nil, err
	}

	invoices, err := s.repo.List(ctx, record.KindInvoice, nil)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.List(ctx, record.KindPayment, nil)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Clients:      len(clients),
		Projects:     len(projects),
		TotalHours:   sumField(timelogs, "hours"),
		InvoiceTotal: sumField(invoices, "amount"),
		PaymentTotal: sumField(payments, "amount"),
	}
	summary.Outstanding = summary.InvoiceTotal - summary.PaymentTotal

	return summary, nil
}

func sumField(docs []record.Document, field string) float64 {
	var total float64
	for _, doc := range docs {
		total += toFloat(doc[field])
	}

	return total
}

// toFloat coerces the numeric representations a loose document can carry.
// Anything else, including an absent field, counts as zero.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
