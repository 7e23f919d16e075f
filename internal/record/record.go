package record

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Kind identifies one of the five record kinds. Its string value is also
// the name of the store collection holding records of that kind.
type Kind string

const (
	KindClient  Kind = "client"
	KindProject Kind = "project"
	KindTimeLog Kind = "timelog"
	KindInvoice Kind = "invoice"
	KindPayment Kind = "payment"
)

// Collection returns the store collection name for the kind.
func (k Kind) Collection() string {
	return string(k)
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Client is a person or company work is done for.
type Client struct {
	Name  string  `json:"name" bson:"name" validate:"required"`
	Email *string `json:"email" bson:"email"`
	Phone *string `json:"phone" bson:"phone"`
	Notes *string `json:"notes" bson:"notes"`
}

// Project is a unit of work, optionally tied to a client.
type Project struct {
	Name       string        `json:"name" bson:"name" validate:"required"`
	ClientID   *string       `json:"client_id" bson:"client_id"`
	HourlyRate *float64      `json:"hourly_rate" bson:"hourly_rate" validate:"omitempty,gte=0"`
	Status     ProjectStatus `json:"status" bson:"status" validate:"oneof=planned active paused completed"`
	Notes      *string       `json:"notes" bson:"notes"`
}

// TimeLog records hours worked on a project on a given date.
type TimeLog struct {
	ProjectID   string   `json:"project_id" bson:"project_id" validate:"required"`
	ClientID    *string  `json:"client_id" bson:"client_id"`
	Date        string   `json:"date" bson:"date" validate:"required,dateonly"`
	Hours       *float64 `json:"hours" bson:"hours" validate:"required,gt=0"`
	Description *string  `json:"description" bson:"description"`
	HourlyRate  *float64 `json:"hourly_rate" bson:"hourly_rate" validate:"omitempty,gte=0"`
}

// Invoice is an amount billed to a client.
type Invoice struct {
	ClientID  string        `json:"client_id" bson:"client_id" validate:"required"`
	ProjectID *string       `json:"project_id" bson:"project_id"`
	Number    *string       `json:"number" bson:"number"`
	Amount    *float64      `json:"amount" bson:"amount" validate:"required,gte=0"`
	DueDate   *string       `json:"due_date" bson:"due_date" validate:"omitempty,dateonly"`
	Status    InvoiceStatus `json:"status" bson:"status" validate:"oneof=draft sent paid overdue"`
	Notes     *string       `json:"notes" bson:"notes"`
}

// Payment is money received, optionally against an invoice.
type Payment struct {
	InvoiceID *string  `json:"invoice_id" bson:"invoice_id"`
	ClientID  *string  `json:"client_id" bson:"client_id"`
	Amount    *float64 `json:"amount" bson:"amount" validate:"required,gte=0"`
	Method    *string  `json:"method" bson:"method"`
	Date      string   `json:"date" bson:"date" validate:"required,dateonly"`
	Notes     *string  `json:"notes" bson:"notes"`
}

// ParseID validates that s has the shape of a store-assigned identifier.
// Endpoints taking an identifier parameter must reject malformed values
// before any store access.
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("invalid id format: %w", err)
	}

	return id, nil
}
