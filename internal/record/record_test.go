package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalczyk/solo/internal/record"
)

func ptr[T any](v T) *T { return &v }

func TestValidateClient(t *testing.T) {
	v := record.NewValidator()

	tests := []struct {
		name    string
		client  record.Client
		wantErr bool
	}{
		{
			name:   "NameOnly",
			client: record.Client{Name: "Acme"},
		},
		{
			name: "AllFields",
			client: record.Client{
				Name:  "Acme",
				Email: ptr("billing@acme.test"),
				Phone: ptr("555-0100"),
				Notes: ptr("net 30"),
			},
		},
		{
			name:    "MissingName",
			client:  record.Client{Email: ptr("billing@acme.test")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.client)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateProject(t *testing.T) {
	v := record.NewValidator()

	tests := []struct {
		name    string
		project record.Project
		wantErr bool
	}{
		{
			name:    "Minimal",
			project: record.Project{Name: "Website", Status: record.ProjectStatusActive},
		},
		{
			name: "WithRate",
			project: record.Project{
				Name:       "Website",
				ClientID:   ptr("abc"),
				HourlyRate: ptr(85.0),
				Status:     record.ProjectStatusPlanned,
			},
		},
		{
			name: "ZeroRate",
			project: record.Project{
				Name:       "Website",
				HourlyRate: ptr(0.0),
				Status:     record.ProjectStatusActive,
			},
		},
		{
			name: "NegativeRate",
			project: record.Project{
				Name:       "Website",
				HourlyRate: ptr(-5.0),
				Status:     record.ProjectStatusActive,
			},
			wantErr: true,
		},
		{
			name:    "UnknownStatus",
			project: record.Project{Name: "Website", Status: "archived"},
			wantErr: true,
		},
		{
			name:    "MissingName",
			project: record.Project{Status: record.ProjectStatusActive},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.project)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateTimeLog(t *testing.T) {
	v := record.NewValidator()

	tests := []struct {
		name    string
		timelog record.TimeLog
		wantErr bool
	}{
		{
			name:    "Valid",
			timelog: record.TimeLog{ProjectID: "p1", Date: "2024-05-02", Hours: ptr(2.5)},
		},
		{
			name:    "ZeroHours",
			timelog: record.TimeLog{ProjectID: "p1", Date: "2024-05-02", Hours: ptr(0.0)},
			wantErr: true,
		},
		{
			name:    "NegativeHours",
			timelog: record.TimeLog{ProjectID: "p1", Date: "2024-05-02", Hours: ptr(-1.0)},
			wantErr: true,
		},
		{
			name:    "MissingHours",
			timelog: record.TimeLog{ProjectID: "p1", Date: "2024-05-02"},
			wantErr: true,
		},
		{
			name:    "MissingProject",
			timelog: record.TimeLog{Date: "2024-05-02", Hours: ptr(1.0)},
			wantErr: true,
		},
		{
			name:    "BadDate",
			timelog: record.TimeLog{ProjectID: "p1", Date: "02/05/2024", Hours: ptr(1.0)},
			wantErr: true,
		},
		{
			name:    "ImpossibleDate",
			timelog: record.TimeLog{ProjectID: "p1", Date: "2024-13-40", Hours: ptr(1.0)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.timelog)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateInvoice(t *testing.T) {
	v := record.NewValidator()

	tests := []struct {
		name    string
		invoice record.Invoice
		wantErr bool
	}{
		{
			name:    "Minimal",
			invoice: record.Invoice{ClientID: "c1", Amount: ptr(100.0), Status: record.InvoiceStatusDraft},
		},
		{
			name:    "ZeroAmount",
			invoice: record.Invoice{ClientID: "c1", Amount: ptr(0.0), Status: record.InvoiceStatusDraft},
		},
		{
			name: "SentWithDueDate",
			invoice: record.Invoice{
				ClientID: "c1",
				Amount:   ptr(250.0),
				DueDate:  ptr("2024-06-30"),
				Status:   record.InvoiceStatusSent,
			},
		},
		{
			name:    "NegativeAmount",
			invoice: record.Invoice{ClientID: "c1", Amount: ptr(-1.0), Status: record.InvoiceStatusDraft},
			wantErr: true,
		},
		{
			name:    "UnknownStatus",
			invoice: record.Invoice{ClientID: "c1", Amount: ptr(10.0), Status: "cancelled"},
			wantErr: true,
		},
		{
			name:    "MissingClient",
			invoice: record.Invoice{Amount: ptr(10.0), Status: record.InvoiceStatusDraft},
			wantErr: true,
		},
		{
			name: "BadDueDate",
			invoice: record.Invoice{
				ClientID: "c1",
				Amount:   ptr(10.0),
				DueDate:  ptr("soon"),
				Status:   record.InvoiceStatusDraft,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.invoice)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidatePayment(t *testing.T) {
	v := record.NewValidator()

	tests := []struct {
		name    string
		payment record.Payment
		wantErr bool
	}{
		{
			name:    "Minimal",
			payment: record.Payment{Amount: ptr(400.0), Date: "2024-05-02"},
		},
		{
			name: "AllFields",
			payment: record.Payment{
				InvoiceID: ptr("i1"),
				ClientID:  ptr("c1"),
				Amount:    ptr(400.0),
				Method:    ptr("bank"),
				Date:      "2024-05-02",
				Notes:     ptr("wire ref 9912"),
			},
		},
		{
			name:    "NegativeAmount",
			payment: record.Payment{Amount: ptr(-400.0), Date: "2024-05-02"},
			wantErr: true,
		},
		{
			name:    "MissingDate",
			payment: record.Payment{Amount: ptr(400.0)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payment)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := record.ParseID("665f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "665f1f77bcf86cd799439011", id.Hex())

	_, err = record.ParseID("not-an-id")
	assert.Error(t, err)

	_, err = record.ParseID("")
	assert.Error(t, err)
}

func TestKindCollection(t *testing.T) {
	assert.Equal(t, "client", record.KindClient.Collection())
	assert.Equal(t, "project", record.KindProject.Collection())
	assert.Equal(t, "timelog", record.KindTimeLog.Collection())
	assert.Equal(t, "invoice", record.KindInvoice.Collection())
	assert.Equal(t, "payment", record.KindPayment.Collection())
}
