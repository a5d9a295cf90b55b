// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/sevos/internal/model"
)

// LeadStore keeps the sales desk's leads.
type LeadStore interface {
	CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error)
	GetLead(ctx context.Context, id string) (model.Lead, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

// InvoiceStore keeps customer invoices.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, invoice model.Invoice) (model.Invoice, error)
	GetInvoice(ctx context.Context, id string) (model.Invoice, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
}

// Store combines every record store the API serves.
type Store interface {
	LeadStore
	InvoiceStore
}
