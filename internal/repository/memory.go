// Package repository holds the demo record stores behind the lead and
// invoice endpoints.
package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

// Memory is an in-memory Store. Nothing survives a restart.
type Memory struct {
	now      func() time.Time
	leads    map[string]model.Lead
	invoices map[string]model.Invoice
	mu       sync.RWMutex
}

// Option configures a Memory store.
type Option func(*Memory)

// WithClock sets the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

// WithSeed loads the demo leads and invoices.
func WithSeed() Option {
	return func(m *Memory) {
		for _, l := range SeedLeads() {
			m.leads[l.ID] = l
		}
		for _, inv := range SeedInvoices() {
			m.invoices[inv.ID] = inv
		}
	}
}

// NewMemory creates an empty store.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		now:      time.Now,
		leads:    make(map[string]model.Lead),
		invoices: make(map[string]model.Invoice),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateLead validates lead, assigns it an ID and stores it.
func (m *Memory) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	if err := ctx.Err(); err != nil {
		return model.Lead{}, err
	}

	lead.Normalize()
	if err := lead.Validate(); err != nil {
		return model.Lead{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	lead.ID = uuid.NewString()
	lead.CreatedAt = m.now().UTC()
	m.leads[lead.ID] = lead
	return lead, nil
}

// GetLead returns the lead with id or an error wrapping ErrNotFound.
func (m *Memory) GetLead(ctx context.Context, id string) (model.Lead, error) {
	if err := ctx.Err(); err != nil {
		return model.Lead{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	lead, ok := m.leads[id]
	if !ok {
		return model.Lead{}, fmt.Errorf("lead %s: %w", id, common.ErrNotFound)
	}
	return lead, nil
}

// ListLeads returns every lead, newest first.
func (m *Memory) ListLeads(ctx context.Context) ([]model.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	leads := make([]model.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		leads = append(leads, l)
	}
	m.mu.RUnlock()

	sort.Slice(leads, func(i, j int) bool {
		return newer(leads[i].CreatedAt, leads[j].CreatedAt, leads[i].ID, leads[j].ID)
	})
	return leads, nil
}

// CreateInvoice validates invoice, assigns it an ID and stores it.
func (m *Memory) CreateInvoice(ctx context.Context, invoice model.Invoice) (model.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return model.Invoice{}, err
	}

	invoice.Normalize()
	if err := invoice.Validate(); err != nil {
		return model.Invoice{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	invoice.ID = uuid.NewString()
	invoice.CreatedAt = m.now().UTC()
	m.invoices[invoice.ID] = invoice
	return invoice, nil
}

// GetInvoice returns the invoice with id or an error wrapping ErrNotFound.
func (m *Memory) GetInvoice(ctx context.Context, id string) (model.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return model.Invoice{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	invoice, ok := m.invoices[id]
	if !ok {
		return model.Invoice{}, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	return invoice, nil
}

// ListInvoices returns every invoice, newest first.
func (m *Memory) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	invoices := make([]model.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		invoices = append(invoices, inv)
	}
	m.mu.RUnlock()

	sort.Slice(invoices, func(i, j int) bool {
		return newer(invoices[i].CreatedAt, invoices[j].CreatedAt, invoices[i].ID, invoices[j].ID)
	})
	return invoices, nil
}

// newer orders by time descending, then by ID so equal times are stable.
func newer(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return idA < idB
}
