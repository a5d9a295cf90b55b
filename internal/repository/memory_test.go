package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
	"github.com/Veraticus/sevos/internal/service"
)

var _ service.Store = (*Memory)(nil)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMemory_SeededLists(t *testing.T) {
	m := NewMemory(WithSeed())
	ctx := context.Background()

	leads, err := m.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 4)
	assert.Equal(t, []string{"LD-2024-004", "LD-2024-001", "LD-2024-002", "LD-2024-003"},
		[]string{leads[0].ID, leads[1].ID, leads[2].ID, leads[3].ID})

	invoices, err := m.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 4)
	assert.Equal(t, "INV-2024-004", invoices[0].ID)
	assert.Equal(t, "INV-2024-003", invoices[3].ID)

	summary := model.SummarizeInvoices(invoices)
	assert.InDelta(t, 6510, summary.TotalAmount, 1e-9)
	assert.InDelta(t, 1320, summary.OverdueAmount, 1e-9)
}

func TestMemory_CreateLead(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(WithSeed(), WithClock(fixedClock(now)))
	ctx := context.Background()

	created, err := m.CreateLead(ctx, model.Lead{CompanyName: "  Prairie Grain Co  ", Email: "ops@prairie.example"})
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prairie Grain Co", created.CompanyName)
	assert.Equal(t, model.LeadCold, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)
	assert.Equal(t, now, created.CreatedAt)

	got, err := m.GetLead(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	leads, err := m.ListLeads(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, leads[0].ID)
}

func TestMemory_CreateRejectsInvalidRecords(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	tests := []struct {
		create func() error
		name   string
		field  string
	}{
		{name: "lead without company", field: "companyName", create: func() error {
			_, err := m.CreateLead(ctx, model.Lead{})
			return err
		}},
		{name: "lead with bad email", field: "email", create: func() error {
			_, err := m.CreateLead(ctx, model.Lead{CompanyName: "X", Email: "not-an-email"})
			return err
		}},
		{name: "lead with bad status", field: "status", create: func() error {
			_, err := m.CreateLead(ctx, model.Lead{CompanyName: "X", Status: "lukewarm"})
			return err
		}},
		{name: "invoice without amount", field: "amount", create: func() error {
			_, err := m.CreateInvoice(ctx, model.Invoice{CustomerName: "X"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create()
			var inputErr *common.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Violations[0].Field)
		})
	}

	leads, err := m.ListLeads(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestMemory_NotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.GetLead(ctx, "LD-missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = m.GetInvoice(ctx, "INV-missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemory_CanceledContext(t *testing.T) {
	m := NewMemory(WithSeed())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.ListInvoices(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemory_ConcurrentCreates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.CreateInvoice(ctx, model.Invoice{CustomerName: "Acme", Amount: 100})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	invoices, err := m.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 50)
}
