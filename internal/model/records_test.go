package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
)

func TestLead_NormalizeAndValidate(t *testing.T) {
	l := Lead{CompanyName: " MegaCorp ", Email: "sarah.j@megacorp.com"}
	l.Normalize()

	assert.Equal(t, "MegaCorp", l.CompanyName)
	assert.Equal(t, LeadCold, l.Status)
	assert.Equal(t, PriorityMedium, l.Priority)
	assert.NoError(t, l.Validate())

	l.Email = "not-an-email"
	var inputErr *common.InputError
	require.ErrorAs(t, l.Validate(), &inputErr)
	assert.Equal(t, []common.Violation{{Field: "email", Constraint: "must be an email address"}}, inputErr.Violations)
}

func TestInvoice_Validate(t *testing.T) {
	i := Invoice{CustomerName: "ABC Manufacturing", Amount: -5}
	i.Normalize()
	assert.Equal(t, InvoiceDraft, i.Status)

	var inputErr *common.InputError
	require.ErrorAs(t, i.Validate(), &inputErr)
	assert.Equal(t, "amount", inputErr.Violations[0].Field)
}

func TestSummarizeLeads(t *testing.T) {
	s := SummarizeLeads([]Lead{
		{Status: LeadHot, Source: "website", Priority: PriorityHigh},
		{Status: LeadWarm, Source: "referral", Priority: PriorityHigh},
		{Status: LeadCold, Source: "website", Priority: PriorityMedium},
	})

	assert.Equal(t, 3, s.TotalLeads)
	assert.Equal(t, 2, s.HighPriorityLeads)
	assert.Equal(t, 0, s.StatusBreakdown[LeadQualified])
	assert.Equal(t, 2, s.SourceBreakdown["website"])
}

func TestSummarizeInvoices(t *testing.T) {
	s := SummarizeInvoices([]Invoice{
		{Status: InvoicePaid, Amount: 2450.00},
		{Status: InvoicePending, Amount: 1850.10},
		{Status: InvoicePending, Amount: 0.2},
		{Status: InvoiceOverdue, Amount: 1320.00},
		{Status: InvoiceDraft, Amount: 890.00},
	})

	assert.Equal(t, 5, s.TotalInvoices)
	assert.Equal(t, 6510.30, s.TotalAmount)
	assert.Equal(t, 2450.00, s.PaidAmount)
	assert.Equal(t, 1850.30, s.PendingAmount)
	assert.Equal(t, 1320.00, s.OverdueAmount)
	assert.Equal(t, 2, s.StatusBreakdown[InvoicePending])
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.30", Money(0.1).Add(Money(0.2)).StringFixed(2))
	assert.Equal(t, "2450.01", Money(2450.005).StringFixed(2))
}

func TestStandardPosting(t *testing.T) {
	tests := []struct {
		tt     TransactionType
		debit  string
		credit string
	}{
		{TransactionPayable, "5000", "2000"},
		{TransactionReceivable, "1200", "4000"},
		{TransactionPayment, "2000", "1000"},
		{TransactionReceipt, "1000", "1200"},
	}
	for _, tc := range tests {
		t.Run(string(tc.tt), func(t *testing.T) {
			p, ok := StandardPosting(tc.tt)
			require.True(t, ok)
			assert.Equal(t, tc.debit, p.Debit.Number)
			assert.Equal(t, tc.credit, p.Credit.Number)
		})
	}

	_, ok := StandardPosting("refund")
	assert.False(t, ok)
}
