package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus tracks how warm a prospective shipper is.
type LeadStatus string

// LeadStatus constants.
const (
	LeadHot       LeadStatus = "hot"
	LeadWarm      LeadStatus = "warm"
	LeadCold      LeadStatus = "cold"
	LeadQualified LeadStatus = "qualified"
)

// LeadStatuses lists every valid lead status.
var LeadStatuses = []LeadStatus{LeadHot, LeadWarm, LeadCold, LeadQualified}

// Lead is a prospective shipper tracked by the sales desk.
type Lead struct {
	CreatedAt     time.Time  `json:"createdAt"`
	ID            string     `json:"id"`
	CompanyName   string     `json:"companyName" validate:"required"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	Email         string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string     `json:"phone,omitempty"`
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	CommodityType string     `json:"commodityType,omitempty"`
	Weight        string     `json:"weight,omitempty"`
	Frequency     string     `json:"frequency,omitempty"`
	Budget        string     `json:"budget,omitempty"`
	Status        LeadStatus `json:"status" validate:"oneof=hot warm cold qualified"`
	Source        string     `json:"source,omitempty"`
	AssignedTo    string     `json:"assignedTo,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Priority      Priority   `json:"priority" validate:"oneof=low medium high urgent"`
}

// Normalize trims text fields and applies defaults for new leads.
func (l *Lead) Normalize() {
	l.CompanyName = strings.TrimSpace(l.CompanyName)
	l.Email = strings.TrimSpace(l.Email)
	if l.Status == "" {
		l.Status = LeadCold
	}
	if l.Priority == "" {
		l.Priority = PriorityMedium
	}
}

// Validate reports every invalid field as an InputError.
func (l *Lead) Validate() error {
	return validateRequest(l)
}

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

// InvoiceStatus constants.
const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceDraft   InvoiceStatus = "draft"
)

// InvoiceStatuses lists every valid invoice status.
var InvoiceStatuses = []InvoiceStatus{InvoicePaid, InvoicePending, InvoiceOverdue, InvoiceDraft}

// Invoice is a customer invoice for a hauled load.
type Invoice struct {
	CreatedAt     time.Time     `json:"createdAt"`
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName" validate:"required"`
	LoadID        string        `json:"loadId,omitempty"`
	Route         string        `json:"route,omitempty"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Status        InvoiceStatus `json:"status" validate:"oneof=paid pending overdue draft"`
	IssueDate     string        `json:"issueDate,omitempty"`
	DueDate       string        `json:"dueDate,omitempty"`
	PaymentDate   string        `json:"paymentDate,omitempty"`
	CarrierName   string        `json:"carrierName,omitempty"`
	CommodityType string        `json:"commodityType,omitempty"`
	Weight        string        `json:"weight,omitempty"`
	Distance      string        `json:"distance,omitempty"`
}

// Normalize trims text fields and applies defaults for new invoices.
func (i *Invoice) Normalize() {
	i.CustomerName = strings.TrimSpace(i.CustomerName)
	if i.Status == "" {
		i.Status = InvoiceDraft
	}
}

// Validate reports every invalid field as an InputError.
func (i *Invoice) Validate() error {
	return validateRequest(i)
}

// LeadSummary aggregates the lead pipeline.
type LeadSummary struct {
	StatusBreakdown   map[LeadStatus]int `json:"statusBreakdown"`
	SourceBreakdown   map[string]int     `json:"sourceBreakdown"`
	TotalLeads        int                `json:"totalLeads"`
	HighPriorityLeads int                `json:"highPriorityLeads"`
}

// InvoiceSummary aggregates receivables by status.
type InvoiceSummary struct {
	StatusBreakdown map[InvoiceStatus]int `json:"statusBreakdown"`
	TotalInvoices   int                   `json:"totalInvoices"`
	TotalAmount     float64               `json:"totalAmount"`
	PaidAmount      float64               `json:"paidAmount"`
	PendingAmount   float64               `json:"pendingAmount"`
	OverdueAmount   float64               `json:"overdueAmount"`
}

// SummarizeLeads counts leads by status and source.
func SummarizeLeads(leads []Lead) LeadSummary {
	s := LeadSummary{
		StatusBreakdown: make(map[LeadStatus]int, len(LeadStatuses)),
		SourceBreakdown: make(map[string]int),
		TotalLeads:      len(leads),
	}
	for _, status := range LeadStatuses {
		s.StatusBreakdown[status] = 0
	}
	for _, l := range leads {
		s.StatusBreakdown[l.Status]++
		if l.Source != "" {
			s.SourceBreakdown[l.Source]++
		}
		if l.Priority == PriorityHigh || l.Priority == PriorityUrgent {
			s.HighPriorityLeads++
		}
	}
	return s
}

// SummarizeInvoices totals invoice amounts by status.
func SummarizeInvoices(invoices []Invoice) InvoiceSummary {
	s := InvoiceSummary{
		StatusBreakdown: make(map[InvoiceStatus]int, len(InvoiceStatuses)),
		TotalInvoices:   len(invoices),
	}
	for _, status := range InvoiceStatuses {
		s.StatusBreakdown[status] = 0
	}

	var total, paid, pending, overdue decimal.Decimal
	for _, inv := range invoices {
		s.StatusBreakdown[inv.Status]++
		amount := Money(inv.Amount)
		total = total.Add(amount)
		switch inv.Status {
		case InvoicePaid:
			paid = paid.Add(amount)
		case InvoicePending:
			pending = pending.Add(amount)
		case InvoiceOverdue:
			overdue = overdue.Add(amount)
		case InvoiceDraft:
		}
	}
	s.TotalAmount = total.InexactFloat64()
	s.PaidAmount = paid.InexactFloat64()
	s.PendingAmount = pending.InexactFloat64()
	s.OverdueAmount = overdue.InexactFloat64()
	return s
}

// Money converts a float amount to a decimal rounded to cents.
func Money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}
