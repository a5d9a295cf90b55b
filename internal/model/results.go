package model

// ClassificationResult is the typed outcome of classifying one communication.
type ClassificationResult struct {
	Bucket     Bucket   `json:"bucket" validate:"required,oneof=leads invoices dispatch carrier_updates accounting claims other"`
	Intent     Intent   `json:"intent,omitempty" validate:"omitempty,oneof=rate_request capacity_inquiry quote_follow_up payment_reminder invoice_dispute payment_confirmation load_update pickup_confirmation delivery_confirmation delay_notification availability_update rate_negotiation equipment_inquiry payment_inquiry factoring_notice tax_document damage_report insurance_claim cargo_issue"`
	Priority   Priority `json:"priority" validate:"required,oneof=low medium high urgent"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// BidDraftResult is a drafted quote response for a rate request.
type BidDraftResult struct {
	Content       string   `json:"content" validate:"required"`
	SuggestedRate *float64 `json:"suggestedRate,omitempty" validate:"omitempty,gt=0"`
	Reasoning     string   `json:"reasoning,omitempty"`
	NextSteps     []string `json:"nextSteps,omitempty"`
}

// LineItem is one billed line of an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// ExtractedInvoice holds the structured fields pulled from an invoice document.
type ExtractedInvoice struct {
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	Vendor        string     `json:"vendor" validate:"required"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	Currency      string     `json:"currency" validate:"required,len=3,uppercase,alpha"`
	IssueDate     string     `json:"issueDate,omitempty"`
	DueDate       string     `json:"dueDate,omitempty"`
	LineItems     []LineItem `json:"lineItems,omitempty" validate:"omitempty,dive"`
}

// JournalLine is one side of a double-entry posting. Exactly one of Debit
// and Credit is set.
type JournalLine struct {
	Account       string   `json:"account,omitempty"`
	AccountNumber string   `json:"accountNumber,omitempty"`
	Debit         *float64 `json:"debit,omitempty" validate:"omitempty,gt=0"`
	Credit        *float64 `json:"credit,omitempty" validate:"omitempty,gt=0"`
	Description   string   `json:"description,omitempty"`
}

// JournalEntryResult is a suggested journal entry. Totals and Balanced are
// always derived from Entries.
type JournalEntryResult struct {
	Description  string        `json:"description" validate:"required"`
	Entries      []JournalLine `json:"entries" validate:"required,min=1,dive"`
	TotalDebits  float64       `json:"totalDebits"`
	TotalCredits float64       `json:"totalCredits"`
	Balanced     bool          `json:"balanced"`
}

// SummaryResult condenses a communication into something a dispatcher can
// act on.
type SummaryResult struct {
	Summary     string   `json:"summary" validate:"required"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems,omitempty"`
	Urgency     Priority `json:"urgency" validate:"required,oneof=low medium high urgent"`
}

// ChatReply is the free-text answer of the general assistant.
type ChatReply struct {
	Response string `json:"response"`
}
