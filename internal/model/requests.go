package model

import (
	"strings"

	"github.com/Veraticus/sevos/internal/common"
)

// ClassifyRequest asks for a communication to be filed into a bucket.
type ClassifyRequest struct {
	Content string            `json:"content" validate:"required"`
	Type    CommunicationType `json:"type" validate:"oneof=email call"`
	Subject string            `json:"subject,omitempty"`
	From    string            `json:"from,omitempty"`
}

// Normalize trims text fields and applies defaults.
func (r *ClassifyRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	r.Subject = strings.TrimSpace(r.Subject)
	r.From = strings.TrimSpace(r.From)
	if r.Type == "" {
		r.Type = CommunicationEmail
	}
}

// Validate reports every invalid field as an InputError.
func (r *ClassifyRequest) Validate() error {
	return validateRequest(r)
}

// LoadContext carries the optional shipment details of a bid request.
type LoadContext struct {
	CustomerName  string   `json:"customerName,omitempty"`
	Origin        string   `json:"origin,omitempty"`
	Destination   string   `json:"destination,omitempty"`
	Commodity     string   `json:"commodity,omitempty"`
	Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	EquipmentType string   `json:"equipmentType,omitempty"`
	Timeline      string   `json:"timeline,omitempty"`
}

// BidDraftRequest asks for a quote response to a customer's rate request.
type BidDraftRequest struct {
	Content      string       `json:"content" validate:"required"`
	Context      *LoadContext `json:"context,omitempty"`
	ResponseType ResponseType `json:"responseType" validate:"oneof=email call_script"`
	Tone         Tone         `json:"tone" validate:"oneof=professional friendly urgent"`
}

// Normalize trims text fields and applies defaults.
func (r *BidDraftRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	if r.ResponseType == "" {
		r.ResponseType = ResponseEmail
	}
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
}

// Validate reports every invalid field as an InputError.
func (r *BidDraftRequest) Validate() error {
	return validateRequest(r)
}

// ExtractInvoiceRequest carries the text of an invoice document.
type ExtractInvoiceRequest struct {
	Content  string `json:"content" validate:"required"`
	Filename string `json:"filename,omitempty"`
}

// Normalize trims text fields.
func (r *ExtractInvoiceRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	r.Filename = strings.TrimSpace(r.Filename)
}

// Validate reports every invalid field as an InputError.
func (r *ExtractInvoiceRequest) Validate() error {
	return validateRequest(r)
}

// InvoiceData is the invoice a journal entry is suggested for.
type InvoiceData struct {
	InvoiceNumber string  `json:"invoiceNumber" validate:"required"`
	Vendor        string  `json:"vendor" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Description   string  `json:"description,omitempty"`
}

// JournalEntryRequest asks for the double entry that records an invoice.
type JournalEntryRequest struct {
	InvoiceData     *InvoiceData    `json:"invoiceData" validate:"required"`
	TransactionType TransactionType `json:"transactionType" validate:"oneof=payable receivable payment receipt"`
}

// Normalize trims text fields and applies defaults.
func (r *JournalEntryRequest) Normalize() {
	if r.TransactionType == "" {
		r.TransactionType = TransactionPayable
	}
	if r.InvoiceData != nil {
		r.InvoiceData.InvoiceNumber = strings.TrimSpace(r.InvoiceData.InvoiceNumber)
		r.InvoiceData.Vendor = strings.TrimSpace(r.InvoiceData.Vendor)
		r.InvoiceData.Description = strings.TrimSpace(r.InvoiceData.Description)
	}
}

// Validate reports every invalid field as an InputError.
func (r *JournalEntryRequest) Validate() error {
	return validateRequest(r)
}

// SummarizeRequest asks for a summary of an email, call or document.
type SummarizeRequest struct {
	Content string            `json:"content" validate:"required"`
	Type    CommunicationType `json:"type" validate:"oneof=email call document"`
	Context string            `json:"context,omitempty"`
}

// Normalize trims text fields and applies defaults.
func (r *SummarizeRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
	r.Context = strings.TrimSpace(r.Context)
	if r.Type == "" {
		r.Type = CommunicationEmail
	}
}

// Validate reports every invalid field as an InputError.
func (r *SummarizeRequest) Validate() error {
	return validateRequest(r)
}

// ChatRequest is one turn of the general assistant chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context,omitempty"`
}

// Normalize trims text fields.
func (r *ChatRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
	r.Context = strings.TrimSpace(r.Context)
}

// Validate reports every invalid field as an InputError.
func (r *ChatRequest) Validate() error {
	return validateRequest(r)
}

func validateRequest(r any) error {
	if violations := common.ValidateStruct(r); len(violations) > 0 {
		return &common.InputError{Violations: violations}
	}
	return nil
}
