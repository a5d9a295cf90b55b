// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Bucket is the top-level business category a communication is filed under.
type Bucket string

// Bucket constants.
const (
	BucketLeads          Bucket = "leads"
	BucketInvoices       Bucket = "invoices"
	BucketDispatch       Bucket = "dispatch"
	BucketCarrierUpdates Bucket = "carrier_updates"
	BucketAccounting     Bucket = "accounting"
	BucketClaims         Bucket = "claims"
	BucketOther          Bucket = "other"
)

// Buckets lists every valid bucket in display order.
var Buckets = []Bucket{
	BucketLeads,
	BucketInvoices,
	BucketDispatch,
	BucketCarrierUpdates,
	BucketAccounting,
	BucketClaims,
	BucketOther,
}

// Valid reports whether b is one of the defined buckets.
func (b Bucket) Valid() bool {
	return contains(Buckets, b)
}

// Intent is the finer-grained purpose of a communication within its bucket.
type Intent string

// Intent constants, grouped by the bucket they usually belong to.
const (
	// Leads.
	IntentRateRequest     Intent = "rate_request"
	IntentCapacityInquiry Intent = "capacity_inquiry"
	IntentQuoteFollowUp   Intent = "quote_follow_up"

	// Invoices.
	IntentPaymentReminder     Intent = "payment_reminder"
	IntentInvoiceDispute      Intent = "invoice_dispute"
	IntentPaymentConfirmation Intent = "payment_confirmation"

	// Dispatch.
	IntentLoadUpdate           Intent = "load_update"
	IntentPickupConfirmation   Intent = "pickup_confirmation"
	IntentDeliveryConfirmation Intent = "delivery_confirmation"
	IntentDelayNotification    Intent = "delay_notification"

	// Carrier updates.
	IntentAvailabilityUpdate Intent = "availability_update"
	IntentRateNegotiation    Intent = "rate_negotiation"
	IntentEquipmentInquiry   Intent = "equipment_inquiry"

	// Accounting.
	IntentPaymentInquiry  Intent = "payment_inquiry"
	IntentFactoringNotice Intent = "factoring_notice"
	IntentTaxDocument     Intent = "tax_document"

	// Claims.
	IntentDamageReport   Intent = "damage_report"
	IntentInsuranceClaim Intent = "insurance_claim"
	IntentCargoIssue     Intent = "cargo_issue"
)

// Intents lists every valid intent.
var Intents = []Intent{
	IntentRateRequest, IntentCapacityInquiry, IntentQuoteFollowUp,
	IntentPaymentReminder, IntentInvoiceDispute, IntentPaymentConfirmation,
	IntentLoadUpdate, IntentPickupConfirmation, IntentDeliveryConfirmation, IntentDelayNotification,
	IntentAvailabilityUpdate, IntentRateNegotiation, IntentEquipmentInquiry,
	IntentPaymentInquiry, IntentFactoringNotice, IntentTaxDocument,
	IntentDamageReport, IntentInsuranceClaim, IntentCargoIssue,
}

// Valid reports whether i is one of the defined intents.
func (i Intent) Valid() bool {
	return contains(Intents, i)
}

// Priority ranks how quickly a communication needs attention. It doubles as
// the urgency scale for summaries.
type Priority string

// Priority constants.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority from least to most pressing.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	return contains(Priorities, p)
}

// CommunicationType is the channel a piece of content arrived on.
type CommunicationType string

// CommunicationType constants.
const (
	CommunicationEmail    CommunicationType = "email"
	CommunicationCall     CommunicationType = "call"
	CommunicationDocument CommunicationType = "document"
)

// ResponseType selects the shape of a drafted bid.
type ResponseType string

// ResponseType constants.
const (
	ResponseEmail      ResponseType = "email"
	ResponseCallScript ResponseType = "call_script"
)

// Tone selects the register of a drafted bid.
type Tone string

// Tone constants.
const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneUrgent       Tone = "urgent"
)

// TransactionType is the accounting event a journal entry records.
type TransactionType string

// TransactionType constants.
const (
	TransactionPayable    TransactionType = "payable"
	TransactionReceivable TransactionType = "receivable"
	TransactionPayment    TransactionType = "payment"
	TransactionReceipt    TransactionType = "receipt"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{
	TransactionPayable, TransactionReceivable, TransactionPayment, TransactionReceipt,
}

// Valid reports whether t is one of the defined transaction types.
func (t TransactionType) Valid() bool {
	return contains(TransactionTypes, t)
}

// Task identifies one assistant operation end to end: its prompt, its
// completion settings and the schema its reply is coerced into.
type Task string

// Task constants.
const (
	TaskClassify       Task = "classify"
	TaskDraftBid       Task = "draft-bid"
	TaskExtractInvoice Task = "extract-invoice"
	TaskJournalEntry   Task = "generate-journal-entry"
	TaskSummarize      Task = "summarize"
	TaskChat           Task = "chat"
)

// Tasks lists every task the assistant can run.
var Tasks = []Task{
	TaskClassify, TaskDraftBid, TaskExtractInvoice, TaskJournalEntry, TaskSummarize, TaskChat,
}

// Valid reports whether t is a known task.
func (t Task) Valid() bool {
	return contains(Tasks, t)
}

// Join renders an enum list as a comma-separated string for prompts and
// error messages.
func Join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
