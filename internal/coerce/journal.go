package coerce

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

// JournalEntry is the schema for journal-entry replies to req.
//
// Recovered fields: a quoted "description". The entries always fall back to
// the standard double entry for the request's transaction type, posted for
// the invoice amount. Totals and the balanced flag are recomputed from the
// entries on both paths; whatever the reply claims for them is ignored.
func JournalEntry(req model.JournalEntryRequest) Schema[model.JournalEntryResult] {
	return Schema[model.JournalEntryResult]{
		Name:     "journal entry",
		Required: []string{"entries"},
		Embedded: true,
		Recover: func(raw string) map[string]any {
			return recoverJournal(raw, req)
		},
		Finalize: func(je *model.JournalEntryResult, _ Outcome) {
			je.Description = strings.TrimSpace(je.Description)
			if je.Description == "" {
				je.Description = defaultJournalDescription(req)
			}
			Recompute(je)
		},
		Check: checkJournalLines,
	}
}

// Recompute derives the totals and balanced flag from the entries, summed
// in cents.
func Recompute(je *model.JournalEntryResult) {
	var debits, credits decimal.Decimal
	for _, line := range je.Entries {
		if line.Debit != nil {
			debits = debits.Add(model.Money(*line.Debit))
		}
		if line.Credit != nil {
			credits = credits.Add(model.Money(*line.Credit))
		}
	}
	je.TotalDebits = debits.InexactFloat64()
	je.TotalCredits = credits.InexactFloat64()
	je.Balanced = debits.Equal(credits)
}

// checkJournalLines requires exactly one side per line, and that side must
// be at least one cent so every line counts toward the totals.
func checkJournalLines(je *model.JournalEntryResult) []common.Violation {
	var violations []common.Violation
	for i, line := range je.Entries {
		if (line.Debit == nil) == (line.Credit == nil) {
			violations = append(violations, common.Violation{
				Field:      fmt.Sprintf("entries[%d]", i),
				Constraint: "must have exactly one of debit or credit",
			})
			continue
		}
		if line.Debit != nil && model.Money(*line.Debit).IsZero() {
			violations = append(violations, common.Violation{
				Field:      fmt.Sprintf("entries[%d].debit", i),
				Constraint: "must be at least 0.01",
			})
		}
		if line.Credit != nil && model.Money(*line.Credit).IsZero() {
			violations = append(violations, common.Violation{
				Field:      fmt.Sprintf("entries[%d].credit", i),
				Constraint: "must be at least 0.01",
			})
		}
	}
	return violations
}

func recoverJournal(raw string, req model.JournalEntryRequest) map[string]any {
	obj := map[string]any{
		"description": defaultJournalDescription(req),
		"entries":     standardEntries(req),
	}
	if v, ok := stringField(raw, "description"); ok && strings.TrimSpace(v) != "" {
		obj["description"] = v
	}
	return obj
}

func standardEntries(req model.JournalEntryRequest) []any {
	posting, ok := model.StandardPosting(req.TransactionType)
	if !ok || req.InvoiceData == nil {
		return []any{}
	}
	amount := model.Money(req.InvoiceData.Amount).InexactFloat64()
	vendor := req.InvoiceData.Vendor
	return []any{
		map[string]any{
			"account":       posting.Debit.Name,
			"accountNumber": posting.Debit.Number,
			"debit":         amount,
			"description":   fmt.Sprintf("%s - %s", posting.Debit.Name, vendor),
		},
		map[string]any{
			"account":       posting.Credit.Name,
			"accountNumber": posting.Credit.Number,
			"credit":        amount,
			"description":   fmt.Sprintf("%s - %s", posting.Credit.Name, vendor),
		},
	}
}

func defaultJournalDescription(req model.JournalEntryRequest) string {
	if req.InvoiceData == nil {
		return fmt.Sprintf("Journal entry (%s)", req.TransactionType)
	}
	vendor, number := req.InvoiceData.Vendor, req.InvoiceData.InvoiceNumber
	switch req.TransactionType {
	case model.TransactionReceivable:
		return fmt.Sprintf("Customer invoice to %s - %s", vendor, number)
	case model.TransactionPayment:
		return fmt.Sprintf("Payment to %s - %s", vendor, number)
	case model.TransactionReceipt:
		return fmt.Sprintf("Payment received from %s - %s", vendor, number)
	default:
		return fmt.Sprintf("Carrier invoice from %s - %s", vendor, number)
	}
}
