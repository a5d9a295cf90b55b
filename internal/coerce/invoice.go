package coerce

import (
	"regexp"
	"strings"

	"github.com/Veraticus/sevos/internal/model"
)

// Defaults used when an invoice reply is not valid JSON.
const (
	FallbackInvoiceNumber = "Unknown"
	FallbackVendor        = "Unknown Vendor"
	DefaultCurrency       = "USD"
)

var (
	labelledInvoiceRe = regexp.MustCompile(`(?i)\binvoice\s*(?:number|no\.?|num|id)?\s*[#:]?\s*#?\s*([a-z0-9][a-z0-9-]*[0-9][a-z0-9-]*)`)
	bareInvoiceRe     = regexp.MustCompile(`(?i)\b(inv-?[0-9][a-z0-9-]*)`)
	vendorLineRe      = regexp.MustCompile(`(?im)^\s*(?:vendor|carrier|from|bill from|remit to)\s*:\s*(.+?)\s*$`)
)

// Invoice is the schema for extract-invoice replies. source is the caller's
// document, searched after the reply when the reply is not JSON.
//
// Recovered fields: quoted "invoiceNumber", "vendor", "currency", "dueDate",
// "issueDate" values and a numeric "amount"; failing those, an invoice
// number label, a vendor/carrier line and a total or first dollar amount in
// the reply, then in source. Missing values default to Unknown, Unknown
// Vendor and 0. An amount of 0 is never accepted, so an invoice whose total
// cannot be found fails validation instead of being fabricated.
func Invoice(source string) Schema[model.ExtractedInvoice] {
	return Schema[model.ExtractedInvoice]{
		Name:     "invoice",
		Required: []string{"invoiceNumber", "vendor", "amount"},
		Numeric:  []string{"amount"},
		Embedded: true,
		Recover: func(raw string) map[string]any {
			return recoverInvoice(raw, source)
		},
		Finalize: func(inv *model.ExtractedInvoice, _ Outcome) {
			inv.InvoiceNumber = strings.TrimSpace(inv.InvoiceNumber)
			inv.Vendor = strings.TrimSpace(inv.Vendor)
			inv.Currency = strings.ToUpper(strings.TrimSpace(inv.Currency))
			if inv.Currency == "" {
				inv.Currency = DefaultCurrency
			}
		},
	}
}

func recoverInvoice(raw, source string) map[string]any {
	obj := map[string]any{}
	for _, key := range []string{"invoiceNumber", "vendor", "currency", "issueDate", "dueDate"} {
		if v, ok := stringField(raw, key); ok {
			obj[key] = v
		}
	}
	if f, ok := numberField(raw, "amount"); ok {
		obj["amount"] = f
	}

	for _, text := range []string{raw, source} {
		if _, ok := obj["invoiceNumber"]; !ok {
			if number, ok := invoiceNumber(text); ok {
				obj["invoiceNumber"] = number
			}
		}
		if _, ok := obj["vendor"]; !ok {
			if m := vendorLineRe.FindStringSubmatch(text); m != nil {
				obj["vendor"] = m[1]
			}
		}
		if _, ok := obj["amount"]; !ok {
			if f, ok := totalAmount(text); ok {
				obj["amount"] = f
			}
		}
	}

	setDefault(obj, "invoiceNumber", FallbackInvoiceNumber)
	setDefault(obj, "vendor", FallbackVendor)
	setDefault(obj, "amount", 0.0)
	return obj
}

func invoiceNumber(text string) (string, bool) {
	if m := labelledInvoiceRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := bareInvoiceRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

func setDefault(obj map[string]any, key string, value any) {
	if v, ok := obj[key]; !ok || v == nil {
		obj[key] = value
	}
}
