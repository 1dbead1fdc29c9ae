// Package models defines the core domain types shared across the application:
// extracted receipt records, line items, validation reports, and the
// configuration shapes for categories and vendor templates.
package models

import (
	"github.com/shopspring/decimal"
)

// Receipt is the structured record extracted from the OCR text of one receipt.
// It is constructed once per extraction and not mutated afterwards.
type Receipt struct {
	// BillID uniquely identifies the receipt. Synthesized identifiers carry
	// a "BILL-" prefix so they can be told apart from genuinely extracted ones.
	BillID string `json:"bill_id" yaml:"bill_id"`

	// Vendor is the merchant display name, "Unknown Vendor" when not found.
	Vendor string `json:"vendor" yaml:"vendor"`

	// Date is the receipt date in canonical YYYY-MM-DD form.
	Date string `json:"date" yaml:"date"`

	// Amount is the non-negative grand total, 2-decimal precision.
	Amount decimal.NullDecimal `json:"amount" yaml:"amount"`

	// Tax is the non-negative tax component, never greater than Amount.
	Tax decimal.NullDecimal `json:"tax" yaml:"tax"`

	// Subtotal equals Amount - Tax unless it was independently extracted.
	Subtotal decimal.Decimal `json:"subtotal" yaml:"subtotal"`

	// Category is one of the fixed category names or "Uncategorized".
	Category string `json:"category" yaml:"category"`
}

// LineItem is a single purchased item recovered from the receipt body.
type LineItem struct {
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// RequiredFieldNames lists the fields a record must carry to be validated,
// in reporting order.
var RequiredFieldNames = []string{"bill_id", "vendor", "date", "amount", "tax"}

// MissingFields returns the names of required fields absent from the record,
// in RequiredFieldNames order.
func (r Receipt) MissingFields() []string {
	var missing []string
	if r.BillID == "" {
		missing = append(missing, "bill_id")
	}
	if r.Vendor == "" {
		missing = append(missing, "vendor")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if !r.Amount.Valid {
		missing = append(missing, "amount")
	}
	if !r.Tax.Valid {
		missing = append(missing, "tax")
	}
	return missing
}

// AmountValue returns the record amount, or zero when absent.
func (r Receipt) AmountValue() decimal.Decimal {
	if !r.Amount.Valid {
		return decimal.Zero
	}
	return r.Amount.Decimal
}

// TaxValue returns the record tax, or zero when absent.
func (r Receipt) TaxValue() decimal.Decimal {
	if !r.Tax.Valid {
		return decimal.Zero
	}
	return r.Tax.Decimal
}
