package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw numeric string from OCR text into a decimal value.
// Thousands separators are stripped first. Malformed input yields zero rather
// than an error; correctness of the value is checked downstream by validation.
func ParseAmount(raw string) decimal.Decimal {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds a monetary value to 2 decimal places using round-half-up,
// matching how totals are printed on receipts (not banker's rounding).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NullAmount wraps a decimal in a valid NullDecimal.
func NullAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
