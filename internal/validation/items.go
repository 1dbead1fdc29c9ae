package validation

import (
	"github.com/shopspring/decimal"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// DefaultItemsTolerance is the accepted gap between the printed total and
// the sum of recognized line items. Item extraction is best-effort, so the
// tolerance is generous.
var DefaultItemsTolerance = decimal.NewFromFloat(2.0)

// SumItems returns the total price of the recognized line items.
func SumItems(items []models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}
	return sum
}

// ItemsTotalMatches reports whether the extracted total is within tolerance
// of the summed line items. A zero-valued extracted total never matches.
func ItemsTotalMatches(extractedTotal decimal.Decimal, items []models.LineItem, tolerance decimal.Decimal) bool {
	if !extractedTotal.IsPositive() {
		return false
	}
	return extractedTotal.Sub(SumItems(items)).Abs().LessThanOrEqual(tolerance)
}
