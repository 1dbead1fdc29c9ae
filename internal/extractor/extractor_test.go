package extractor

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/templates"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExtractBillID(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"invoice label", "Invoice No: INV-2024-001\nTOTAL 10.00", "INV-2024-001"},
		{"receipt label", "Receipt # 88571\nTOTAL 10.00", "88571"},
		{"bare hash", "Store\n# A-1192\nTOTAL 10.00", "A-1192"},
		{"txn abbreviation", "txn: 99812\nTOTAL 10.00", "99812"},
		{"keyword needs word boundary", "interaction 12345 redaction\nbill no: XJ-77\n", "XJ-77"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, _ := Extract(tc.text, nil)
			assert.Equal(t, tc.expected, fields.BillID)
		})
	}
}

func TestExtractBillIDRejectsLabelCaptures(t *testing.T) {
	// "Invoice Total" captures "Total", which is a label, not an identifier.
	fields, _ := Extract("Invoice Total\nTOTAL 10.00", nil)
	assert.Regexp(t, `^BILL-\d{6}$`, fields.BillID)
}

func TestExtractBillIDFallback(t *testing.T) {
	fields, _ := Extract("Some Store\nBread 2.50\nTOTAL 2.50", nil)
	assert.Regexp(t, `^BILL-\d{6}$`, fields.BillID)
	assert.NotEmpty(t, fields.BillID)
}

func TestExtractVendor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"first line", "Fresh Mart\nDate: 2024-01-05\nTOTAL 10.00", "Fresh Mart"},
		{"skips generic header", "TAX INVOICE\nCity Supermarket\nTOTAL 10.00", "City Supermarket"},
		{"skips short lines", "AB\nReal Vendor Name\nTOTAL 10.00", "Real Vendor Name"},
		{"only first three lines considered", "one\ntwo\nthr\nVendorville\nTOTAL 10.00", "Unknown Vendor"},
		{"nothing qualifies", "ab\ncd\n", "Unknown Vendor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, _ := Extract(tc.text, nil)
			assert.Equal(t, tc.expected, fields.Vendor)
		})
	}
}

func TestExtractFinancials(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		amount, tax, sub string
	}{
		{
			name:   "total and tax lines",
			text:   "Store One\nTOTAL 45.67\nTAX 3.25",
			amount: "45.67", tax: "3.25", sub: "42.42",
		},
		{
			name:   "split tax lines accumulate",
			text:   "Store Two\nTOTAL 112.00\nCGST 4.00\nSGST 4.00",
			amount: "112.00", tax: "8", sub: "104",
		},
		{
			name:   "tax invoice header is not a tax line",
			text:   "TAX INVOICE 2291\nStore Three\nTOTAL 50.00\nGST 4.00",
			amount: "50.00", tax: "4", sub: "46",
		},
		{
			name:   "impossible tax zeroed",
			text:   "Store Four\nTOTAL 10.00\nTAX 99.00",
			amount: "10.00", tax: "0", sub: "10.00",
		},
		{
			name:   "explicit subtotal kept",
			text:   "Store Five\nSub Total 92.59\nTAX 7.41\nTOTAL 100.00",
			amount: "100.00", tax: "7.41", sub: "92.59",
		},
		{
			name:   "whole document fallback takes maximum decimal",
			text:   "Store Six\nBread 12.50\nMilk 45.67\nthanks",
			amount: "45.67", tax: "0", sub: "45.67",
		},
		{
			name:   "payable keyword qualifies as total",
			text:   "Store Seven\nAmount Payable 88.20",
			amount: "88.20", tax: "0", sub: "88.20",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, _ := Extract(tc.text, nil)
			assert.True(t, fields.Amount.Equal(dec(tc.amount)), "amount: got %s want %s", fields.Amount, tc.amount)
			assert.True(t, fields.Tax.Equal(dec(tc.tax)), "tax: got %s want %s", fields.Tax, tc.tax)
			assert.True(t, fields.Subtotal.Equal(dec(tc.sub)), "subtotal: got %s want %s", fields.Subtotal, tc.sub)
		})
	}
}

func TestExtractLineItems(t *testing.T) {
	text := "Corner Bakery\n" +
		"Bread 2.50\n" +
		"Milk 3.20\n" +
		"2 x 3\n" + // quantity breakdown, skipped
		"Phone 9876543210\n" + // price out of bounds, rejected
		"AB 1.00\n" + // name too short
		"CASH 50.00\n" + // payment line, skipped
		"TOTAL 45.67\n"

	fields, items := Extract(text, nil)
	require.Len(t, items, 2)
	assert.Equal(t, "Bread", items[0].Name)
	assert.True(t, items[0].Price.Equal(dec("2.50")))
	assert.Equal(t, "Milk", items[1].Name)
	assert.True(t, items[1].Price.Equal(dec("3.20")))

	for _, item := range items {
		assert.True(t, item.Price.IsPositive())
		assert.True(t, item.Price.LessThan(fields.Amount))
	}
}

func TestTemplateLocksFields(t *testing.T) {
	registry := templates.Default()
	text := "Walmart Supercenter\n" +
		"TC# 5512\n" +
		"03/15/2024\n" +
		"TOTAL DUE $45.67\n" +
		"TAX 1 $3.25\n" +
		"Decoy total 99.99\n"

	tmpl := registry.Match(text)
	require.NotNil(t, tmpl)

	fields, _ := Extract(text, tmpl)
	assert.Equal(t, "Walmart", fields.Vendor)
	assert.Equal(t, "5512", fields.BillID)
	assert.Equal(t, "2024-03-15", fields.Date)
	assert.True(t, fields.Amount.Equal(dec("45.67")), "amount locked by template, got %s", fields.Amount)
	assert.True(t, fields.Tax.Equal(dec("3.25")))
}

func TestTemplateDateFallsBackToGenericScan(t *testing.T) {
	tmpl := &templates.Template{
		Name:   "Oddball",
		Vendor: regexp.MustCompile(`(?i)oddball`),
		Date:   regexp.MustCompile(`dated\s+(\S+)`),
	}

	fields, _ := Extract("Oddball Shop\ndated garbage\n2024-02-02\nTOTAL 5.00", tmpl)
	assert.Equal(t, "2024-02-02", fields.Date)
}

func TestExtractInvariants(t *testing.T) {
	texts := []string{
		"Noise only\nzzz\n",
		"Store\nTOTAL 100.00\nTAX 8.00\n",
		"Store\nTOTAL 0\nTAX 5.00\n",
	}

	for _, text := range texts {
		fields, items := Extract(text, nil)
		assert.True(t, fields.Tax.LessThanOrEqual(fields.Amount) || fields.Amount.IsZero(),
			"tax must not exceed amount for %q", text)
		for _, item := range items {
			assert.True(t, item.Price.IsPositive())
			assert.True(t, item.Price.LessThan(fields.Amount))
		}
	}
}
