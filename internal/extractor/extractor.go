// Package extractor recovers structured receipt fields from raw OCR text.
// A bound vendor template locks any field its pattern matches; every other
// field falls back to an ordered cascade of generic heuristics. Extraction
// never fails: each field has a deterministic default, and correctness of
// individual values is checked downstream by validation.
package extractor

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/dateutils"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/templates"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Fields is the partially-extracted record before category assignment and
// final rounding. Every field is populated; absent data is replaced by its
// deterministic fallback.
type Fields struct {
	BillID   string
	Vendor   string
	Date     string
	Amount   decimal.Decimal
	Tax      decimal.Decimal
	Subtotal decimal.Decimal
}

// Labeled-prefix patterns for receipt identifiers, in priority order.
// Word boundaries before the keyword keep fragments of longer words
// (e.g. "action" inside "transaction") from matching.
var billIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:transaction|invoice|receipt|order|ticket|bill|inv|rec|txn|trans)\b\s*(?:no|id|number|#)?\s*[:.-]?\s*([a-zA-Z0-9/-]+)`),
	regexp.MustCompile(`(?i)#\s*([a-zA-Z0-9/-]+)`),
	regexp.MustCompile(`(?i)\b(?:inv|rec|txn)\b\s*[:.-]?\s*([a-zA-Z0-9/-]+)`),
}

// Candidates containing these substrings are almost certainly mis-captured
// labels, not identifiers.
var rejectedIDSubstrings = []string{"total", "tax", "date", "amount", "item"}

// genericHeaders are boilerplate first lines that must not be mistaken for
// a vendor name.
var genericHeaders = map[string]struct{}{
	"tax invoice":    {},
	"cash receipt":   {},
	"bill of supply": {},
	"estimate":       {},
	"original":       {},
	"trans":          {},
}

var (
	totalLinePattern    = regexp.MustCompile(`(?i)\b(total|tot|due|payable)\b`)
	taxLinePattern      = regexp.MustCompile(`(?i)\b(tax|gst|vat|cgst|sgst)\b`)
	subtotalLinePattern = regexp.MustCompile(`(?i)\b(sub\s*total|sub\s*ttl|sub\s*tot|stot|net\s*amount|net\s*amt|taxable|sub)\b`)
	quantityPattern     = regexp.MustCompile(`\d+\s*x\s*\d+`)
	itemSkipPattern     = regexp.MustCompile(`(?i)(total|subtotal|subttl|tax|vat|gst|change|cash|card|due)`)
	itemLinePattern     = regexp.MustCompile(`^(.+?)\s+(\d+[.,]?\d*)$`)
)

// templateFields holds the values a bound template managed to capture.
type templateFields struct {
	billID    string
	dateRaw   string
	amount    decimal.Decimal
	hasAmount bool
	tax       decimal.Decimal
	hasTax    bool
	vendor    string
}

// Extract pulls receipt fields and line items out of raw OCR text.
// tmpl may be nil, in which case only generic heuristics run.
func Extract(text string, tmpl *templates.Template) (Fields, []models.LineItem) {
	td := applyTemplate(text, tmpl)
	lines := textutils.Lines(text)

	f := Fields{
		BillID: extractBillID(lines, td),
		Vendor: extractVendor(lines, td),
		Date:   extractDate(text, td),
	}
	f.Amount, f.Tax, f.Subtotal = extractFinancials(text, lines, td)

	items := extractLineItems(lines, f.Amount)

	log.WithFields(logrus.Fields{
		"bill_id": f.BillID,
		"vendor":  f.Vendor,
		"date":    f.Date,
		"amount":  f.Amount.String(),
		"items":   len(items),
	}).Debug("Extracted receipt fields")

	return f, items
}

// applyTemplate runs the bound template's patterns over the text. Fields the
// template captures are locked; heuristics for them are skipped entirely.
func applyTemplate(text string, tmpl *templates.Template) templateFields {
	var td templateFields
	if tmpl == nil {
		return td
	}

	td.vendor = tmpl.Name

	if tmpl.BillID != nil {
		if m := tmpl.BillID.FindStringSubmatch(text); len(m) > 1 {
			td.billID = m[1]
		}
	}
	if tmpl.Date != nil {
		if m := tmpl.Date.FindStringSubmatch(text); len(m) > 1 {
			td.dateRaw = m[1]
		}
	}
	if tmpl.Total != nil {
		if m := tmpl.Total.FindStringSubmatch(text); len(m) > 1 {
			td.amount = models.ParseAmount(m[1])
			td.hasAmount = true
		}
	}
	if tmpl.Tax != nil {
		if m := tmpl.Tax.FindStringSubmatch(text); len(m) > 1 {
			td.tax = models.ParseAmount(m[1])
			td.hasTax = true
		}
	}

	log.WithField("template", tmpl.Name).Debug("Applied vendor template")
	return td
}

// extractBillID returns the template capture, the first acceptable labeled
// identifier from the text, or a synthesized placeholder, in that order.
// The "BILL-" prefix flags synthesized identifiers so downstream duplicate
// logic can tell them apart from genuine ones.
func extractBillID(lines []string, td templateFields) string {
	if td.billID != "" {
		return td.billID
	}

	for _, l := range lines {
		for _, p := range billIDPatterns {
			m := p.FindStringSubmatch(l)
			if len(m) < 2 {
				continue
			}
			candidate := m[1]
			if len(candidate) > 2 && !textutils.ContainsAny(candidate, rejectedIDSubstrings...) {
				return candidate
			}
		}
	}

	return fallbackBillID()
}

func fallbackBillID() string {
	return fmt.Sprintf("BILL-%d", 100000+rand.IntN(900000))
}

// extractVendor takes the first of the initial 3 non-empty lines that is not
// a generic receipt header and is longer than 3 characters. The vendor name
// is usually the first meaningful line printed on a receipt.
func extractVendor(lines []string, td templateFields) string {
	if td.vendor != "" {
		return td.vendor
	}

	for i, l := range lines {
		if i >= 3 {
			break
		}
		if _, generic := genericHeaders[strings.ToLower(strings.TrimSpace(l))]; generic {
			continue
		}
		if len(l) > 3 {
			return l
		}
	}
	return "Unknown Vendor"
}

// extractDate canonicalizes the template capture when present and usable,
// otherwise scans the full text for a generic date shape.
func extractDate(text string, td templateFields) string {
	if td.dateRaw != "" {
		if iso := dateutils.NormalizeTemplateDate(td.dateRaw); iso != "" {
			return iso
		}
	}
	return dateutils.ExtractDate(text)
}

// extractFinancials runs the line-oriented keyword scan for total, tax, and
// subtotal, then applies the post-extraction repairs: impossible tax is
// zeroed, a zero total falls back to the largest figure in the document, and
// a missing subtotal is derived as total minus tax.
func extractFinancials(text string, lines []string, td templateFields) (total, tax, subtotal decimal.Decimal) {
	total = td.amount
	tax = td.tax

	for _, l := range lines {
		if !td.hasAmount && totalLinePattern.MatchString(l) {
			if v, ok := textutils.AmountFromLine(l); ok {
				total = v
			}
		}

		// "tax invoice" header lines qualify for the tax keyword but carry
		// no tax amount. Multiple qualifying lines accumulate, which handles
		// split CGST+SGST lines.
		if !td.hasTax && taxLinePattern.MatchString(l) && !strings.Contains(strings.ToLower(l), "invoice") {
			if v, ok := textutils.AmountFromLine(l); ok {
				tax = tax.Add(v)
			}
		}

		if subtotalLinePattern.MatchString(l) {
			if v, ok := textutils.AmountFromLine(l); ok {
				subtotal = v
			}
		}
	}

	if tax.GreaterThan(total) && total.IsPositive() {
		log.WithFields(logrus.Fields{
			"tax":   tax.String(),
			"total": total.String(),
		}).Debug("Extracted tax exceeds total, zeroing tax")
		tax = decimal.Zero
	}

	if total.IsZero() {
		if v, ok := textutils.MaxDecimalAmount(text); ok {
			total = v
		}
	}

	if subtotal.IsZero() && total.IsPositive() {
		subtotal = total.Sub(tax)
	}

	return total, tax, subtotal
}

// extractLineItems recovers purchased items from lines that are not totals,
// payment lines, or quantity breakdowns. A trailing numeric price preceded by
// a name longer than 2 characters qualifies, and only when 0 < price < total:
// the bounds check rejects quantity codes, phone numbers, and the total line
// itself.
func extractLineItems(lines []string, total decimal.Decimal) []models.LineItem {
	var items []models.LineItem
	for _, l := range lines {
		if quantityPattern.MatchString(l) {
			continue
		}
		if itemSkipPattern.MatchString(l) {
			continue
		}

		m := itemLinePattern.FindStringSubmatch(l)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		price := models.ParseAmount(m[2])
		if price.IsPositive() && price.LessThan(total) && len(name) > 2 {
			items = append(items, models.LineItem{Name: name, Price: price})
		}
	}
	return items
}
