// Package textutils provides the low-level text scanning helpers used by
// field extraction: numeric group scanning, decimal candidate selection, and
// line splitting.
package textutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

var numberPattern = regexp.MustCompile(`\d+[.,]?\d*`)

// Lines splits raw OCR text into trimmed, non-empty lines.
func Lines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// NumericGroups returns every numeric substring in s, left to right.
// A group may carry a single embedded decimal separator ("." or ",").
func NumericGroups(s string) []string {
	return numberPattern.FindAllString(s, -1)
}

// HasDecimalSeparator reports whether the numeric group carries a decimal
// separator of either kind.
func HasDecimalSeparator(n string) bool {
	return strings.Contains(n, ".") || strings.Contains(n, ",")
}

// AmountFromGroups picks the monetary amount from the numeric groups of one
// line. Preference order:
//
//  1. the last group carrying a decimal separator (rightmost numbers are the
//     amount; leftmost are usually item counts or codes),
//  2. with no decimal-bearing group but at least two groups where the last is
//     exactly 2 digits, the reassembly "{second-to-last}.{last}" (recovers
//     amounts where OCR split the decimal point from the digits),
//  3. otherwise the last group read as an integer amount.
//
// Returns zero and false when the line holds no numeric group at all.
func AmountFromGroups(groups []string) (decimal.Decimal, bool) {
	if len(groups) == 0 {
		return decimal.Zero, false
	}

	var dotted []string
	for _, n := range groups {
		if HasDecimalSeparator(n) {
			dotted = append(dotted, n)
		}
	}
	if len(dotted) > 0 {
		return models.ParseAmount(dotted[len(dotted)-1]), true
	}

	if len(groups) >= 2 && len(groups[len(groups)-1]) == 2 {
		joined := groups[len(groups)-2] + "." + groups[len(groups)-1]
		return models.ParseAmount(joined), true
	}

	return models.ParseAmount(groups[len(groups)-1]), true
}

// AmountFromLine is AmountFromGroups applied to the numeric groups of a line.
func AmountFromLine(line string) (decimal.Decimal, bool) {
	return AmountFromGroups(NumericGroups(line))
}

// MaxDecimalAmount scans an entire document for the largest monetary figure.
// Numbers with a "." decimal point are preferred; if none exist, all numeric
// groups compete. Used as the last-resort total heuristic: the grand total is
// almost always the largest figure printed. Returns zero and false for text
// without any numeric group.
func MaxDecimalAmount(text string) (decimal.Decimal, bool) {
	groups := NumericGroups(text)
	if len(groups) == 0 {
		return decimal.Zero, false
	}

	candidates := groups
	var dotted []string
	for _, n := range groups {
		if strings.Contains(n, ".") {
			dotted = append(dotted, n)
		}
	}
	if len(dotted) > 0 {
		candidates = dotted
	}

	max := models.ParseAmount(candidates[0])
	for _, n := range candidates[1:] {
		if v := models.ParseAmount(n); v.GreaterThan(max) {
			max = v
		}
	}
	return max, true
}

// ContainsAny reports whether s contains any of the given substrings,
// case-insensitively.
func ContainsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
