// Package dateutils provides date parsing and canonicalization for receipt text.
// All stored and validated dates use the canonical ISO form YYYY-MM-DD.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	LayoutISO       = "2006-01-02"
	LayoutDaySlash  = "02/01/2006"
	LayoutDayDash   = "02-01-2006"
	LayoutWithMonth = "January 2, 2006"
)

// CommonFormats is a list of standard formats to try when parsing a date
// string of unknown shape, most specific first.
var CommonFormats = []string{
	LayoutISO,
	LayoutDaySlash,
	LayoutDayDash,
	LayoutWithMonth,
	"Jan 2, 2006",
	"2-Jan-2006",
	"2006/01/02",
	"02.01.2006",
}

// genericPatterns are the generic date shapes scanned for in receipt text,
// in priority order. Each pattern pairs with the layout used to parse it.
var genericPatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`), LayoutISO},
	{regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`), LayoutDaySlash},
	{regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`), LayoutDayDash},
}

var isoShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Now is the clock used for the current-date fallback. Tests may replace it.
var Now = time.Now

// ExtractDate scans text for the first recognizable date and returns it in
// canonical YYYY-MM-DD form. Slash and dash shapes are read day-first.
// If no pattern matches anywhere, the current processing date is returned:
// a missing date never fails extraction.
func ExtractDate(text string) string {
	for _, p := range genericPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, err := time.Parse(p.layout, m[1]); err == nil {
			return t.Format(LayoutISO)
		}
	}
	return Now().Format(LayoutISO)
}

// NormalizeTemplateDate canonicalizes a date captured by a vendor template.
// ISO input passes through. Slash-separated input is read month-first
// (US template layouts), expanding 2-digit years and swapping day and month
// when the first group exceeds 12. Other shapes are tried against
// CommonFormats. Returns "" when the value cannot be canonicalized, leaving
// the caller to fall back to a generic text scan.
func NormalizeTemplateDate(raw string) string {
	raw = CleanDateString(raw)
	if raw == "" {
		return ""
	}

	if isoShape.MatchString(raw) {
		return raw[:10]
	}

	if strings.Contains(raw, "/") {
		if iso, err := normalizeSlashDate(raw); err == nil {
			return iso
		}
		return ""
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(LayoutISO)
		}
	}
	return ""
}

// normalizeSlashDate converts MM/DD/YYYY (or MM/DD/YY) into ISO form,
// recovering from ambiguous ordering by swapping when the month group
// exceeds 12.
func normalizeSlashDate(raw string) (string, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("not a 3-part slash date: %s", raw)
	}

	mm, dd, yyyy := parts[0], parts[1], parts[2]
	if len(yyyy) == 2 {
		yyyy = "20" + yyyy
	}

	m, err := strconv.Atoi(mm)
	if err != nil {
		return "", fmt.Errorf("bad month in %s: %w", raw, err)
	}
	d, err := strconv.Atoi(dd)
	if err != nil {
		return "", fmt.Errorf("bad day in %s: %w", raw, err)
	}
	y, err := strconv.Atoi(yyyy)
	if err != nil {
		return "", fmt.Errorf("bad year in %s: %w", raw, err)
	}

	if m > 12 {
		m, d = d, m
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", fmt.Errorf("impossible calendar date: %s", raw)
	}
	return t.Format(LayoutISO), nil
}

// IsCanonical reports whether a date string parses exactly as YYYY-MM-DD.
func IsCanonical(date string) bool {
	_, err := time.Parse(LayoutISO, date)
	return err == nil
}

// CleanDateString trims and collapses whitespace in a raw date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}
