package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"ISO date", "Invoice date 2024-01-27 thanks", "2024-01-27"},
		{"Slash date day-first", "Paid on 27/01/2024 by card", "2024-01-27"},
		{"Dash date day-first", "27-01-2024", "2024-01-27"},
		{"ISO wins over slash", "2024-03-01 and also 05/02/2024", "2024-03-01"},
		{"Embedded in receipt line", "Date: 15/03/2024\nTOTAL 10.00", "2024-03-15"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractDate(tc.text))
		})
	}
}

func TestExtractDateFallsBackToToday(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	orig := Now
	Now = func() time.Time { return fixed }
	defer func() { Now = orig }()

	assert.Equal(t, "2024-06-01", ExtractDate("no dates here"))
	// A matching shape that is not a real calendar date also falls through.
	assert.Equal(t, "2024-06-01", ExtractDate("99/99/2024"))
}

func TestNormalizeTemplateDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"ISO passthrough", "2024-03-15", "2024-03-15"},
		{"US slash month-first", "03/15/2024", "2024-03-15"},
		{"Swap when month exceeds 12", "15/03/2024", "2024-03-15"},
		{"Two-digit year expanded", "03/15/24", "2024-03-15"},
		{"Month name", "March 5, 2024", "2024-03-05"},
		{"Abbreviated month name", "Mar 5, 2024", "2024-03-05"},
		{"Whitespace cleaned", "  03/15/2024 ", "2024-03-15"},
		{"Garbage yields empty", "not a date", ""},
		{"Impossible calendar date yields empty", "13/33/2024", ""},
		{"Empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTemplateDate(tc.raw))
		})
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("2024-03-15"))
	assert.False(t, IsCanonical("15/03/2024"))
	assert.False(t, IsCanonical("2024-03-15 extra"))
	assert.False(t, IsCanonical(""))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "March 5, 2024", CleanDateString("  March   5,  2024  "))
}
