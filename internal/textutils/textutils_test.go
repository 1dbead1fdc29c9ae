package textutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	text := "Store Name\n\n  Bread 2.50  \n\nTOTAL 2.50\n"
	assert.Equal(t, []string{"Store Name", "Bread 2.50", "TOTAL 2.50"}, Lines(text))
	assert.Nil(t, Lines("\n  \n"))
}

func TestNumericGroups(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"simple decimal", "TOTAL 45.67", []string{"45.67"}},
		{"comma decimal", "TOTAL 45,67", []string{"45,67"}},
		{"multiple groups", "TAX 1 $3.25", []string{"1", "3.25"}},
		{"no numbers", "CASH RECEIPT", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NumericGroups(tc.line))
		})
	}
}

func TestAmountFromLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{"last decimal-bearing number wins", "2 ITEMS 45.67", "45.67", true},
		{"comma separator accepted", "TOTAL 1,234", "1234", true},
		{"split decimal reassembled", "TOTAL 45 67", "45.67", true},
		{"integer fallback", "TOTAL 450", "450", true},
		{"three groups last two digits", "TOTAL 2 45 67", "45.67", true},
		{"no numbers", "TOTAL DUE", "0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AmountFromLine(tc.line)
			assert.Equal(t, tc.ok, ok)
			expected, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			assert.True(t, got.Equal(expected), "got %s, want %s", got, expected)
		})
	}
}

func TestMaxDecimalAmount(t *testing.T) {
	t.Run("prefers dotted numbers", func(t *testing.T) {
		got, ok := MaxDecimalAmount("code 99999\nitem 12.50\nitem 45.67")
		assert.True(t, ok)
		assert.True(t, got.Equal(decimal.NewFromFloat(45.67)), "got %s", got)
	})

	t.Run("falls back to all numbers", func(t *testing.T) {
		got, ok := MaxDecimalAmount("items 3 total 450")
		assert.True(t, ok)
		assert.True(t, got.Equal(decimal.NewFromInt(450)))
	})

	t.Run("no numbers", func(t *testing.T) {
		_, ok := MaxDecimalAmount("nothing numeric")
		assert.False(t, ok)
	})
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("GrandTotal123", "total"))
	assert.False(t, ContainsAny("REF-881", "total", "tax", "date"))
}
