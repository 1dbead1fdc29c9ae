package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain decimal", "45.67", "45.67"},
		{"thousands separator", "1,234.56", "1234.56"},
		{"integer", "120", "120"},
		{"surrounding whitespace", "  9.99 ", "9.99"},
		{"malformed", "abc", "0"},
		{"empty", "", "0"},
		{"currency symbol is not accepted", "$4.50", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAmount(tc.raw).String())
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42.424", "42.42"},
		{"42.425", "42.43"},
		{"42.426", "42.43"},
		{"42.4", "42.40"},
		{"0", "0.00"},
	}

	for _, tc := range tests {
		d, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, Round2(d).StringFixed(2))
	}
}

func TestNullAmount(t *testing.T) {
	n := NullAmount(decimal.NewFromFloat(3.25))
	assert.True(t, n.Valid)
	assert.Equal(t, "3.25", n.Decimal.StringFixed(2))
}
