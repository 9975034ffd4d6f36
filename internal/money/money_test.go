package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"-30", "-30"},
		{"R$ 10,5", "10.5"},
		{"", "0"},
		{"  ", "0"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "Parse(%q) = %s", tt.in, got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("abc")
	assert.Error(t, err)
}

func TestParsePercent(t *testing.T) {
	assert.True(t, IsPercent(" 5% "))
	assert.False(t, IsPercent("5"))

	got, err := ParsePercent("10%")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.1")))

	got, err = ParsePercent("2,5%")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.025")))

	_, err = ParsePercent("x%")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.234,50", Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0,00", Format(decimal.Zero))
	assert.Equal(t, "12,5%", FormatPercent(decimal.RequireFromString("12.5")))
}
