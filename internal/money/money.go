// Package money parses and formats amounts written the Brazilian way ("1.234,56").
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// Parse reads an amount. A comma marks Brazilian notation: dots are thousands
// separators and the comma is the decimal point. Without a comma the text is
// read as a plain decimal, which is how spreadsheet cells arrive. Blank is zero.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// IsPercent reports whether a cell entry is a percentage token like "5%".
func IsPercent(raw string) bool {
	return strings.HasSuffix(strings.TrimSpace(raw), "%")
}

// ParsePercent converts "5%" or "2,5%" into a fraction (0.05, 0.025).
func ParsePercent(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasSuffix(s, "%") {
		return decimal.Zero, fmt.Errorf("parsing percentage %q: missing %%", raw)
	}
	d, err := Parse(strings.TrimSuffix(s, "%"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing percentage %q: %w", raw, err)
	}
	return d.Div(hundred), nil
}

// Format renders an amount with two decimals in pt-BR notation.
func Format(d decimal.Decimal) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// FormatPercent renders a percentage with one decimal, e.g. "12,5%".
func FormatPercent(d decimal.Decimal) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(1))) + "%"
}
