package finance

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a pt-BR formatted amount ("1.234,56") into a
// decimal. Empty input parses as zero, the way the forms treat a blank
// amount field.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid amount %q", s)
	}
	return d, nil
}

// FormatAmount renders a decimal in pt-BR form with two decimal places
// and dot thousand separators.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
