package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a Brazilian-formatted monetary string ("1.234,56")
// into a decimal. Dots are thousands separators and the comma is the decimal
// separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// ParseAmountOrZero is ParseAmount with a zero fallback for malformed or
// empty input.
func ParseAmountOrZero(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountGroup parses a set of related monetary fields. A failure on any
// field zeroes the whole group: a balancete row with one unreadable amount is
// stored with all four amounts at zero rather than rejected.
func ParseAmountGroup(fields []string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(fields))
	for i, f := range fields {
		d, err := ParseAmount(f)
		if err != nil {
			for j := range out {
				out[j] = decimal.Zero
			}
			return out
		}
		out[i] = d
	}
	return out
}
