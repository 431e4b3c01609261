package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingMagnitude = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)`)

// ParseLeadingMagnitude extracts the leading numeric magnitude from a
// free-text quantity string: "150g" → 150, "2.5 kg" → 2.5. The parse is
// total — malformed, non-numeric or empty input degrades to zero rather
// than failing, because the text is free-form at the recipe-authoring layer.
func ParseLeadingMagnitude(text string) decimal.Decimal {
	m := leadingMagnitude.FindString(strings.TrimSpace(text))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}
