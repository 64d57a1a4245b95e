// Package format provides string formatting helpers for monetary values.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + groupDigits(math.Abs(amount))
	}
	return "$" + groupDigits(amount)
}

// Percent renders a percentage rate with two decimals (e.g., "2.50%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

func groupDigits(value float64) string {
	whole, frac, found := strings.Cut(fmt.Sprintf("%.2f", value), ".")
	if !found {
		frac = "00"
	}

	if len(whole) <= 3 {
		return whole + "." + frac
	}

	groups := make([]string, 0, len(whole)/3+1)
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)
	return strings.Join(groups, ",") + "." + frac
}
