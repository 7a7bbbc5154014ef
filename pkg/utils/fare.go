package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CurrencySymbol prefixes every formatted fare. Fares only need to be
// currency-tagged and numerically parseable; comparisons always go through
// ParseFare.
const CurrencySymbol = "₹"

// FormatFare renders a whole-unit fare amount as a display string with
// Indian digit grouping (₹5,000 and ₹1,00,000).
func FormatFare(amount int) string {
	return CurrencySymbol + groupIndian(strconv.Itoa(amount))
}

// groupIndian inserts en-IN thousand separators: the last three digits form
// one group, the remainder pairs off.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	groups := []string{tail}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",")
}

// ParseFare extracts the numeric amount from a fare string by stripping all
// characters except digits and the decimal point. Unparseable strings yield 0.
func ParseFare(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatDuration renders a duration in seconds as "N min", or "Xh Ym" for
// trips strictly longer than an hour.
func FormatDuration(secs float64) string {
	mins := int(math.Round(secs / 60))
	if mins > 60 {
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
	return fmt.Sprintf("%d min", mins)
}
