package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatThousands renders an integer with comma separators.
// Examples: 500 -> "500", 1234567 -> "1,234,567"
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatMoney renders a monetary amount with a currency prefix and comma
// separators, rounded to whole units. Examples: 1234567.89 -> "$1,234,568"
func FormatMoney(v float64) string {
	return "$" + FormatThousands(int64(math.Round(v)))
}

// FormatMoneyCompact renders large amounts with a K/M suffix for card
// display. Examples: 950 -> "$950", 1500000 -> "$1.5M"
func FormatMoneyCompact(v float64) string {
	switch {
	case math.Abs(v) >= 1000000:
		return fmt.Sprintf("$%.1fM", v/1000000)
	case math.Abs(v) >= 1000:
		return fmt.Sprintf("$%.1fK", v/1000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatPercent renders a percentage without a sign and without trailing
// zeros. Examples: 5 -> "5%", 12.4 -> "12.4%"
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatScore renders a risk score with one decimal place.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
