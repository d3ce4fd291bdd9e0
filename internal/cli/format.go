// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the currency symbol and two decimal
// places. e.g., 1234.5 -> "$1,234.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	neg := amount.IsNegative()
	abs := amount.Abs()

	s := abs.StringFixed(2)
	// Insert thousands separators into the integer part.
	dot := len(s) - 3
	intPart, fracPart := s[:dot], s[dot:]
	withCommas := ""
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			withCommas += ","
		}
		withCommas += string(r)
	}

	if neg {
		return "-" + currency + withCommas + fracPart
	}
	return currency + withCommas + fracPart
}

// FormatDate renders a timestamp as a short calendar date.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}

// FormatDueIn phrases a whole-day offset relative to a due date.
// e.g., 3 -> "in 3d", 0 -> "today", -2 -> "2d overdue"
func FormatDueIn(days int) string {
	switch {
	case days > 1:
		return fmt.Sprintf("in %dd", days)
	case days == 1:
		return "tomorrow"
	case days == 0:
		return "today"
	case days == -1:
		return "1d overdue"
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDuration formats estimated seconds into a human-readable duration.
// e.g., 3725 -> "1h 2m", 125 -> "2m", 45 -> "45s"
func FormatDuration(seconds float64) string {
	secs := int64(seconds)
	if secs <= 0 {
		return "0s"
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%ds", secs)
}

// ShortID returns the first id segment, enough to reference a record from
// the command line.
func ShortID(id fmt.Stringer) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
