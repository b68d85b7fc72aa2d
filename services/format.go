// Package services provides formatting and export functions for the bill of
// quantities.
package services

import (
	"github.com/dustin/go-humanize"
)

// FormatPrice formats a whole-dollar amount with thousands separators,
// e.g. 8500 -> "$8,500".
func FormatPrice(amount int) string {
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}
