// Package export renders campaign rows as CSV and PDF documents.
package export

import (
	"errors"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"campaign-dash/internal/core/domain"
)

// ErrEmptyExport is returned when asked to export no rows.
var ErrEmptyExport = errors.New("nothing to export")

// FormatCurrency renders a revenue amount as "$15,420", keeping up to two
// fraction digits when present.
func FormatCurrency(v float64) string {
	p := message.NewPrinter(language.English)
	return "$" + p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatPercent renders a percentage such as 3.2 as "3.2%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatStatus capitalises a status for display.
func FormatStatus(s domain.Status) string {
	return cases.Title(language.English).String(string(s))
}
