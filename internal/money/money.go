// Package money handles amount parsing and display formatting. Amounts
// are carried through the rest of the application as int64 cents; this is
// the only place that converts to and from user-facing strings.
package money

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidAmount is returned for amounts that are not positive decimals.
var ErrInvalidAmount = errors.New("money: invalid amount")

var printer = message.NewPrinter(language.AmericanEnglish)

// ParseAmount converts a user-entered decimal string into cents. Both dot
// and comma decimal separators are accepted; anything non-positive is
// rejected, since amount positivity is enforced at the input boundary
// rather than on the data model.
//
// Examples: "12.34" -> 1234, "12,34" -> 1234, "0" -> ErrInvalidAmount.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	// Normalize decimal comma to dot.
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}

// FormatCents renders cents as a fixed en-US USD string: 123450 -> "$1,234.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return sign + printer.Sprintf("$%.2f", float64(cents)/100.0)
}

// FormatDate renders a timestamp in the fixed dd-MM-yyyy display pattern.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}
