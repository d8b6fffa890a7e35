package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrencySymbol is the symbol used when the caller has no
// currency preference.
const DefaultCurrencySymbol = "₹"

// The Indian numbering convention groups by two after the first three
// digits, e.g. 1,23,456. The en-IN locale data encodes that rule.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount with Indian digit grouping and the
// currency symbol prepended.
//
// Integral amounts are rendered without fraction digits, other amounts
// with up to two.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	value, _ := amount.Float64()
	return symbol + printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
}
