package billing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Documents render amounts with en-IN digit grouping (1,23,456.00),
// matching the locale the generator has always printed in regardless of
// the selected currency symbol.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders symbol+amount with thousands separators and
// exactly two decimal places. Non-finite amounts render as zero.
func FormatCurrency(amount float64, symbol string) string {
	amount = num(amount)
	return symbol + printer.Sprintf("%v",
		number.Decimal(amount, number.Scale(2), number.MinFractionDigits(2)))
}
