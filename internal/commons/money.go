package commons

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with two decimals and thousands grouping.
func FormatAmount(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}
