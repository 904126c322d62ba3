package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount the way the dashboard displays money:
// rupee symbol, Indian digit grouping, up to two fraction digits with
// none shown for whole amounts.
func FormatINR(amount float64) string {
	fractionDigits := 2
	if amount == math.Trunc(amount) {
		fractionDigits = 0
	}

	return inrPrinter.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(fractionDigits),
		number.MaxFractionDigits(fractionDigits),
	))
}
