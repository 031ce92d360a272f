package shared

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an integer amount of minor currency units as a
// display string, e.g. 20348 -> "$203.48". The split into major and
// minor units stays in integer arithmetic so cent-denominated values
// never drift.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + moneyPrinter.Sprintf("$%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}
