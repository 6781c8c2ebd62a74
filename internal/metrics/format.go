package metrics

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatCompact renders n with a K, M or B suffix and one decimal. Values
// below 1000 are rounded and digit-grouped.
func FormatCompact(n float64) string {
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.1fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.1fK", n/1e3)
	}
	return FormatGrouped(n)
}

// FormatGrouped rounds n to an integer and groups digits the en-US way,
// e.g. 915400 -> "915,400".
func FormatGrouped(n float64) string {
	return enUS.Sprintf("%d", int64(math.Round(n)))
}

