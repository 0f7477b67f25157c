// Package currency converts between pounds-and-pence display strings and
// integer pence. All arithmetic is integer-only so values like "9.95" never
// pick up binary floating-point error.
package currency

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amountShape matches digits with an optional exactly-two-digit fraction.
var amountShape = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]{2}))?$`)

// IsWellFormed reports whether text has the pounds-and-pence shape accepted
// by PoundsToPence (e.g. "131", "131.20"). Thousands separators are not
// accepted.
func IsWellFormed(text string) bool {
	return amountShape.MatchString(text)
}

// PoundsToPence parses a pounds-and-pence string into integer pence.
// "131.20" becomes 13120 and "131" becomes 13100. Callers are expected to
// validate input first; a malformed string returns an error.
func PoundsToPence(text string) (int64, error) {
	m := amountShape.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("malformed amount %q", text)
	}
	pounds, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing pounds of %q: %w", text, err)
	}
	var pence int64
	if m[2] != "" {
		pence, err = strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing pence of %q: %w", text, err)
		}
	}
	return pounds*100 + pence, nil
}

// PenceToPounds formats integer pence as a pounds-and-pence string with
// exactly two decimal places. 510 becomes "5.10" and 1 becomes "0.01".
func PenceToPounds(pence int64) string {
	return fmt.Sprintf("%d.%02d", pence/100, pence%100)
}

// britishPrinter renders numbers with en-GB thousands separators.
var britishPrinter = message.NewPrinter(language.BritishEnglish)

// FormatPounds renders a whole-pound value for display in messages,
// e.g. 100000 becomes "£100,000".
func FormatPounds(pounds int64) string {
	return "£" + britishPrinter.Sprintf("%d", pounds)
}

// FormatPence renders integer pence for display, e.g. 13120 becomes
// "£131.20".
func FormatPence(pence int64) string {
	whole := britishPrinter.Sprintf("%d", pence/100)
	return fmt.Sprintf("£%s.%02d", whole, pence%100)
}
