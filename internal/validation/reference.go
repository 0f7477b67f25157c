package validation

import (
	"fmt"
	"strings"
)

// MaxReferenceLength is the longest reference a payer may enter.
const MaxReferenceLength = 255

// invalidReferenceChars are rejected anywhere in a reference.
const invalidReferenceChars = "<>;:`()\"'=|,~[]"

// ValidateReference checks a payer-entered reference against the product's
// reference label (used to phrase messages) and a maximum length.
func ValidateReference(value, label string, maxLength int) Result {
	rules := []rule{
		{
			name: "empty",
			check: func(v string) string {
				if strings.TrimSpace(v) == "" {
					return fmt.Sprintf("Enter your %s", label)
				}
				return ""
			},
		},
		{
			name: "too long",
			check: func(v string) string {
				if len(v) > maxLength {
					return fmt.Sprintf("%s must be %d characters or fewer", label, maxLength)
				}
				return ""
			},
		},
		{
			name: "invalid characters",
			check: func(v string) string {
				if strings.ContainsAny(v, invalidReferenceChars) {
					return fmt.Sprintf("%s can't contain any of the following characters < > ; : ` ( ) \" ' = | , ~ [ ]", label)
				}
				return ""
			},
		},
	}
	return apply(rules, value)
}

// IsPotentialPAN reports whether text numerically resembles a payment card
// number: after stripping spaces and hyphens it is 12 to 19 digits and
// passes the Luhn checksum. A potential PAN is not a validation failure; it
// routes the payer to an explicit confirmation step instead.
func IsPotentialPAN(text string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(text)
	if len(stripped) < 12 || len(stripped) > 19 {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return luhnValid(stripped)
}

// luhnValid applies the Luhn checksum to an all-digit string: every second
// digit from the rightmost is doubled, products over 9 contribute their
// digit sum, and the total must be divisible by 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
