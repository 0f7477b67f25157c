package validation

import (
	"fmt"

	"productsui/internal/common/currency"
)

// MaxAmountPounds is the largest amount a payer may enter.
const MaxAmountPounds = 100_000

// ValidateAmount checks a payer-entered amount string against a maximum in
// whole pounds. Zero amounts are rejected unless allowZero is set.
func ValidateAmount(value string, maxPounds int64, allowZero bool) Result {
	rules := []rule{
		{
			name: "shape",
			check: func(v string) string {
				if !currency.IsWellFormed(v) {
					return "Enter an amount in pounds and pence using digits and a decimal point. For example “10.50”"
				}
				return ""
			},
		},
		{
			name: "zero",
			check: func(v string) string {
				pence, err := currency.PoundsToPence(v)
				if err == nil && pence == 0 && !allowZero {
					return "Amount must be £0.01 or more"
				}
				return ""
			},
		},
		{
			name: "maximum",
			check: func(v string) string {
				if exceedsMaxPounds(v, maxPounds) {
					return fmt.Sprintf("Choose an amount under %s", currency.FormatPounds(maxPounds))
				}
				return ""
			},
		},
	}
	return apply(rules, value)
}

// exceedsMaxPounds compares the pounds part of a well-formed amount string
// against the maximum. The comparison is done on digit strings so absurdly
// long inputs never overflow int64.
func exceedsMaxPounds(value string, maxPounds int64) bool {
	pounds, pence := value, ""
	for i := 0; i < len(value); i++ {
		if value[i] == '.' {
			pounds, pence = value[:i], value[i+1:]
			break
		}
	}
	for len(pounds) > 1 && pounds[0] == '0' {
		pounds = pounds[1:]
	}
	maxStr := fmt.Sprintf("%d", maxPounds)
	if len(pounds) != len(maxStr) {
		return len(pounds) > len(maxStr)
	}
	if pounds != maxStr {
		return pounds > maxStr
	}
	return pence != "" && pence != "00"
}
