package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productsui/internal/common/currency"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantOK  bool
		wantMsg string
	}{
		{"valid", "20.00", true, ""},
		{"valid no pence", "20", true, ""},
		{"empty", "", false, "Enter an amount in pounds and pence using digits and a decimal point. For example “10.50”"},
		{"one decimal digit", "9.5", false, "Enter an amount in pounds and pence using digits and a decimal point. For example “10.50”"},
		{"thousands separator", "1,000", false, "Enter an amount in pounds and pence using digits and a decimal point. For example “10.50”"},
		{"zero", "0.00", false, "Amount must be £0.01 or more"},
		{"over maximum", "100000000.50", false, "Choose an amount under £100,000"},
		{"just over maximum", "100000.01", false, "Choose an amount under £100,000"},
		{"at maximum", "100000.00", true, ""},
		{"leading zeros under max", "0099999.99", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateAmount(tt.value, MaxAmountPounds, false)
			assert.Equal(t, tt.wantOK, res.Valid)
			assert.Equal(t, tt.wantMsg, res.Message)
		})
	}
}

func TestValidateAmountAllowZero(t *testing.T) {
	res := ValidateAmount("0.00", MaxAmountPounds, true)
	assert.True(t, res.Valid)
}

// A validated amount normalizes exactly, with no floating-point drift.
func TestValidatedAmountNormalizesExactly(t *testing.T) {
	res := ValidateAmount("9.95", MaxAmountPounds, false)
	require.True(t, res.Valid)

	pence, err := currency.PoundsToPence("9.95")
	require.NoError(t, err)
	assert.Equal(t, int64(995), pence)
}
