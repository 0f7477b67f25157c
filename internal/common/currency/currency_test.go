package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoundsToPence(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"131.20", 13120},
		{"131", 13100},
		{"0.01", 1},
		{"0.00", 0},
		{"9.95", 995},
		{"100000.00", 10000000},
	}
	for _, tt := range tests {
		got, err := PoundsToPence(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPoundsToPenceRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "1.2", "1.234", "1,000", "ten", "-5", "5.", ".50", "£5"} {
		_, err := PoundsToPence(in)
		assert.Error(t, err, in)
	}
}

func TestPenceToPounds(t *testing.T) {
	assert.Equal(t, "5.10", PenceToPounds(510))
	assert.Equal(t, "0.01", PenceToPounds(1))
	assert.Equal(t, "0.00", PenceToPounds(0))
	assert.Equal(t, "131.20", PenceToPounds(13120))
	assert.Equal(t, "1000.00", PenceToPounds(100000))
}

// Round-trip: converting pence to a display string and back is lossless.
func TestRoundTrip(t *testing.T) {
	for p := int64(0); p < 20000; p++ {
		got, err := PoundsToPence(PenceToPounds(p))
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	for _, p := range []int64{99999, 1000000, 9999999, 10000001, 99999999} {
		got, err := PoundsToPence(PenceToPounds(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestFormatPounds(t *testing.T) {
	assert.Equal(t, "£100,000", FormatPounds(100000))
	assert.Equal(t, "£100", FormatPounds(100))
	assert.Equal(t, "£10,000,000", FormatPounds(10000000))
}

func TestFormatPence(t *testing.T) {
	assert.Equal(t, "£131.20", FormatPence(13120))
	assert.Equal(t, "£1,000.00", FormatPence(100000))
	assert.Equal(t, "£0.01", FormatPence(1))
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, IsWellFormed("10"))
	assert.True(t, IsWellFormed("10.50"))
	assert.False(t, IsWellFormed("10.5"))
	assert.False(t, IsWellFormed("10,000"))
	assert.False(t, IsWellFormed(""))
}
