package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInch(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{"17", 17.0},
		{"17.25", 17.25},
		{"17 1/4", 17.25},
		{"17 2/4", 17.5},
		{"17 3/4", 17.75},
		{"1/4", 0.25},
		{"17¼", 17.25},
		{"17 ¼", 17.25},
		{"17-1/4", 17.25},
		{"17 + 1/4", 17.25},
		{"  17 1/2 ", 17.5},
	}

	for _, tc := range cases {
		got, err := ParseInch(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.InDelta(t, tc.expected, got, 1e-9, "input %q", tc.input)
	}
}

func TestParseInch_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "17 1/0", "1/0", "가슴"} {
		_, err := ParseInch(input)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", input)
	}
}

func TestInchToCm(t *testing.T) {
	assert.InDelta(t, 43.2, InchToCm(17), 1e-9)      // 17 * 2.54 = 43.18 -> 43.2
	assert.InDelta(t, 96.5, InchToCm(38), 1e-9)      // 38 * 2.54 = 96.52 -> 96.5
	assert.InDelta(t, 43.8, InchToCm(17.25), 1e-9)   // 43.815 -> 43.8
	assert.InDelta(t, 0.0, InchToCm(0), 1e-9)
}
