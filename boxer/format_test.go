package boxer_test

import (
	"testing"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookupFormats_ValidPairs checks every supported (value, control) pair.
func TestLookupFormats_ValidPairs(t *testing.T) {
	for v := 7; v <= 13; v++ {
		for c := 1; c <= 6; c++ {
			vs, cs, err := boxer.LookupFormats(v, c)
			require.NoError(t, err, "value=%d control=%d", v, c)
			assert.Positive(t, vs.PerLine)
			assert.Positive(t, cs.PerLine)
			assert.Equal(t, boxer.KindInteger, cs.Kind, "control fields are integers")
			assert.NotEqual(t, boxer.KindInteger, vs.Kind, "value fields are real")
		}
	}
}

// TestLookupFormats_OutOfRange ensures codes outside the table are rejected.
func TestLookupFormats_OutOfRange(t *testing.T) {
	for _, v := range []int{-1, 0, 1, 6, 14, 15} {
		_, _, err := boxer.LookupFormats(v, 1)
		assert.ErrorIs(t, err, boxer.ErrInvalidFormatCode, "value code %d", v)
	}
	for _, c := range []int{0, 7, 12} {
		_, _, err := boxer.LookupFormats(9, c)
		assert.ErrorIs(t, err, boxer.ErrInvalidFormatCode, "control code %d", c)
	}
}

// TestFormatTable_Verbatim pins the legacy capacities and descriptors.
func TestFormatTable_Verbatim(t *testing.T) {
	want := []string{"(80I1)", "(40I2)", "(26I3)", "(20I4)", "(16I5)", "(13I6)"}
	for i, d := range want {
		spec, err := boxer.ControlFormat(i + 1)
		require.NoError(t, err)
		assert.Equal(t, d, spec.Descriptor())
	}
	want = []string{"(11F7.4)", "(10F8.5)", "(8E9.2)", "(8E10.3)", "(7E11.4)", "(6E12.5)", "(5E14.7)"}
	for i, d := range want {
		spec, err := boxer.ValueFormat(i + 7)
		require.NoError(t, err)
		assert.Equal(t, d, spec.Descriptor())
	}
}

// TestFieldSpec_Lines verifies ceil(count/PerLine).
func TestFieldSpec_Lines(t *testing.T) {
	spec, err := boxer.ControlFormat(5) // 16 per line
	require.NoError(t, err)
	assert.Equal(t, 7, spec.Lines(100))
	assert.Equal(t, 1, spec.Lines(16))
	assert.Equal(t, 2, spec.Lines(17))
	assert.Equal(t, 0, spec.Lines(0))
}

// TestFieldSpec_Scaled covers the x10 rule: capacity above seven, values only.
func TestFieldSpec_Scaled(t *testing.T) {
	for code, scaled := range map[int]bool{7: true, 8: true, 9: true, 10: true, 11: false, 12: false, 13: false} {
		spec, err := boxer.ValueFormat(code)
		require.NoError(t, err)
		assert.Equal(t, scaled, spec.Scaled(), "value code %d", code)
	}
	spec, err := boxer.ControlFormat(1)
	require.NoError(t, err)
	assert.False(t, spec.Scaled(), "control fields are never scaled")
}
