package boxer_test

import (
	"bytes"
	"testing"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/stretchr/testify/require"
)

// record is one header plus its payload, written through the Encoder.
type record struct {
	h        boxer.Header
	values   []float64
	controls []int
}

// writeTape encodes recs followed by the sentinel and returns a seekable reader.
func writeTape(t *testing.T, recs ...record) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	enc := boxer.NewEncoder(&buf)
	for _, r := range recs {
		require.NoError(t, enc.WriteRecord(r.h, r.values, r.controls))
	}
	require.NoError(t, enc.WriteSentinel())

	return bytes.NewReader(buf.Bytes())
}

// boundsRecord is a type 0 record with n energy boundaries in E11.4.
func boundsRecord(bounds ...float64) record {
	return record{
		h:      boxer.Header{Type: boxer.TypeGroupBounds, ShortID: "GROUPS", Title: "energy bounds", ValueFormat: 11},
		values: bounds,
	}
}

// runs returns n copies of c.
func runs(n, c int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c
	}

	return out
}
