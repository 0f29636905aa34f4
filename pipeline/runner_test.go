package pipeline_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/dataset"
	"github.com/sskutnik/deBOXER/pipeline"
	"github.com/sskutnik/deBOXER/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recorder logs sink calls as short strings.
type recorder struct {
	events []string
	fail   error
}

func (r *recorder) BeginMaterial(mat int, bounds []float64) error {
	r.events = append(r.events, fmt.Sprintf("material %d %d", mat, len(bounds)))
	return r.fail
}

func (r *recorder) WriteReaction(req request.Request, rx *boxer.Reaction) error {
	rows, cols := rx.Matrix.Shape()
	r.events = append(r.events, fmt.Sprintf("reaction %d %dx%d", rx.Key.MT, rows, cols))
	return r.fail
}

func (r *recorder) Listing(h boxer.Header) error {
	r.events = append(r.events, fmt.Sprintf("listing type %d", h.Type))
	return r.fail
}

type record struct {
	h        boxer.Header
	values   []float64
	controls []int
}

func tape(t *testing.T, recs ...record) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	enc := boxer.NewEncoder(&buf)
	for _, r := range recs {
		require.NoError(t, enc.WriteRecord(r.h, r.values, r.controls))
	}
	require.NoError(t, enc.WriteSentinel())

	return bytes.NewReader(buf.Bytes())
}

func bounds(vs ...float64) record {
	return record{h: boxer.Header{Type: boxer.TypeGroupBounds, ValueFormat: 11}, values: vs}
}

func reaction(mat, mt int, controls ...int) record {
	return record{
		h:        boxer.Header{Type: 1, Mat: mat, MT: mt, ValueFormat: 13, ControlFormat: 2, Rows: 2, Cols: 0},
		values:   []float64{1, 0.5, 2},
		controls: controls,
	}
}

func parse(t *testing.T, src string) []request.Request {
	t.Helper()
	reqs, err := request.Parse(strings.NewReader(src))
	require.NoError(t, err)

	return reqs
}

func TestRunner_Run(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := &recorder{}
	dec := boxer.NewDecoder(tape(t, bounds(1e-5, 1, 2e7), reaction(125, 2, -1, -1, -1), reaction(125, 4, -3)))
	run := pipeline.NewRunner(dec, pipeline.WithLogger(zap.New(core)), pipeline.WithSink(rec))

	sum, err := run.Run(parse(t, "1 125 2\n-1 0 0\n1 125 51\n1 125 4\n0 125 0\n"))
	require.NoError(t, err)

	assert.Equal(t, pipeline.Summary{
		Materials: 1, Decoded: 2, Listed: 1,
		Missing: []boxer.ReactionKey{{Type: 1, Mat: 125, MT: 51}},
	}, sum)
	assert.Equal(t, []string{
		"material 125 3",
		"reaction 2 2x2",
		"reaction 4 2x2",
		"listing type 0",
	}, rec.events)

	warns := logs.FilterMessage("reaction not found, skipping").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zap.WarnLevel, warns[0].Level)
	assert.Equal(t, 1, logs.FilterMessage("run complete").Len())
}

func TestRunner_MissingBoundsIsFatal(t *testing.T) {
	rec := &recorder{}
	dec := boxer.NewDecoder(tape(t, reaction(125, 2, -1, -1, -1)))

	_, err := pipeline.NewRunner(dec, pipeline.WithSink(rec)).Run(parse(t, "1 125 2\n"))
	require.ErrorIs(t, err, boxer.ErrRequiredRecordMissing)
	assert.Empty(t, rec.events)
}

func TestRunner_FatalDecodeStops(t *testing.T) {
	rec := &recorder{}
	dec := boxer.NewDecoder(tape(t, bounds(1, 2), reaction(9, 1, -1, -1, -1), reaction(9, 2, -1, 0, -1), reaction(9, 3, -3)))

	sum, err := pipeline.NewRunner(dec, pipeline.WithSink(rec)).Run(parse(t, "1 9 1\n1 9 2\n1 9 3\n"))
	require.ErrorIs(t, err, boxer.ErrInvalidControlCode)
	assert.True(t, boxer.IsFatal(err))
	assert.Equal(t, 1, sum.Decoded)
	assert.Equal(t, []string{"material 9 2", "reaction 1 2x2"}, rec.events)
}

func TestRunner_SinkErrorStops(t *testing.T) {
	disk := errors.New("disk full")
	rec := &recorder{fail: disk}
	dec := boxer.NewDecoder(tape(t, bounds(1, 2), reaction(9, 1, -3)))

	_, err := pipeline.NewRunner(dec, pipeline.WithSink(rec)).Run(parse(t, "1 9 1\n"))
	assert.ErrorIs(t, err, disk)
}

func TestRunner_MultipleSinks(t *testing.T) {
	var out bytes.Buffer
	text := dataset.NewWriter(&out)
	rec := &recorder{}
	dec := boxer.NewDecoder(tape(t, bounds(1, 2), reaction(9, 1, -1, -1, -1)))

	_, err := pipeline.NewRunner(dec, pipeline.WithSink(text), pipeline.WithSink(rec)).Run(parse(t, "1 9 1\n"))
	require.NoError(t, err)
	require.NoError(t, text.Flush())

	assert.Equal(t,
		"MAT=9 NBOUNDS=2\n"+
			" 1.0000e+00  2.0000e+00 \n"+
			"1 9 1\n"+
			" 1.0000e+00  5.0000e-01 \n"+
			" 5.0000e-01  2.0000e+00 \n"+
			"     9     1     1\n",
		out.String())
	assert.Len(t, rec.events, 2)
}

func TestRunner_NoSinks(t *testing.T) {
	dec := boxer.NewDecoder(tape(t, bounds(1, 2), reaction(9, 1, -3)))
	sum, err := pipeline.NewRunner(dec).Run(parse(t, "1 9 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Decoded)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
	assert.Panics(t, func() { pipeline.WithSink(nil) })
}
