package boxer

import (
	"fmt"
	"strconv"
	"strings"
)

// Header line layout: I1 A12 A21 I5 I4 I5 I4 I4 I3 I4 I3 I4 I4 I4.
const (
	colType      = 1
	colShortID   = colType + 12
	colTitle     = colShortID + 21
	colMat       = colTitle + 5
	colMT        = colMat + 4
	colMat1      = colMT + 5
	colMT1       = colMat1 + 4
	colNVal      = colMT1 + 4
	colValueFmt  = colNVal + 3
	colNCon      = colValueFmt + 4
	colControlFm = colNCon + 3
	colContinue  = colControlFm + 4
	colRows      = colContinue + 4
	colCols      = colRows + 4

	// HeaderWidth is the number of significant columns of a header line.
	HeaderWidth = colCols

	headerLayout = "%1d%-12.12s%-21.21s%5d%4d%5d%4d%4d%3d%4d%3d%4d%4d%4d"
)

// ParseHeader decodes line as a header record. ok is false for anything
// that does not fit the grammar: payload lines, blank lines, comments.
func ParseHeader(line string) (h Header, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < HeaderWidth || !isDigit(line[0]) {
		return Header{}, false
	}
	h.Type = int(line[0] - '0')
	h.ShortID = strings.TrimSpace(line[colType:colShortID])
	h.Title = strings.TrimSpace(line[colShortID:colTitle])

	fields := [...]struct {
		dst        *int
		start, end int
	}{
		{&h.Mat, colTitle, colMat},
		{&h.MT, colMat, colMT},
		{&h.Mat1, colMT, colMat1},
		{&h.MT1, colMat1, colMT1},
		{&h.ValueCount, colMT1, colNVal},
		{&h.ValueFormat, colNVal, colValueFmt},
		{&h.ControlCount, colValueFmt, colNCon},
		{&h.ControlFormat, colNCon, colControlFm},
		{&h.Continuation, colControlFm, colContinue},
		{&h.Rows, colContinue, colRows},
		{&h.Cols, colRows, colCols},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(line[f.start:f.end]))
		if err != nil {
			return Header{}, false
		}
		*f.dst = v
	}

	return h, true
}

// FormatHeader renders h in the fixed header layout (78 columns).
func FormatHeader(h Header) string {
	return fmt.Sprintf(headerLayout,
		h.Type, h.ShortID, h.Title,
		h.Mat, h.MT, h.Mat1, h.MT1,
		h.ValueCount, h.ValueFormat, h.ControlCount, h.ControlFormat,
		h.Continuation, h.Rows, h.Cols)
}

// PayloadLines returns the number of data lines following h:
// ceil(ValueCount/valuesPerLine) + ceil(ControlCount/controlsPerLine),
// using h's own format codes. A zero count never consults its code.
func (h Header) PayloadLines() (int, error) {
	n := 0
	if h.ValueCount > 0 {
		spec, err := ValueFormat(h.ValueFormat)
		if err != nil {
			return 0, err
		}
		n += spec.Lines(h.ValueCount)
	}
	if h.ControlCount > 0 {
		spec, err := ControlFormat(h.ControlFormat)
		if err != nil {
			return 0, err
		}
		n += spec.Lines(h.ControlCount)
	}

	return n, nil
}
