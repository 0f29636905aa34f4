// Package dataset renders decoded reactions as the fixed-width text dataset
// consumed by downstream covariance tools.
//
// Layout per material:
//
//	MAT=<mat> NBOUNDS=<n>
//	<bounds, six %11.4e fields per line>
//	<request line>
//	<matrix rows, one %11.4e field per cell>
//	<mat mt type as 3I6>
//	...
//
// Listing requests produce one 5I6 line: type, mat (1 when 0), mt, mat1, mt1.
package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/request"
)

const (
	cellFormat     = "%11.4e "
	boundsPerLine  = 6
	keyLineFormat  = "%6d%6d%6d\n"
	listingFormat  = "%6d%6d%6d%6d%6d\n"
	materialFormat = "MAT=%d NBOUNDS=%d\n"
)

// Writer writes the text dataset. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer buffering output to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

// BeginMaterial writes the material line and its energy-group bounds.
func (w *Writer) BeginMaterial(mat int, bounds []float64) error {
	fmt.Fprintf(w.w, materialFormat, mat, len(bounds))
	for start := 0; start < len(bounds); start += boundsPerLine {
		w.cells(bounds[start:min(start+boundsPerLine, len(bounds))])
	}

	return w.err("material", mat)
}

// WriteReaction echoes the request line, then the matrix rows and key line.
func (w *Writer) WriteReaction(req request.Request, r *boxer.Reaction) error {
	fmt.Fprintln(w.w, req.Line)
	if r.Matrix != nil {
		for i := 0; i < r.Matrix.Rows(); i++ {
			row, err := r.Matrix.Row(i)
			if err != nil {
				return err
			}
			w.cells(row)
		}
	} else {
		w.cells(r.Values)
	}
	fmt.Fprintf(w.w, keyLineFormat, r.Key.Mat, r.Key.MT, r.Key.Type)

	return w.err("reaction", r.Key)
}

// Listing writes one header summary line.
func (w *Writer) Listing(h boxer.Header) error {
	mat := h.Mat
	if mat == 0 {
		mat = 1
	}
	fmt.Fprintf(w.w, listingFormat, h.Type, mat, h.MT, h.Mat1, h.MT1)

	return w.err("listing", h.Key())
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}

	return nil
}

func (w *Writer) cells(vs []float64) {
	for _, v := range vs {
		fmt.Fprintf(w.w, cellFormat, v)
	}
	w.w.WriteByte('\n')
}

// err surfaces a sticky write error from the buffered writer.
func (w *Writer) err(what string, id any) error {
	if _, err := w.w.Write(nil); err != nil {
		return fmt.Errorf("write %s %v: %w", what, id, err)
	}

	return nil
}
