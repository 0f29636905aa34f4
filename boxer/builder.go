package boxer

import (
	"fmt"

	"github.com/sskutnik/deBOXER/matrix"
)

// Builder expands packed (values, controls) pages into a dense matrix.
//
// Algorithm Outline:
//  1. Allocate Rows×Cols (Rows×Rows when Cols == 0, symmetric mode).
//  2. For each control code c (never 0):
//     c < 0: read the next value and write it into the next |c| cells;
//     c > 0: each of the next |c| cells copies the cell above it, or 0
//     while the row index does not exceed the number of earlier pages.
//  3. Cells advance row-major; in symmetric mode a row restarts at the
//     diagonal and every off-diagonal write is mirrored.
//  4. When the cells written on the page (mirrored copies included) reach
//     a multiple of the value count, the value cursor is put back on the
//     first value; the next broadcast run then reads the second.
//
// A Builder holds the cursor across pages: call NextPage before applying
// a continuation page.
//
// Complexity: O(cells written) time, O(Rows·Cols) memory.
type Builder struct {
	m          *matrix.Dense
	rows, cols int
	symmetric  bool

	row, col     int // last written cell; col starts at -1
	pageStartRow int
	pageCells    int
	totalCells   int
	pages        int
}

// NewBuilder allocates the matrix declared by h.
func NewBuilder(h Header) (*Builder, error) {
	rows, cols := h.Dims()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("declared shape %dx%d: %w: %w", h.Rows, h.Cols, ErrMatrixBounds, err)
	}

	return &Builder{m: m, rows: rows, cols: cols, symmetric: h.Symmetric(), col: -1}, nil
}

// Build reconstructs a single-page record.
func Build(h Header, values []float64, controls []int) (*matrix.Dense, error) {
	b, err := NewBuilder(h)
	if err != nil {
		return nil, err
	}
	if err = b.Apply(values, controls); err != nil {
		return nil, err
	}

	return b.Matrix(), nil
}

// Apply consumes one page of values and control codes.
func (b *Builder) Apply(values []float64, controls []int) error {
	b.pages++
	b.pageCells = 0
	cursor := -1
	var fill float64

	for ic, c := range controls {
		if c == 0 {
			return fmt.Errorf("page %d control %d of %d: %w", b.pages, ic+1, len(controls), ErrInvalidControlCode)
		}
		run := c
		if c < 0 {
			run = -c
			cursor++
			if cursor >= len(values) {
				return fmt.Errorf("page %d control %d: value %d of %d: %w", b.pages, ic+1, cursor+1, len(values), ErrValueOverrun)
			}
			fill = values[cursor]
		}

		for n := 0; n < run; n++ {
			if err := b.advance(); err != nil {
				return fmt.Errorf("page %d control %d: %w", b.pages, ic+1, err)
			}
			if len(values) > 0 && b.pageCells > 0 && b.pageCells%len(values) == 0 {
				cursor = 0
			}
			v := fill
			if c > 0 {
				v = b.above()
			}
			b.write(b.row, b.col, v)
		}
	}
	b.totalCells += b.pageCells

	return nil
}

// NextPage marks the start of a continuation page.
func (b *Builder) NextPage() { b.pageStartRow++ }

// Matrix returns the matrix being filled. After the last page the caller owns it.
func (b *Builder) Matrix() *matrix.Dense { return b.m }

// Cells reports the number of cells written over all applied pages,
// mirrored copies included.
func (b *Builder) Cells() int { return b.totalCells }

// advance moves the cursor to the next cell to fill.
func (b *Builder) advance() error {
	b.col++
	if b.col == b.cols {
		b.row++
		b.col = 0
		if b.symmetric {
			b.col = b.row // upper triangle only
		}
	}
	if b.row >= b.rows || b.col >= b.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d: %w", b.row, b.col, b.rows, b.cols, ErrMatrixBounds)
	}

	return nil
}

// above returns the row-above fill for the current cell.
func (b *Builder) above() float64 {
	if b.row <= b.pageStartRow {
		return 0
	}
	v, _ := b.m.At(b.row-1, b.col) // in range: row-1 >= 0 and col < cols

	return v
}

func (b *Builder) write(i, j int, v float64) {
	_ = b.m.Set(i, j, v) // advance keeps (i,j) in range
	b.pageCells++
	if b.symmetric && i != j {
		_ = b.m.Set(j, i, v)
		b.pageCells++
	}
}
