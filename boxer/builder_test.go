package boxer_test

import (
	"testing"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shape(rows, cols int) boxer.Header { return boxer.Header{Rows: rows, Cols: cols} }

func requireRows(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	assert.Equal(t, want, m.RawRows())
}

// TestBuild_Runs covers broadcast and row-above runs on a single page.
func TestBuild_Runs(t *testing.T) {
	tests := []struct {
		name     string
		h        boxer.Header
		values   []float64
		controls []int
		want     [][]float64
	}{
		{
			name:     "one value per cell",
			h:        shape(2, 3),
			values:   []float64{1, 2, 3, 4, 5, 6},
			controls: runs(6, -1),
			want:     [][]float64{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name:     "broadcast rows",
			h:        shape(2, 3),
			values:   []float64{1, 2},
			controls: []int{-3, -3},
			want:     [][]float64{{1, 1, 1}, {2, 2, 2}},
		},
		{
			name:     "positive run on first row is zero",
			h:        shape(2, 2),
			values:   []float64{5, 6},
			controls: []int{2, -2},
			want:     [][]float64{{0, 0}, {5, 5}},
		},
		{
			name:     "positive run copies row above",
			h:        shape(3, 2),
			values:   []float64{5, 6},
			controls: []int{2, -2, 2},
			want:     [][]float64{{0, 0}, {5, 5}, {5, 5}},
		},
		{
			name:     "value cursor rewinds on multiple of value count",
			h:        shape(1, 5),
			values:   []float64{1, 2, 3},
			controls: []int{-1, -3, -1},
			want:     [][]float64{{1, 2, 2, 2, 2}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := boxer.Build(tc.h, tc.values, tc.controls)
			require.NoError(t, err)
			requireRows(t, tc.want, m)
		})
	}
}

// TestBuild_Symmetric fills the upper triangle and mirrors it. Mirrored
// copies count toward the value-cursor reset: the sixth written cell of a
// six-value page sends the last run back to the second value.
func TestBuild_Symmetric(t *testing.T) {
	b, err := boxer.NewBuilder(shape(3, 0))
	require.NoError(t, err)
	require.NoError(t, b.Apply([]float64{1, 2, 3, 4, 5, 6}, runs(6, -1)))
	m := b.Matrix()
	requireRows(t, [][]float64{{1, 2, 3}, {2, 4, 5}, {3, 5, 2}}, m)
	assert.True(t, matrix.IsSymmetric(m))
	assert.Equal(t, 9, b.Cells(), "six upper cells plus three mirrors")

	m, err = boxer.Build(shape(2, 0), []float64{0.5, -0.25, 2}, []int{-1, -1, -1})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// TestBuild_ZeroControl rejects a zero control code in any position.
func TestBuild_ZeroControl(t *testing.T) {
	for _, controls := range [][]int{{0, -1, -1}, {-1, 0, -1}, {-1, -1, 0}} {
		_, err := boxer.Build(shape(1, 3), []float64{1, 2, 3}, controls)
		assert.ErrorIs(t, err, boxer.ErrInvalidControlCode, "controls %v", controls)
	}
}

// TestBuild_Failures covers runs that leave the matrix or the values.
func TestBuild_Failures(t *testing.T) {
	_, err := boxer.Build(shape(1, 2), []float64{1}, []int{-3})
	assert.ErrorIs(t, err, boxer.ErrMatrixBounds)

	_, err = boxer.Build(shape(2, 0), []float64{1}, []int{-4})
	assert.ErrorIs(t, err, boxer.ErrMatrixBounds, "symmetric 2x2 has three upper cells")

	_, err = boxer.Build(shape(1, 3), []float64{1, 2}, []int{-1, -1, -1})
	assert.ErrorIs(t, err, boxer.ErrValueOverrun)

	_, err = boxer.Build(shape(0, 0), nil, []int{-1})
	assert.ErrorIs(t, err, boxer.ErrMatrixBounds)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestBuilder_ContinuationPage keeps the cursor across pages and lets a
// positive run at the page boundary read the previous page's last row.
func TestBuilder_ContinuationPage(t *testing.T) {
	b, err := boxer.NewBuilder(shape(4, 2))
	require.NoError(t, err)

	require.NoError(t, b.Apply([]float64{1, 2, 3, 4}, runs(4, -1)))
	b.NextPage()
	require.NoError(t, b.Apply([]float64{9, 8}, []int{2, -2}))

	requireRows(t, [][]float64{{1, 2}, {3, 4}, {3, 4}, {9, 9}}, b.Matrix())
	assert.Equal(t, 8, b.Cells())
}

// TestBuilder_PageStartRowZeroFill shows the fill rule uses the page count,
// not the row where the page begins.
func TestBuilder_PageStartRowZeroFill(t *testing.T) {
	b, err := boxer.NewBuilder(shape(3, 1))
	require.NoError(t, err)

	require.NoError(t, b.Apply([]float64{7}, []int{-1}))
	b.NextPage()
	require.NoError(t, b.Apply([]float64{5, 6}, []int{1, -1}))

	requireRows(t, [][]float64{{7}, {0}, {5}}, b.Matrix())
}
