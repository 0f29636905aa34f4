// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Summaries of a covariance matrix: standard deviations and the
//    correlation matrix derived from them.
//
// Determinism & Performance:
//  - Fixed i→j loop order; one O(n²) pass for Correlation.

package matrix

import (
	"fmt"
	"math"
)

const (
	opStdDev      = "StdDev"
	opCorrelation = "Correlation"
)

// StdDev returns sqrt(cov[i,i]) for every i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeVariance (wrapped with the op tag).
//
// Complexity: O(n).
func StdDev(cov *Dense) ([]float64, error) {
	if cov == nil {
		return nil, validatorErrorf(opStdDev, ErrNilMatrix)
	}
	if cov.r != cov.c {
		return nil, validatorErrorf(opStdDev, ErrNonSquare)
	}
	n := cov.r
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := cov.data[i*n+i]
		if v < 0 {
			return nil, validatorErrorf(opStdDev, fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNegativeVariance))
		}
		out[i] = math.Sqrt(v)
	}

	return out, nil
}

// Correlation returns corr[i,j] = cov[i,j] / (s[i]*s[j]) with s = StdDev(cov).
// MAIN DESCRIPTION:
//   - Rows and columns whose standard deviation is 0 stay zero, including
//     their diagonal entry; every other diagonal entry is exactly 1.
//
// Errors:
//   - As StdDev.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Correlation(cov *Dense) (*Dense, error) {
	s, err := StdDev(cov)
	if err != nil {
		return nil, validatorErrorf(opCorrelation, err)
	}
	n := len(s)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, validatorErrorf(opCorrelation, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if s[i] == 0 {
			continue // degenerate row stays zero
		}
		for j = 0; j < n; j++ {
			if s[j] == 0 {
				continue
			}
			if i == j {
				out.data[i*n+j] = 1
				continue
			}
			out.data[i*n+j] = cov.data[i*n+j] / (s[i] * s[j])
		}
	}

	return out, nil
}
