// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Structural checks on reconstructed matrices.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSymmetric reports whether |m[i,j]-m[j,i]| <= tol for every i<j.
// MAIN DESCRIPTION:
//   - Fail fast on nil, non-square or non-finite tolerance.
//   - Scan the strict upper triangle once in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped with the tag).
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m *Dense, tol float64) error {
	const tag = "ValidateSymmetric"
	if m == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf(tag, ErrNonSquare)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf(tag, ErrAsymmetry)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsSymmetric is the boolean form of ValidateSymmetric with zero tolerance.
func IsSymmetric(m *Dense) bool {
	return ValidateSymmetric(m, 0) == nil
}
