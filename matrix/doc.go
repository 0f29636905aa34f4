// Package matrix provides the dense storage used for reconstructed
// covariance matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - FromRows for building fixtures and expected results.
//   - ValidateSymmetric / IsSymmetric for checking the mirrored layout of
//     matrices rebuilt from symmetric (upper-triangle) records.
//   - StdDev / Correlation, the usual summaries of a covariance block.
//
// Covariance data is never decomposed or inverted here.
//
// See the examples in this package for usage patterns.
package matrix
