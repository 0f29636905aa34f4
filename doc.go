// Package deboxer turns BOXER-format covariance tapes into dense matrices.
//
// 🚀 What is deBOXER?
//
//	Nuclear-data processing codes (NJOY's COVR module among them) write
//	multigroup covariance matrices in BOXER, a compressed fixed-width text
//	layout. deBOXER reads such a tape and rebuilds the full matrices for
//	the reactions you ask for:
//		• Record lookup: header scan with exact payload skipping
//		• Field decoding: the legacy 13-entry FORTRAN format table
//		• Reconstruction: broadcast runs, row-above copies, symmetric
//		  mirroring and multi-page continuation
//		• Output: the fixed-width text dataset and an optional SQLite export
//
// Under the hood:
//
//	boxer/        tape, header locator, fixed-width decoder, matrix builder, encoder
//	matrix/       row-major Dense storage, symmetry checks, covariance statistics
//	request/      request list parsing and grouping by material
//	pipeline/     batch runner fanning results out to sinks
//	dataset/      text dataset sink
//	store/        SQLite sink
//	config/       YAML configuration with environment overrides
//	cmd/deboxer/  the command-line tool
//
// Quick start:
//
//	deboxer extract --tape tape71 --requests fetchCov.dat --output newCov.dat
//	deboxer list --tape tape71
package deboxer
