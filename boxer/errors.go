package boxer

import "errors"

// Sentinel errors. Decoder methods wrap them with the reaction key or the
// tape line where the problem was detected; match them with errors.Is.
//
// Only ErrReactionNotFound is recoverable; see IsFatal.
var (
	// ErrInvalidFormatCode indicates a value or control format code outside the table.
	ErrInvalidFormatCode = errors.New("boxer: invalid format code")

	// ErrMalformedLine indicates payload text that does not match the field template.
	ErrMalformedLine = errors.New("boxer: malformed fixed-width line")

	// ErrInvalidControlCode indicates a zero control code.
	ErrInvalidControlCode = errors.New("boxer: invalid control code")

	// ErrMatrixBounds indicates a cell outside the declared matrix dimensions.
	ErrMatrixBounds = errors.New("boxer: matrix bounds exceeded")

	// ErrValueOverrun indicates a broadcast run with no value left to read.
	ErrValueOverrun = errors.New("boxer: value sequence exhausted")

	// ErrReactionNotFound indicates the end of tape was reached before the requested reaction.
	ErrReactionNotFound = errors.New("boxer: reaction not found")

	// ErrRequiredRecordMissing indicates the mandatory group-boundary record is absent.
	ErrRequiredRecordMissing = errors.New("boxer: required group-boundary record missing")

	// ErrMissingContinuation indicates a continuation page that never appears.
	ErrMissingContinuation = errors.New("boxer: continuation page missing")

	// ErrFieldOverflow indicates a value or control code too wide for its field.
	ErrFieldOverflow = errors.New("boxer: field overflow")

	// ErrInvalidKey indicates a reaction key with an unsupported record type.
	ErrInvalidKey = errors.New("boxer: invalid reaction key")
)

// IsFatal reports whether err must abort the current run.
// A nil error is not fatal; a missing reaction is the only soft failure.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrReactionNotFound)
}
