// Package boxer defines the record keys, headers and results of a tape lookup.
package boxer

import (
	"fmt"

	"github.com/sskutnik/deBOXER/matrix"
)

// Record type tags as written in column 1 of a header line.
const (
	// TypeListing is a request-only tag: hand the first header to the listing sink.
	TypeListing = -1

	// TypeGroupBounds marks the energy-group boundary record of a material.
	TypeGroupBounds = 0

	// TypeEndOfTape is the sentinel header closing the tape.
	TypeEndOfTape = 9
)

// ReactionKey identifies a requested record.
// Which fields take part in matching depends on Type:
//   - 0: Type only.
//   - 1, 2: Type, Mat, MT.
//   - 3, 4: all five fields.
//   - -1: any header (listing).
type ReactionKey struct {
	Type int
	Mat  int
	MT   int
	Mat1 int
	MT1  int
}

// Validate rejects record types a caller cannot ask for.
func (k ReactionKey) Validate() error {
	switch k.Type {
	case TypeListing, TypeGroupBounds, 1, 2, 3, 4:
		return nil
	}

	return fmt.Errorf("%s: %w", k, ErrInvalidKey)
}

// Matches applies the type-keyed matching policy to a decoded header.
func (k ReactionKey) Matches(h Header) bool {
	if k.Type == TypeListing {
		return true
	}
	if h.Type != k.Type {
		return false
	}
	switch k.Type {
	case TypeGroupBounds:
		return true
	case 1, 2:
		return h.Mat == k.Mat && h.MT == k.MT
	case 3, 4:
		return h.Mat == k.Mat && h.MT == k.MT && h.Mat1 == k.Mat1 && h.MT1 == k.MT1
	}

	return false
}

// String renders the key for logs and error messages.
func (k ReactionKey) String() string {
	return fmt.Sprintf("type=%d mat=%d mt=%d mat1=%d mt1=%d", k.Type, k.Mat, k.MT, k.Mat1, k.MT1)
}

// Header is one decoded header line.
type Header struct {
	Type          int
	ShortID       string
	Title         string
	Mat           int
	MT            int
	Mat1          int
	MT1           int
	ValueCount    int
	ValueFormat   int // 1-based code into the format table
	ControlCount  int
	ControlFormat int // 1-based code into the format table
	Continuation  int // >0: another page of the same reaction follows
	Rows          int
	Cols          int // 0: symmetric Rows×Rows
}

// Key returns the five identifying fields as a ReactionKey.
func (h Header) Key() ReactionKey {
	return ReactionKey{Type: h.Type, Mat: h.Mat, MT: h.MT, Mat1: h.Mat1, MT1: h.MT1}
}

// Symmetric reports whether only the upper triangle is stored.
func (h Header) Symmetric() bool { return h.Cols == 0 }

// Dims returns the dense shape of the matrix the header describes.
func (h Header) Dims() (rows, cols int) {
	if h.Symmetric() {
		return h.Rows, h.Rows
	}

	return h.Rows, h.Cols
}

// Reaction is the result of one lookup.
type Reaction struct {
	Key    ReactionKey
	Header Header    // header of the first page
	Pages  int       // number of pages folded into Matrix
	Values []float64 // decoded values of every page, in tape order
	Matrix *matrix.Dense
}
