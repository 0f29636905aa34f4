// Package boxer decodes BOXER-format covariance tapes and rebuilds dense
// covariance matrices for requested reactions.
//
// 🚀 What is BOXER?
//
//	BOXER is a fixed-width text layout written by FORTRAN nuclear-data
//	processing codes. Each record is one header line followed by packed
//	payload lines:
//	  • a value sequence (the distinct numbers of the matrix)
//	  • a control sequence (signed run lengths saying where they go)
//	Large matrices are split over several "pages", each with its own
//	header and payload, chained by a continuation flag.
//
// ✨ Key features:
//   - the legacy field-format table (13 entries, copied verbatim)
//   - a header locator that skips non-matching records by arithmetic,
//     not by guessing where the next header starts
//   - run-length matrix reconstruction with broadcast runs, row-above
//     copies, symmetric mirroring and page continuation
//   - an encoder for writing synthetic tapes in the same layout
//
// ⚙️ Usage:
//
//	f, _ := os.Open("tape71")
//	defer f.Close()
//
//	dec := boxer.NewDecoder(f, boxer.WithLogger(logger))
//	bounds, err := dec.Bounds(125)          // mandatory group boundaries
//	r, err := dec.Decode(boxer.ReactionKey{Type: 1, Mat: 125, MT: 2})
//	if errors.Is(err, boxer.ErrReactionNotFound) {
//	  // soft failure: warn and move on
//	}
//	fmt.Println(r.Matrix)
//
// Every lookup rewinds the tape: records are not indexed and their order
// is unrelated to request order.
package boxer
