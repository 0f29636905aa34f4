package boxer_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sskutnik/deBOXER/boxer"
)

// ExampleDecoder_Decode writes a one-record tape and reads the matrix back.
func ExampleDecoder_Decode() {
	var tape bytes.Buffer
	enc := boxer.NewEncoder(&tape)
	_ = enc.WriteRecord(boxer.Header{
		Type: 1, ShortID: "DEMO", Title: "2x3 block",
		Mat: 125, MT: 2, ValueFormat: 13, ControlFormat: 1, Rows: 2, Cols: 3,
	}, []float64{1, 2, 3, 4, 5, 6}, []int{-1, -1, -1, -1, -1, -1})
	_ = enc.WriteSentinel()

	dec := boxer.NewDecoder(bytes.NewReader(tape.Bytes()))
	r, err := dec.Decode(boxer.ReactionKey{Type: 1, Mat: 125, MT: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(r.Matrix)

	_, err = dec.Decode(boxer.ReactionKey{Type: 1, Mat: 125, MT: 4})
	fmt.Println(errors.Is(err, boxer.ErrReactionNotFound), boxer.IsFatal(err))
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// true false
}

// ExampleFieldSpec_Descriptor prints the layouts selectable by value codes.
func ExampleFieldSpec_Descriptor() {
	for code := 7; code <= 13; code++ {
		spec, _ := boxer.ValueFormat(code)
		fmt.Println(code, spec.Descriptor(), spec.Scaled())
	}
	// Output:
	// 7 (11F7.4) true
	// 8 (10F8.5) true
	// 9 (8E9.2) true
	// 10 (8E10.3) true
	// 11 (7E11.4) false
	// 12 (6E12.5) false
	// 13 (5E14.7) false
}
