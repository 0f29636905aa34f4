package boxer

import (
	"fmt"
	"io"
	"strings"
)

// Encoder writes records in the BOXER layout. It is the inverse of the
// decoder, including the implicit x10 scale of high-capacity value formats.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// WriteRecord writes h followed by its value and control lines.
// ValueCount and ControlCount of h are taken from the slices.
func (e *Encoder) WriteRecord(h Header, values []float64, controls []int) error {
	h.ValueCount, h.ControlCount = len(values), len(controls)
	var vspec, cspec FieldSpec
	var err error
	if len(values) > 0 {
		if vspec, err = ValueFormat(h.ValueFormat); err != nil {
			return err
		}
	}
	if len(controls) > 0 {
		if cspec, err = ControlFormat(h.ControlFormat); err != nil {
			return err
		}
	}
	if err = e.WriteHeader(h); err != nil {
		return err
	}
	if err = e.WriteValues(values, vspec); err != nil {
		return err
	}

	return e.WriteControls(controls, cspec)
}

// WriteHeader writes one header line.
func (e *Encoder) WriteHeader(h Header) error {
	if _, err := fmt.Fprintln(e.w, FormatHeader(h)); err != nil {
		return fmt.Errorf("write header %s: %w", h.Key(), err)
	}

	return nil
}

// WriteSentinel writes the end-of-tape header.
func (e *Encoder) WriteSentinel() error {
	return e.WriteHeader(Header{Type: TypeEndOfTape})
}

// WriteValues writes values in the given layout. A value whose text does
// not fit the field width is an ErrFieldOverflow.
func (e *Encoder) WriteValues(values []float64, spec FieldSpec) error {
	fields := make([]string, len(values))
	for i, v := range values {
		if spec.Scaled() {
			v /= 10
		}
		fields[i] = formatField(v, spec)
		if len(fields[i]) > spec.Width {
			return fmt.Errorf("value %g (index %d) as %q does not fit %s: %w",
				values[i], i, fields[i], spec.Descriptor(), ErrFieldOverflow)
		}
	}

	return e.writeLines(fields, spec)
}

// WriteControls writes control codes in the given layout. The sign takes
// one of the field's columns, except in I1 where "-3" is read back as one
// field.
func (e *Encoder) WriteControls(controls []int, spec FieldSpec) error {
	fields := make([]string, len(controls))
	for i, c := range controls {
		fields[i] = fmt.Sprintf("%*d", spec.Width, c)
		limit := spec.Width
		if limit == 1 && c < 0 {
			limit = 2
		}
		if len(fields[i]) > limit {
			return fmt.Errorf("control %d (index %d) does not fit %s: %w", c, i, spec.Descriptor(), ErrFieldOverflow)
		}
	}

	return e.writeLines(fields, spec)
}

func (e *Encoder) writeLines(fields []string, spec FieldSpec) error {
	for start := 0; start < len(fields); start += spec.PerLine {
		end := min(start+spec.PerLine, len(fields))
		if _, err := fmt.Fprintln(e.w, strings.Join(fields[start:end], "")); err != nil {
			return fmt.Errorf("write payload line: %w", err)
		}
	}

	return nil
}

func formatField(v float64, spec FieldSpec) string {
	switch spec.Kind {
	case KindFixed:
		return fmt.Sprintf("%*.*f", spec.Width, spec.Precision, v)
	case KindExponent:
		return fmt.Sprintf("%*.*E", spec.Width, spec.Precision, v)
	default:
		return fmt.Sprintf("%*d", spec.Width, int(v))
	}
}
