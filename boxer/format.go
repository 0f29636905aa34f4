package boxer

import "fmt"

// FieldKind is the FORTRAN edit descriptor family of a payload field.
type FieldKind int

const (
	// KindInteger is an Iw field.
	KindInteger FieldKind = iota
	// KindFixed is an Fw.d field.
	KindFixed
	// KindExponent is an Ew.d field.
	KindExponent
)

// FieldSpec describes how one payload sequence is laid out on the tape.
//
// Fields:
//   - PerLine: number of fields per physical line.
//   - Width: field width in columns.
//   - Precision: digits after the decimal point (0 for integers).
//   - Kind: integer, fixed-point or exponential.
type FieldSpec struct {
	PerLine   int
	Width     int
	Precision int
	Kind      FieldKind
}

// fieldTable is the legacy format table. Capacities and widths are part of
// the wire format and must stay exactly as written.
var fieldTable = [...]FieldSpec{
	{PerLine: 80, Width: 1, Kind: KindInteger},
	{PerLine: 40, Width: 2, Kind: KindInteger},
	{PerLine: 26, Width: 3, Kind: KindInteger},
	{PerLine: 20, Width: 4, Kind: KindInteger},
	{PerLine: 16, Width: 5, Kind: KindInteger},
	{PerLine: 13, Width: 6, Kind: KindInteger},
	{PerLine: 11, Width: 7, Precision: 4, Kind: KindFixed},
	{PerLine: 10, Width: 8, Precision: 5, Kind: KindFixed},
	{PerLine: 8, Width: 9, Precision: 2, Kind: KindExponent},
	{PerLine: 8, Width: 10, Precision: 3, Kind: KindExponent},
	{PerLine: 7, Width: 11, Precision: 4, Kind: KindExponent},
	{PerLine: 6, Width: 12, Precision: 5, Kind: KindExponent},
	{PerLine: 5, Width: 14, Precision: 7, Kind: KindExponent},
}

// Index ranges (0-based) accepted for each sequence.
const (
	minValueIndex   = 6
	maxValueIndex   = 13
	minControlIndex = 0
	maxControlIndex = 5

	// scaledCapacity is the per-line capacity above which decoded values
	// carry an implicit factor of ten.
	scaledCapacity = 7
)

// ValueFormat returns the value-field layout for a 1-based format code.
// Code 14 passes the legacy range check but has no table entry and is
// rejected as well.
func ValueFormat(code int) (FieldSpec, error) {
	idx := code - 1
	if idx < minValueIndex || idx > maxValueIndex || idx >= len(fieldTable) {
		return FieldSpec{}, fmt.Errorf("value format code %d: %w", code, ErrInvalidFormatCode)
	}

	return fieldTable[idx], nil
}

// ControlFormat returns the control-field layout for a 1-based format code.
func ControlFormat(code int) (FieldSpec, error) {
	idx := code - 1
	if idx < minControlIndex || idx > maxControlIndex {
		return FieldSpec{}, fmt.Errorf("control format code %d: %w", code, ErrInvalidFormatCode)
	}

	return fieldTable[idx], nil
}

// LookupFormats resolves both codes of a header at once.
func LookupFormats(valueCode, controlCode int) (values, controls FieldSpec, err error) {
	if values, err = ValueFormat(valueCode); err != nil {
		return FieldSpec{}, FieldSpec{}, err
	}
	if controls, err = ControlFormat(controlCode); err != nil {
		return FieldSpec{}, FieldSpec{}, err
	}

	return values, controls, nil
}

// Lines returns ceil(count/PerLine), the physical lines holding count fields.
func (s FieldSpec) Lines(count int) int {
	if count <= 0 || s.PerLine <= 0 {
		return 0
	}

	return (count + s.PerLine - 1) / s.PerLine
}

// Scaled reports whether values decoded with this layout are multiplied by 10.
func (s FieldSpec) Scaled() bool {
	return s.Kind != KindInteger && s.PerLine > scaledCapacity
}

// Descriptor renders the FORTRAN format, e.g. "(8E10.3)".
func (s FieldSpec) Descriptor() string {
	switch s.Kind {
	case KindFixed:
		return fmt.Sprintf("(%dF%d.%d)", s.PerLine, s.Width, s.Precision)
	case KindExponent:
		return fmt.Sprintf("(%dE%d.%d)", s.PerLine, s.Width, s.Precision)
	default:
		return fmt.Sprintf("(%dI%d)", s.PerLine, s.Width)
	}
}
