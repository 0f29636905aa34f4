package boxer

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Numeric token grammars for real-valued fields, anchored at the field start.
// Exponential fields also accept the FORTRAN form without an exponent
// letter ("1.234-05"); fixed fields do not, so that packed "1.0000-2.0000"
// splits into two numbers.
var (
	fixedToken    = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eEdD][-+]?\d+)?`)
	exponentToken = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eEdD][-+]?\d+|[-+]\d+)?`)
)

// DecodeValues reads count value fields in the given layout from the tape.
// Values of layouts with more than seven fields per line are scaled by 10.
func DecodeValues(t *Tape, count int, spec FieldSpec) ([]float64, error) {
	if count <= 0 {
		return nil, nil
	}
	sc, err := newFieldScanner(t, count, spec)
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		if out[i], err = sc.float(); err != nil {
			return nil, sc.fail(i, err)
		}
		if spec.Scaled() {
			out[i] *= 10
		}
	}
	if err = sc.done(); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeControls reads count integer control codes in the given layout.
func DecodeControls(t *Tape, count int, spec FieldSpec) ([]int, error) {
	if count <= 0 {
		return nil, nil
	}
	sc, err := newFieldScanner(t, count, spec)
	if err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		if out[i], err = sc.integer(); err != nil {
			return nil, sc.fail(i, err)
		}
	}
	if err = sc.done(); err != nil {
		return nil, err
	}

	return out, nil
}

// fieldScanner walks one logical record: the spec.Lines(count) physical
// lines joined by newlines. Leading blanks are kept so that integer fields
// stay column aligned.
type fieldScanner struct {
	buf   string
	pos   int
	lead  int // blanks skipped on this line since the last field
	count int
	spec  FieldSpec
	line  int // tape line of the last physical line read
}

func newFieldScanner(t *Tape, count int, spec FieldSpec) (*fieldScanner, error) {
	n := spec.Lines(count)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("line %d: %d fields %s need %d lines, tape ended after %d: %w",
				t.Line(), count, spec.Descriptor(), n, i, ErrMalformedLine)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, strings.TrimRight(line, " \t"))
	}

	return &fieldScanner{buf: strings.Join(parts, "\n"), count: count, spec: spec, line: t.Line()}, nil
}

func (s *fieldScanner) skipBlanks() {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ':
			s.lead++
		case '\n':
			s.lead = 0
		default:
			return
		}
		s.pos++
	}
}

// integer reads one Iw field. Blanks skipped in front of it and its sign
// count toward the width, so a packed "-112" in I2 reads -1 then 12. A field
// always yields at least one digit: "-3-3" in I1 reads -3 twice.
func (s *fieldScanner) integer() (int, error) {
	s.skipBlanks()
	start := s.pos
	room := max(s.spec.Width-s.lead, 1)
	if s.pos < len(s.buf) && (s.buf[s.pos] == '-' || s.buf[s.pos] == '+') {
		s.pos++
		room = max(room-1, 1)
	}
	digits := s.pos
	for s.pos < len(s.buf) && s.pos-digits < room && isDigit(s.buf[s.pos]) {
		s.pos++
	}
	if s.pos == digits {
		return 0, s.unexpected(start)
	}
	s.lead = 0

	return strconv.Atoi(s.buf[start:s.pos])
}

// float reads a real number of at most Width characters.
func (s *fieldScanner) float() (float64, error) {
	s.skipBlanks()
	if s.spec.Kind == KindInteger {
		v, err := s.integer()
		return float64(v), err
	}
	end := min(s.pos+s.spec.Width, len(s.buf))
	pattern := fixedToken
	if s.spec.Kind == KindExponent {
		pattern = exponentToken
	}
	tok := pattern.FindString(s.buf[s.pos:end])
	if tok == "" {
		return 0, s.unexpected(s.pos)
	}
	s.pos += len(tok)
	s.lead = 0

	return strconv.ParseFloat(normalizeReal(tok), 64)
}

// done rejects trailing non-blank text after the last field.
func (s *fieldScanner) done() error {
	s.skipBlanks()
	if s.pos != len(s.buf) {
		return fmt.Errorf("line %d: trailing text %q after %d fields %s: %w",
			s.line, s.buf[s.pos:], s.count, s.spec.Descriptor(), ErrMalformedLine)
	}

	return nil
}

func (s *fieldScanner) unexpected(at int) error {
	if at >= len(s.buf) {
		return errors.New("record ends early")
	}
	rest := s.buf[at:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > s.spec.Width {
		rest = rest[:s.spec.Width]
	}

	return fmt.Errorf("unexpected text %q", rest)
}

func (s *fieldScanner) fail(field int, err error) error {
	return fmt.Errorf("line %d: field %d of %d %s: %v: %w",
		s.line, field+1, s.count, s.spec.Descriptor(), err, ErrMalformedLine)
}

// normalizeReal rewrites FORTRAN exponents into a form strconv accepts:
// D becomes E and a bare signed exponent gets its missing E.
func normalizeReal(tok string) string {
	tok = strings.Map(func(r rune) rune {
		if r == 'd' || r == 'D' {
			return 'E'
		}
		return r
	}, tok)
	for i := 1; i < len(tok); i++ {
		if (tok[i] == '-' || tok[i] == '+') && tok[i-1] != 'e' && tok[i-1] != 'E' {
			return tok[:i] + "E" + tok[i:]
		}
	}

	return tok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
