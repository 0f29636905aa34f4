package boxer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Tape is a line reader over a seekable BOXER file.
// It carries the stream position explicitly (Line) so the locator and the
// payload decoder share one cursor without ambient state.
type Tape struct {
	src  io.ReadSeeker
	r    *bufio.Reader
	line int // physical lines consumed since the last rewind
}

// NewTape wraps src. The first read starts at the current offset of src;
// call Rewind to start from the beginning.
func NewTape(src io.ReadSeeker) *Tape {
	return &Tape{src: src, r: bufio.NewReader(src)}
}

// Rewind repositions the tape at its first line.
func (t *Tape) Rewind() error {
	if _, err := t.src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind tape: %w", err)
	}
	t.r.Reset(t.src)
	t.line = 0

	return nil
}

// ReadLine returns the next physical line without its terminator.
// A final line lacking a newline is still returned; io.EOF follows it.
func (t *Tape) ReadLine() (string, error) {
	s, err := t.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read tape line %d: %w", t.line+1, err)
		}
		if s == "" {
			return "", io.EOF
		}
	}
	t.line++

	return strings.TrimRight(s, "\r\n"), nil
}

// Line reports how many lines have been consumed since the last rewind.
func (t *Tape) Line() int { return t.line }
