package boxer

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// locatorState is the scan state of a Locator.
//
//	scanning ──header matches──▶ found
//	   │  ▲
//	   │  └──payload skipped── skipping ◀──header does not match──┘
//	   └──sentinel / EOF──▶ notFound | fatalMissing
type locatorState int

const (
	stateScanning locatorState = iota
	stateSkipping
	stateFound
	stateNotFound
	stateFatalMissing
)

func (s locatorState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateSkipping:
		return "skipping"
	case stateFound:
		return "found"
	case stateNotFound:
		return "not-found"
	case stateFatalMissing:
		return "fatal-missing"
	}

	return fmt.Sprintf("locatorState(%d)", int(s))
}

// Locator finds header records on a Tape.
// It reads from the tape's current position; callers rewind when needed.
type Locator struct {
	tape *Tape
	log  *zap.Logger
}

// NewLocator returns a Locator reading from t. A nil logger is replaced by zap.NewNop.
func NewLocator(t *Tape, log *zap.Logger) *Locator {
	if log == nil {
		log = zap.NewNop()
	}

	return &Locator{tape: t, log: log}
}

// Find scans forward for the next header matching key and returns it with
// the tape positioned on its first payload line.
//
// Errors:
//   - ErrReactionNotFound when the sentinel or EOF is reached first.
//   - ErrRequiredRecordMissing instead, when key is a group-boundary key.
//   - ErrInvalidFormatCode when a skipped header carries an unusable code.
func (l *Locator) Find(key ReactionKey) (Header, error) {
	var (
		h     Header
		state = stateScanning
	)
	for {
		switch state {
		case stateScanning:
			line, err := l.tape.ReadLine()
			if errors.Is(err, io.EOF) {
				state = exhausted(key)
				continue
			}
			if err != nil {
				return Header{}, err
			}
			parsed, ok := ParseHeader(line)
			if !ok {
				continue // stray line between records
			}
			h = parsed
			switch {
			case h.Type == TypeEndOfTape && key.Type != TypeListing:
				state = exhausted(key)
			case key.Matches(h):
				state = stateFound
			default:
				state = stateSkipping
			}

		case stateSkipping:
			n, err := h.PayloadLines()
			if err != nil {
				return Header{}, fmt.Errorf("line %d: skipping %s: %w", l.tape.Line(), h.Key(), err)
			}
			l.log.Debug("skip record",
				zap.Stringer("record", h.Key()),
				zap.Int("line", l.tape.Line()),
				zap.Int("payload_lines", n))
			state = stateScanning
			for i := 0; i < n; i++ {
				if _, err = l.tape.ReadLine(); err != nil {
					if !errors.Is(err, io.EOF) {
						return Header{}, err
					}
					state = exhausted(key)
					break
				}
			}

		case stateFound:
			l.log.Debug("record found", zap.Stringer("key", key), zap.Int("line", l.tape.Line()))
			return h, nil

		case stateNotFound:
			return Header{}, fmt.Errorf("%s: %w", key, ErrReactionNotFound)

		case stateFatalMissing:
			return Header{}, fmt.Errorf("%s: %w", key, ErrRequiredRecordMissing)
		}
	}
}

// Walk hands every header before the sentinel to fn, skipping payloads.
// A non-nil error from fn stops the walk and is returned.
func (l *Locator) Walk(fn func(Header) error) error {
	for {
		line, err := l.tape.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		h, ok := ParseHeader(line)
		if !ok {
			continue
		}
		if h.Type == TypeEndOfTape {
			return nil
		}
		if err = fn(h); err != nil {
			return err
		}
		n, err := h.PayloadLines()
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", l.tape.Line(), h.Key(), err)
		}
		for i := 0; i < n; i++ {
			if _, err = l.tape.ReadLine(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}
	}
}

// exhausted picks the terminal state for a scan that ran out of tape.
func exhausted(key ReactionKey) locatorState {
	if key.Type == TypeGroupBounds {
		return stateFatalMissing
	}

	return stateNotFound
}
