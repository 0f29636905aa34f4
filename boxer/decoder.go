package boxer

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Decoder answers "give me the matrix for reaction K" against one tape.
// It is not safe for concurrent use: all lookups share the tape cursor.
type Decoder struct {
	tape    *Tape
	locator *Locator
	opts    Options
}

// NewDecoder returns a Decoder over src.
func NewDecoder(src io.ReadSeeker, opts ...Option) *Decoder {
	o := gatherOptions(opts...)
	t := NewTape(src)

	return &Decoder{tape: t, locator: NewLocator(t, o.logger), opts: o}
}

// Decode rewinds the tape, locates key and rebuilds its matrix, folding
// continuation pages into the same matrix.
//
// Behavior highlights:
//   - Listing keys (type -1) hand the first header to the listing sink and
//     return without decoding a payload.
//   - Records without control codes (group boundaries) return only Values.
//   - ErrReactionNotFound is the only soft failure; see IsFatal.
func (d *Decoder) Decode(key ReactionKey) (*Reaction, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := d.tape.Rewind(); err != nil {
		return nil, err
	}
	h, err := d.locator.Find(key)
	if err != nil {
		return nil, err
	}
	r := &Reaction{Key: key, Header: h}
	if key.Type == TypeListing {
		d.opts.listing(h)
		return r, nil
	}

	var b *Builder
	for {
		values, controls, err := d.payload(h)
		if err != nil {
			return nil, fmt.Errorf("%s: page %d: %w", key, r.Pages+1, err)
		}
		r.Pages++
		r.Values = append(r.Values, values...)
		if len(controls) > 0 {
			if b == nil {
				if b, err = NewBuilder(r.Header); err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
			} else {
				b.NextPage()
			}
			if err = b.Apply(values, controls); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		if h.Continuation <= 0 {
			break
		}
		if h, err = d.locator.Find(key); err != nil {
			if errors.Is(err, ErrReactionNotFound) {
				return nil, fmt.Errorf("%s: page %d: %w", key, r.Pages+1, ErrMissingContinuation)
			}
			return nil, err
		}
	}
	if b != nil {
		r.Matrix = b.Matrix()
	}
	d.opts.logger.Debug("reaction decoded",
		zap.Stringer("key", key),
		zap.Int("pages", r.Pages),
		zap.Int("values", len(r.Values)))

	return r, nil
}

// Bounds returns the energy-group boundaries, which every material needs.
// A missing record is ErrRequiredRecordMissing, never a soft failure.
func (d *Decoder) Bounds(mat int) ([]float64, error) {
	r, err := d.Decode(ReactionKey{Type: TypeGroupBounds, Mat: mat})
	if err != nil {
		return nil, fmt.Errorf("group bounds for mat %d: %w", mat, err)
	}

	return r.Values, nil
}

// List rewinds the tape and hands every header before the sentinel to fn.
func (d *Decoder) List(fn func(Header) error) error {
	if err := d.tape.Rewind(); err != nil {
		return err
	}

	return d.locator.Walk(fn)
}

// payload decodes the value and control lines that follow h.
func (d *Decoder) payload(h Header) ([]float64, []int, error) {
	var (
		values   []float64
		controls []int
	)
	if h.ValueCount > 0 {
		spec, err := ValueFormat(h.ValueFormat)
		if err != nil {
			return nil, nil, err
		}
		if values, err = DecodeValues(d.tape, h.ValueCount, spec); err != nil {
			return nil, nil, err
		}
	}
	if h.ControlCount > 0 {
		spec, err := ControlFormat(h.ControlFormat)
		if err != nil {
			return nil, nil, err
		}
		if controls, err = DecodeControls(d.tape, h.ControlCount, spec); err != nil {
			return nil, nil, err
		}
	}

	return values, controls, nil
}
