package pipeline

import (
	"errors"
	"fmt"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/request"
	"go.uber.org/zap"
)

// Summary counts the outcome of a run.
type Summary struct {
	Materials int
	Decoded   int
	Listed    int
	Missing   []boxer.ReactionKey // reactions not on the tape, in request order
}

// Runner executes request lists against one decoder.
type Runner struct {
	dec  *boxer.Decoder
	opts Options
}

// NewRunner returns a Runner decoding with dec.
func NewRunner(dec *boxer.Decoder, opts ...Option) *Runner {
	return &Runner{dec: dec, opts: gatherOptions(opts...)}
}

// Run processes reqs grouped by material. The returned Summary covers the
// work done before any fatal error.
func (r *Runner) Run(reqs []request.Request) (Summary, error) {
	var sum Summary
	log := r.opts.logger
	for _, g := range request.ByMaterial(reqs) {
		if needsBounds(g) {
			bounds, err := r.dec.Bounds(g.Mat)
			if err != nil {
				return sum, err
			}
			if err = r.opts.sinks.BeginMaterial(g.Mat, bounds); err != nil {
				return sum, fmt.Errorf("material %d: %w", g.Mat, err)
			}
			sum.Materials++
			log.Info("material", zap.Int("mat", g.Mat), zap.Int("bounds", len(bounds)), zap.Int("requests", len(g.Requests)))
		}
		for _, req := range g.Requests {
			if err := r.one(req, &sum); err != nil {
				return sum, err
			}
		}
	}
	log.Info("run complete",
		zap.Int("materials", sum.Materials),
		zap.Int("decoded", sum.Decoded),
		zap.Int("listed", sum.Listed),
		zap.Int("missing", len(sum.Missing)))

	return sum, nil
}

func (r *Runner) one(req request.Request, sum *Summary) error {
	log := r.opts.logger
	if req.Key.Type == boxer.TypeGroupBounds {
		log.Debug("bounds already written for material", zap.Int("mat", req.Key.Mat), zap.Int("line", req.LineNo))
		return nil
	}
	rx, err := r.dec.Decode(req.Key)
	switch {
	case errors.Is(err, boxer.ErrReactionNotFound):
		log.Warn("reaction not found, skipping", zap.Stringer("key", req.Key), zap.Int("line", req.LineNo))
		sum.Missing = append(sum.Missing, req.Key)
		return nil
	case err != nil:
		return fmt.Errorf("request line %d: %w", req.LineNo, err)
	}

	if req.Listing() {
		if err = r.opts.sinks.Listing(rx.Header); err != nil {
			return fmt.Errorf("listing: %w", err)
		}
		sum.Listed++
		return nil
	}
	if err = r.opts.sinks.WriteReaction(req, rx); err != nil {
		return fmt.Errorf("write %s: %w", req.Key, err)
	}
	sum.Decoded++
	log.Debug("reaction written", zap.Stringer("key", req.Key), zap.Int("pages", rx.Pages))

	return nil
}

// needsBounds reports whether g holds anything besides listing requests.
func needsBounds(g request.Group) bool {
	for _, req := range g.Requests {
		if !req.Listing() {
			return true
		}
	}

	return false
}
