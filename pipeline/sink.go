package pipeline

import (
	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/request"
)

// Sink receives the results of a run in request order.
type Sink interface {
	// BeginMaterial is called once per material before its reactions.
	BeginMaterial(mat int, bounds []float64) error
	// WriteReaction receives one decoded reaction and the request that asked for it.
	WriteReaction(req request.Request, r *boxer.Reaction) error
	// Listing receives the header picked by a listing request.
	Listing(h boxer.Header) error
}

// multiSink fans every call out to each sink, stopping at the first error.
type multiSink []Sink

func (m multiSink) BeginMaterial(mat int, bounds []float64) error {
	for _, s := range m {
		if err := s.BeginMaterial(mat, bounds); err != nil {
			return err
		}
	}

	return nil
}

func (m multiSink) WriteReaction(req request.Request, r *boxer.Reaction) error {
	for _, s := range m {
		if err := s.WriteReaction(req, r); err != nil {
			return err
		}
	}

	return nil
}

func (m multiSink) Listing(h boxer.Header) error {
	for _, s := range m {
		if err := s.Listing(h); err != nil {
			return err
		}
	}

	return nil
}
