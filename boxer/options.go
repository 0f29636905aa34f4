package boxer

import "go.uber.org/zap"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger  = "boxer: WithLogger: logger must not be nil"
	panicNilListing = "boxer: WithListing: sink must not be nil"
)

// ListingFunc receives the header picked by a listing (type -1) request.
type ListingFunc func(Header)

// Option mutates decoder options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective decoder configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger  *zap.Logger // default zap.NewNop()
	listing ListingFunc // default: discard
}

// WithLogger routes decoder diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithListing installs the sink for listing requests. It serves library
// callers that use the Decoder directly; pipeline.Runner reads the header
// from the returned Reaction instead, so its sinks can report write errors.
func WithListing(fn ListingFunc) Option {
	if fn == nil {
		panic(panicNilListing)
	}

	return func(o *Options) { o.listing = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:  zap.NewNop(),
		listing: func(Header) {},
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
