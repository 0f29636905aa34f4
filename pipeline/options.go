package pipeline

import "go.uber.org/zap"

const (
	panicNilLogger = "pipeline: WithLogger: logger must not be nil"
	panicNilSink   = "pipeline: WithSink: sink must not be nil"
)

// Option configures a Runner.
type Option func(*Options)

// Options stores the effective runner configuration.
type Options struct {
	logger *zap.Logger // default zap.NewNop()
	sinks  multiSink   // default: none, results are only counted
}

// WithLogger routes run diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithSink adds s to the sinks receiving results. Sinks are called in the
// order they were added.
func WithSink(s Sink) Option {
	if s == nil {
		panic(panicNilSink)
	}

	return func(o *Options) { o.sinks = append(o.sinks, s) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
