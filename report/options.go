package report

// Options of the text report
type Options struct {
	colors bool
	sweep  bool
}

// Option of the text report
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{sweep: true}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithColors enables ANSI colors on the pass/fail markers.
func WithColors(enabled bool) Option {
	return func(opts *Options) {
		opts.colors = enabled
	}
}

// WithSweep controls whether the timing table is printed.
func WithSweep(enabled bool) Option {
	return func(opts *Options) {
		opts.sweep = enabled
	}
}
