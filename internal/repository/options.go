package repository

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

type Option func(*options)

// WithLogger attaches a logger for debug output. Without it the
// repositories stay silent.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
