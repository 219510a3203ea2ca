package ggres

import "github.com/gogpu/ggres/render"

// Option configures a Manager during creation.
//
// Example:
//
//	// Default backend and configuration
//	m := ggres.New()
//
//	// Recording backend (tests) with graphics disabled
//	m := ggres.New(
//	    ggres.WithBackend(record.New()),
//	    ggres.WithConfig(ggres.Config{DisableGraphics: true}),
//	)
type Option func(*options)

// options holds optional configuration for Manager creation.
type options struct {
	backend render.Backend
	config  Config
	face    render.Typeface
}

// defaultOptions returns the default manager options.
func defaultOptions() options {
	return options{
		backend: nil, // Will be set to backend.Default() if nil
		config:  DefaultConfig(),
	}
}

// WithBackend sets the rendering backend.
func WithBackend(b render.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithConfig replaces the configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithTypeface sets the typeface of the session font, overriding
// Config.FontPath.
func WithTypeface(tf render.Typeface) Option {
	return func(o *options) {
		o.face = tf
	}
}
