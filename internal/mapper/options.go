package mapper

import (
	"go.uber.org/zap"

	"multibundle-mapper/internal/bundle"
)

// Option configures a Mapper.
type Option func(*options)

type options struct {
	markers    bundle.Markers
	prefix     string
	onDone     func(error)
	logger     *zap.Logger
	strict     bool
	configFunc string
}

// WithMarkers overrides the format's default markers. Empty fields keep the
// default for that marker.
func WithMarkers(m bundle.Markers) Option {
	return func(o *options) {
		o.markers = m
	}
}

// WithPrefix sets the path or URL prepended to every bundle location.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithOnDone registers the completion handler invoked once by Consume.
func WithOnDone(fn func(error)) Option {
	return func(o *options) {
		o.onDone = fn
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrictMarkers makes a marker missing from an existing script or markup
// file an error instead of a warning.
func WithStrictMarkers(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithConfigFunc sets the module loader function called by synthesized script
// and markup content. Defaults to "requirejs.config".
func WithConfigFunc(name string) Option {
	return func(o *options) {
		o.configFunc = name
	}
}
