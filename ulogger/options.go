package ulogger

import (
	"io"
	"os"
)

type Options struct {
	logLevel   string
	loggerType string
	writer     io.Writer
	pretty     bool
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

func DefaultOptions() *Options {
	return &Options{
		logLevel:   "INFO",
		loggerType: "zerolog",
		writer:     os.Stdout,
		pretty:     true,
	}
}

// WithLevel sets the minimum level that is written.
func WithLevel(level string) Option {
	return func(o *Options) {
		o.logLevel = level
	}
}

// WithLoggerType selects the backend: "zerolog" (default) or "gocore".
func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}

// WithPretty switches between the console writer and plain JSON lines.
func WithPretty(pretty bool) Option {
	return func(o *Options) {
		o.pretty = pretty
	}
}
