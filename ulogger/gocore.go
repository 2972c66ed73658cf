package ulogger

import (
	"github.com/ordishs/gocore"
)

type GoCoreLogger struct {
	*gocore.Logger
}

func NewGoCoreLogger(service string, options ...Option) *GoCoreLogger {
	if service == "" {
		service = "ringselect"
	}

	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	return &GoCoreLogger{gocore.Log(service, gocore.NewLogLevelFromString(opts.logLevel))}
}

func (g *GoCoreLogger) New(service string, _ ...Option) Logger {
	return &GoCoreLogger{gocore.Log(service, g.Logger.GetLogLevel())}
}

// Duplicate shares the underlying gocore logger, whose level is fixed at creation.
func (g *GoCoreLogger) Duplicate(_ ...Option) Logger {
	return &GoCoreLogger{g.Logger}
}

func (g *GoCoreLogger) SetLogLevel(_ string) {
	// noop, has to be set when creating
}
