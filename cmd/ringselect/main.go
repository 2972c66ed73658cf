// Package main provides ringselect, a command-line front end to the decoy engine.
//
// Usage:
//
//	ringselect sample --input sample.json
//	ringselect build < build.json
//
// Both commands read a JSON request from --input (or stdin) and write a JSON response
// to stdout. Logs go to stderr.
package main

import (
	"context"
	"os"

	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/bsv-blockchain/ringselect/tracing"
	"github.com/bsv-blockchain/ringselect/ulogger"
)

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New(tSettings.ServiceName,
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithWriter(os.Stderr),
		ulogger.WithPretty(tSettings.PrettyLogs),
	)

	shutdown, err := tracing.InitOtelTracer(context.Background(), tSettings)
	if err != nil {
		logger.Fatalf("failed to initialise tracing: %v", err)
	}

	app := newApp(tSettings, logger)

	err = app.Run(os.Args)

	if shutdown != nil {
		if sErr := shutdown(context.Background()); sErr != nil {
			logger.Warnf("failed to flush traces: %v", sErr)
		}
	}

	if err != nil {
		logger.Fatalf("%v", err)
	}
}
