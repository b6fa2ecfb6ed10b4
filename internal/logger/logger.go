// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger holds the process-wide structured logger. Diagnostics go to
// stderr so that command output on stdout stays clean.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It discards everything until Initialize is called.
var Logger = zap.NewNop().Sugar()

// Initialize configures Logger. level is one of debug, info, warn, error.
// jsonOutput selects the production JSON encoding instead of console text.
func Initialize(level string, jsonOutput bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "invalid log level %q", level),
			"use one of debug, info, warn, error",
		)
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl)
	Logger = zap.New(core).Sugar()
	return nil
}

// Set replaces Logger, returning a function that restores the previous one.
// Tests use it with an observer core.
func Set(l *zap.SugaredLogger) (restore func()) {
	prev := Logger
	Logger = l
	return func() { Logger = prev }
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
