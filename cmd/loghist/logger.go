package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a terse, unleveled-by-time logger writing to
// stderr: the CLI is a short-lived process, so the usual
// production-encoder timestamp just adds noise to its output.
func newLogger(stderr io.Writer) *zap.SugaredLogger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core).Sugar()
}
