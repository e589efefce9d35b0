package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestSink returns a zap-backed sink wired to an in-memory core, plus
// the observed logs for asserting on emissions.
func NewTestSink() (Sink, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewZapSink(zap.New(core), true), logs
}

// NewConsoleSink returns a debug sink rendering to stdout with the
// development encoder. Handy in example programs and manual test runs.
func NewConsoleSink() Sink {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return NewZapSink(zap.New(consoleCore), true)
}
