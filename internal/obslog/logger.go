// Package obslog wires a single structured logger for the CLI and HTTP
// server, so every entry point logs dictionary-load and request events the
// same way instead of each inventing its own format. Individual lookups are
// not logged.
package obslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger = zap.NewNop()

// Init builds and installs the global logger. level is one of "debug",
// "info", "warn", "error"; json selects JSON encoding over the human
// console encoder.
func Init(level string, json bool) error {
	l, err := New(level, json)
	if err != nil {
		return err
	}
	global = l
	return nil
}

// New builds a logger without installing it globally, for callers that
// want a scoped instance (tests, for example).
func New(level string, json bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)
	return zap.New(core), nil
}

// L returns the global logger. Safe to call before Init; returns a no-op
// logger until Init is called.
func L() *zap.Logger {
	return global
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = global.Sync()
}
