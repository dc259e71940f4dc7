// Package logger configures the diagnostic zap logger.
//
// Diagnostic logs are separate from the user-facing console output rendered
// by the tui package: they are written to stderr, are silent unless -v is
// passed, and describe what mcpc is doing internally (probes, external
// commands, files written).
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: user-facing console output only
	VerbosityInfo  = 1 // -v: + pipeline steps, resolved configuration
	VerbosityDebug = 2 // -vv: + every probe, external command and file write
)

var (
	// Logger is the process-wide logger. It is a no-op until Initialize is called.
	Logger *zap.SugaredLogger = zap.NewNop().Sugar()
	// JSONOutput reports whether Initialize selected the JSON encoder.
	JSONOutput bool
)

// Initialize replaces the global Logger according to the verbosity flag count.
func Initialize(verbosity int, jsonOutput bool) error {
	Logger = New(verbosity, jsonOutput, os.Stderr)
	JSONOutput = jsonOutput && verbosity > VerbosityUser
	return nil
}

// New builds a sugared logger writing to w. Verbosity 0 yields a no-op logger.
func New(verbosity int, jsonOutput bool, w io.Writer) *zap.SugaredLogger {
	if verbosity <= VerbosityUser {
		return zap.NewNop().Sugar()
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	return zap.New(core).Sugar()
}

// VerbosityToLevel maps verbosity flags (-v, -vv) to zap log levels.
//
//	0 (none) -> WarnLevel
//	1 (-v)   -> InfoLevel
//	2+ (-vv) -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Sync flushes the global logger, ignoring the EINVAL returned for
// terminals and pipes.
func Sync() {
	_ = Logger.Sync()
}
