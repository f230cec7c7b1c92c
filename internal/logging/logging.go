// Package logging provides the zap-backed logger used by the command line.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured, key-value logger.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes human readable logs to stderr so stdout can carry
// rendered subtitles. Verbose enables debug output, otherwise only
// warnings and errors are shown.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return NewNop()
	}
	return &Logger{l.Sugar()}
}

// New wraps an existing core.
func New(core zapcore.Core) *Logger {
	return &Logger{zap.New(core).Sugar()}
}

func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
