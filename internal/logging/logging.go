package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a logger writing to stderr. With verbose enabled,
// debug-level messages are included.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return NewNop()
	}
	return &Logger{logger.Sugar()}
}

// NewNop returns a logger that discards everything. Used as the
// default when no logger is supplied.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
