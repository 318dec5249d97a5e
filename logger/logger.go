package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Development mode switches to the
// human-friendly console encoder.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// ParseLevel accepts zap level names as well as the WARNING and CRITICAL
// spellings used by other logging stacks. CRITICAL maps to error so a
// journal entry can never terminate the process.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	switch strings.ToUpper(name) {
	case "WARNING":
		return zapcore.WarnLevel, nil
	case "CRITICAL":
		return zapcore.ErrorLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, err
	}
	if lvl > zapcore.ErrorLevel {
		lvl = zapcore.ErrorLevel
	}
	return lvl, nil
}
