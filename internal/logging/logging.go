// Package logging provides the operator-facing logger used across the application.
// It is separate from the audit logs the retention run writes.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/raoulx24/backup-pruner/internal/config"
)

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

// ZapLogger adapts a zap sugared logger to Logger.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// New builds a stderr logger from the logging config.
func New(cfg config.LoggingConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format == "console" {
		encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         cfg.Format,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoder,
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return FromZap(l), nil
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{s: l.Sugar()}
}

// Nop discards everything.
func Nop() *ZapLogger {
	return FromZap(zap.NewNop())
}

func (z *ZapLogger) Debug(msg string, kv ...any) { z.s.Debugw(msg, kv...) }
func (z *ZapLogger) Info(msg string, kv ...any)  { z.s.Infow(msg, kv...) }
func (z *ZapLogger) Warn(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }
func (z *ZapLogger) Error(msg string, kv ...any) { z.s.Errorw(msg, kv...) }

func (z *ZapLogger) With(kv ...any) Logger {
	return &ZapLogger{s: z.s.With(kv...)}
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func (z *ZapLogger) Sync() {
	_ = z.s.Sync()
}
