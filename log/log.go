// Package log provides the runtime's logging abstraction, backed by zap.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level specifies the minimum severity a logger emits.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger generates lines of output to an io.Writer.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug(args ...any)
	// Debugf starts a new formatted message with debug level.
	Debugf(format string, args ...any)
	// Info starts a new message with info level.
	Info(args ...any)
	// Infof starts a new formatted message with info level.
	Infof(format string, args ...any)
	// Warn starts a new message with warn level.
	Warn(args ...any)
	// Warnf starts a new formatted message with warn level.
	Warnf(format string, args ...any)
	// Error starts a new message with error level.
	Error(args ...any)
	// Errorf starts a new formatted message with error level.
	Errorf(format string, args ...any)
}

var (
	// DefaultLogger emits info and above to stderr.
	DefaultLogger = New(InfoLevel, os.Stderr)
	// DiscardLogger drops every message.
	DiscardLogger Logger = &zapLogger{sugar: zap.NewNop().Sugar()}
)

// zapLogger implements Logger with zap as the underlying library.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// New creates a Logger writing entries at or above level to w.
func New(level Level, w io.Writer) Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zapcore.Level(level),
	)
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

func (l *zapLogger) Debug(args ...any) {
	l.sugar.Debug(args...)
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(args ...any) {
	l.sugar.Info(args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(args ...any) {
	l.sugar.Warn(args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(args ...any) {
	l.sugar.Error(args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
