package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// ZapLogger adapts a zap logger to dirtree.Logger. Verbose maps to debug level.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger. Panics if logger is nil.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ZapLogger{sugar: logger.Sugar()}
}

// NewJSONLogger builds a ZapLogger emitting JSON lines to stderr.
// Debug entries are enabled when verbose is true.
func NewJSONLogger(verbose bool) *ZapLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return NewZapLogger(zap.New(core))
}

func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ dirtree.Logger = (*ZapLogger)(nil)
