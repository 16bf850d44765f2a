package logger

import (
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// L is the global logger for scripts and the CLI. Everything wired through fx
// receives its logger by injection instead.
var L *Logger

// NewLogger creates and returns a new Logger instance
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(levelFromConfig(cfg))

	if cfg != nil && cfg.Deployment.Mode == types.ModeLocal {
		zapConfig.Development = true
		zapConfig.Sampling = nil
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

func levelFromConfig(cfg *config.Configuration) zapcore.Level {
	if cfg == nil {
		return zapcore.InfoLevel
	}

	switch cfg.Logging.Level {
	case types.LogLevelDebug:
		return zapcore.DebugLevel
	case types.LogLevelWarn:
		return zapcore.WarnLevel
	case types.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}

// GetLogger returns the global logger, creating a no-op one if initialisation failed
func GetLogger() *Logger {
	if L == nil {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}
	return L
}

// With returns a child logger carrying the given structured fields
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}
