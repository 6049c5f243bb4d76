package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the zap-backed Logger from config. Invalid settings fall back
// to sane defaults rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		if cfg.ColorEnabled {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding == "json" || cfg.Encoding == "console" {
		zapCfg.Encoding = cfg.Encoding
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// NewNop returns a Logger that discards everything. For tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *zapLogger) Debugf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(_ context.Context, args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *zapLogger) Infof(_ context.Context, format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(_ context.Context, args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *zapLogger) Warnf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(_ context.Context, args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *zapLogger) Errorf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
