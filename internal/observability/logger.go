package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap behind the small Info/Error surface the services depend on
// while still exposing the structured logger to the HTTP middleware.
type Logger struct {
	zap *zap.Logger
}

func NewLogger(production bool) *Logger {
	level := zapcore.DebugLevel
	encoding := "console"
	if production {
		level = zapcore.InfoLevel
		encoding = "json"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			TimeKey:     "time",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return &Logger{zap: logger}
}

func (l *Logger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.zap.Error(msg)
}

func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

func (l *Logger) Sync() {
	_ = l.zap.Sync()
}
