package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init replaces the package logger. Safe to call once at startup; callers
// that log before Init get a production logger built lazily.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func sugar() *zap.SugaredLogger {
	once.Do(func() {
		if global == nil {
			l, err := zap.NewProduction()
			if err != nil {
				panic(err)
			}
			global = l.Sugar()
		}
	})
	return global
}

func Infof(_ context.Context, format string, args ...interface{}) {
	sugar().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	sugar().Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	sugar().Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	sugar().Fatal(err)
}

func Sync() {
	_ = sugar().Sync()
}
