package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	l    *zap.Logger
	once sync.Once
)

// Init builds the global logger. Production encoding by default,
// human-readable when APP_DEBUG is set by the caller passing debug=true.
func Init(debug bool) {
	once.Do(func() {
		var err error
		if debug {
			l, err = zap.NewDevelopment()
		} else {
			l, err = zap.NewProduction()
		}
		if err != nil {
			panic(err)
		}
	})
}

// L returns the global logger, initializing a production one if needed.
func L() *zap.Logger {
	if l == nil {
		Init(false)
	}
	return l
}

// Sync flushes buffered entries. Called on shutdown.
func Sync() { _ = L().Sync() }

func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
