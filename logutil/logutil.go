// Package logutil wraps zap with a process-wide structured logger so
// packages log through one call site instead of threading a logger
// everywhere.
package logutil

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init installs the global logger. Call once at startup; the default is
// a no-op logger so library use stays silent.
func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// NewDevelopmentLogger builds a human-readable logger for tools and
// tests.
func NewDevelopmentLogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

// Info logs at info level.
func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

// Error logs at error level.
func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}
