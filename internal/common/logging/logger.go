// Package logging is the structured logger shared by every package. Records
// go through a zap core; callers only see Logger and Field.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface handed to stores, sessions and handlers
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	WithFields(fields ...Field) Logger
	WithContext(ctx context.Context) Logger
}

// Field is one key-value pair attached to a record
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// LogLevel is the minimum severity a logger writes
type LogLevel = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// ParseLevel reads LOG_LEVEL style names. "warning" is accepted for warn;
// blank and unknown names give InfoLevel.
func ParseLevel(name string) LogLevel {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return WarnLevel
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil || level > ErrorLevel {
		return InfoLevel
	}
	return level
}

// LogConfig selects level, destination and logger name
type LogConfig struct {
	Level  LogLevel
	Output io.Writer // nil means stdout
	Name   string
}

type holder struct{ Logger }

var global atomic.Value

// SetGlobalLogger replaces the process logger
func SetGlobalLogger(logger Logger) {
	global.Store(holder{logger})
}

// GetGlobalLogger returns the process logger, installing an info-level stdout one on first use
func GetGlobalLogger() Logger {
	if h, ok := global.Load().(holder); ok {
		return h.Logger
	}
	global.CompareAndSwap(nil, holder{NewDefaultLogger()})
	return global.Load().(holder).Logger
}

// NewDefaultLogger creates an info-level stdout logger
func NewDefaultLogger() Logger {
	logger, err := NewZapLogger(LogConfig{Level: InfoLevel})
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default zap logger: %v", err))
	}
	return logger
}

// InitGlobalLogger installs the process logger. An empty file keeps output on stdout.
func InitGlobalLogger(level, file string) error {
	var out io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", file, err)
		}
		out = f
	}

	logger, err := NewZapLogger(LogConfig{
		Level:  ParseLevel(level),
		Output: out,
		Name:   "pipeline-studio",
	})
	if err != nil {
		return err
	}
	SetGlobalLogger(logger)

	logger.Info("Logger initialized",
		String("level", ParseLevel(level).String()),
		String("log_file", file),
	)
	return nil
}

// MustSync flushes buffered entries of the global logger; call before exit
func MustSync() {
	if zapLogger, ok := GetGlobalLogger().(*ZapAdapter); ok {
		_ = zapLogger.Sync()
	}
}

// Info logs through the process logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Error logs through the process logger
func Error(msg string, err error, fields ...Field) {
	GetGlobalLogger().Error(msg, err, fields...)
}
