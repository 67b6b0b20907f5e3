package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger handles application logging. Until Init is called it only writes to
// stderr, and only when verbose output was requested.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	verbose bool
	zl      *zap.Logger
	fields  []zap.Field
}

// NewLogger creates a new Logger instance
func NewLogger(verbose bool, fields ...zap.Field) *Logger {
	l := &Logger{verbose: verbose, fields: fields}
	l.zl = l.build()
	return l
}

// Init starts logging to a file in logDir. Each run of the day gets its own file:
// deckgen_2006-01-02_1.log, deckgen_2006-01-02_2.log, ...
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.zl.Sync()
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("deckgen_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("deckgen_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.zl = l.build()
	l.zl.Info("logging started", zap.String("file", filename))
	return nil
}

func (l *Logger) build() *zap.Logger {
	var cores []zapcore.Core

	if l.file != nil {
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(l.file), zapcore.DebugLevel))
	}
	if l.verbose {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.DebugLevel))
	}
	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...)).With(l.fields...)
}

// Zap exposes the underlying structured logger for packages that take a *zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

// Log writes a message with optional structured fields
func (l *Logger) Log(message string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Info(message, fields...)
}

// Logf writes a formatted message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Info(fmt.Sprintf(format, args...))
}

// Error writes an error-level message carrying err
func (l *Logger) Error(message string, err error, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Error(message, append(fields, zap.Error(err))...)
}

// Close flushes and closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.zl.Info("logging stopped")
		_ = l.zl.Sync()
		l.file.Close()
		l.file = nil
		l.zl = l.build()
	}
}
