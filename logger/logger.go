package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// filePrefix names the per-run log files: slidedeck_<date>_<n>.log
const filePrefix = "slidedeck"

// Logger handles run logging. Output always goes to the console writer, and
// also to a per-run file once Init has been called.
type Logger struct {
	mu      sync.Mutex
	level   zap.AtomicLevel
	console zapcore.WriteSyncer
	file    *os.File
	zl      *zap.Logger
}

// NewLogger creates a Logger writing to w. Debug entries are kept only when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	l := &Logger{level: level, console: zapcore.AddSync(w)}
	l.zl = l.build()
	return l
}

// NewStderr creates a Logger writing to standard error.
func NewStderr(verbose bool) *Logger {
	return NewLogger(zapcore.Lock(os.Stderr), verbose)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func (l *Logger) build() *zap.Logger {
	sink := l.console
	if l.file != nil {
		sink = zapcore.NewMultiWriteSyncer(l.console, zapcore.AddSync(l.file))
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), sink, l.level)
	return zap.New(core)
}

// Init starts logging to a new file in logDir. Loggers handed out by Zap or
// Named before Init do not write to the file.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.zl.Sync()
		l.file.Close()
		l.file = nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("%s_%s_*.log", filePrefix, dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("%s_%s_%d.log", filePrefix, dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.zl = l.build()
	l.zl.Info("run started", zap.String("log", filename))
	return nil
}

// Path returns the current log file, or "" when logging to the console only.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Zap returns the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

// Named returns a child logger for a component.
func (l *Logger) Named(name string) *zap.Logger {
	return l.Zap().Named(name)
}

// Log writes an info message
func (l *Logger) Log(message string) {
	l.Zap().Info(message)
}

// Logf writes a formatted info message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Zap().Sugar().Infof(format, args...)
}

// Close flushes the logger and closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.zl.Info("run finished")
		_ = l.zl.Sync()
		l.file.Close()
		l.file = nil
		l.zl = l.build()
		return
	}
	_ = l.zl.Sync()
}
