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

// DefaultPath is the log file path, relative to the working directory (project root when run via go run ./cmd/game).
const DefaultPath = "logs/town.log"

// maxLines caps the in-memory history the console draws.
const maxLines = 500

// Logger keeps recent lines in memory for the on-screen console and writes every entry as a
// structured record through zap.
type Logger struct {
	zl  *zap.Logger
	buf *buffer
}

type buffer struct {
	mu    sync.Mutex
	lines []string
}

// New returns a Logger that appends JSON records to path (created with its directory if needed).
// An empty path logs to stderr only.
func New(path string, level zapcore.Level) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{"stderr"}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &Logger{zl: zl, buf: &buffer{}}, nil
}

// NewNop returns a Logger that only keeps lines in memory. Used by tests.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop(), buf: &buffer{}}
}

// With returns a Logger that adds fields to every record and shares the console lines.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zl: l.zl.With(fields...), buf: l.buf}
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Log records a console line (e.g. typed input or a command result) and an info record.
func (l *Logger) Log(line string) {
	l.remember(line)
	l.zl.Info(line)
}

// Info records an info entry and shows it in the console.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.remember(msg)
	l.zl.Info(msg, fields...)
}

// Warn records a non-fatal inconsistency. It shows up in the console prefixed with "warn:".
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.remember("warn: " + msg)
	l.zl.Warn(msg, fields...)
}

// Error records an error entry.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.remember("error: " + msg)
	l.zl.Error(msg, fields...)
}

// Lines returns a copy of the stored console lines, oldest first.
func (l *Logger) Lines() []string {
	l.buf.mu.Lock()
	defer l.buf.mu.Unlock()
	out := make([]string, len(l.buf.lines))
	copy(out, l.buf.lines)
	return out
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func (l *Logger) remember(line string) {
	stamped := "[" + time.Now().Format("15:04:05") + "] " + line
	b := l.buf
	b.mu.Lock()
	b.lines = append(b.lines, stamped)
	if len(b.lines) > maxLines {
		b.lines = b.lines[len(b.lines)-maxLines:]
	}
	b.mu.Unlock()
}
