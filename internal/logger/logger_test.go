package logger_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"town-explorer/internal/logger"
)

func TestLinesAreKeptInOrder(t *testing.T) {
	l := logger.NewNop()
	l.Log("first")
	l.Warn("plot fallback", zap.Int("plot", 99))
	l.Error("boom")

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "first"))
	assert.True(t, strings.HasSuffix(lines[1], "warn: plot fallback"))
	assert.True(t, strings.HasSuffix(lines[2], "error: boom"))
}

func TestLinesAreCapped(t *testing.T) {
	l := logger.NewNop()
	for i := 0; i < 600; i++ {
		l.Log("x")
	}
	assert.Len(t, l.Lines(), 500)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "town.log")
	l, err := logger.New(path, zapcore.InfoLevel)
	require.NoError(t, err)
	l.Info("hello", zap.String("k", "v"))
	_ = l.Sync()
	assert.FileExists(t, path)
}

func TestWithSharesConsoleLines(t *testing.T) {
	l := logger.NewNop()
	child := l.With(zap.String("session", "abc"))
	child.Info("from child")
	l.Info("from parent")

	assert.Len(t, l.Lines(), 2)
	assert.Equal(t, l.Lines(), child.Lines())
}
