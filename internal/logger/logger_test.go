package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogStoresAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path, false)

	l.Log("first")
	l.Log("second")

	lines := l.Lines()
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "] first"))
	require.True(t, strings.HasPrefix(lines[1], "["))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestSlogWritesThroughLogger(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "out.txt"), false)
	log := l.Slog(slog.LevelInfo).With("area", "Game")

	log.Debug("hidden")
	log.Info("level loaded", "obstacles", 7)

	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "area=Game")
	require.Contains(t, lines[0], "obstacles=7")
	require.Contains(t, lines[0], `msg="level loaded"`)
}

func TestLinesAreCapped(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "out.txt"), false)
	for i := 0; i < maxLines+10; i++ {
		l.Log("x")
	}
	require.Len(t, l.Lines(), maxLines)
}
