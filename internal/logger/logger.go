package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/platformer.txt"

// maxLines caps the in-memory history shown by the debug overlay.
const maxLines = 256

// Logger keeps recent lines in memory and appends every line to a file on disk.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	echo  bool
}

// New returns a Logger writing to path (LogFilePath when empty) and ensures its directory exists.
// When echo is set, lines are also written to stderr.
func New(path string, echo bool) *Logger {
	if path == "" {
		path = LogFilePath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0), echo: echo}
}

// Log appends a line prefixed with [timestamp].
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.append("[" + ts + "] " + line)
}

// Write lets the logger back a slog handler. Each newline-terminated record becomes one line.
func (l *Logger) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(bytes.TrimRight(p, "\n")), "\n") {
		l.append(line)
	}
	return len(p), nil
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = l.lines[len(l.lines)-maxLines:]
	}
	l.mu.Unlock()

	if l.echo {
		_, _ = os.Stderr.WriteString(line + "\n")
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(line + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Slog returns a structured logger whose records are stored as lines of this Logger.
func (l *Logger) Slog(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
}
