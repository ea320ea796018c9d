// logger.go — Leveled, optionally colored progress logging to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level represents log level
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var (
	globalMu      sync.RWMutex
	globalLevel             = LevelInfo
	globalColored           = true
	globalOut     io.Writer = os.Stderr
)

var (
	styleTrace  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	styleDebug  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5DADE2"))
	styleInfo   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58D68D"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EC7063")).Bold(true)
	stylePrefix = lipgloss.NewStyle().Faint(true)
)

// Logger writes messages tagged with a component prefix.
type Logger struct {
	prefix string
}

// New creates a new logger with the given prefix
func New(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// SetGlobalLevel sets the minimum level that is written.
func SetGlobalLevel(level Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLevel = level
}

// ParseLevel converts a string to a Level, returning an error if unrecognized.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (valid: trace, debug, info, warn, error)", s)
}

// SetColored enables or disables colored output
func SetColored(colored bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalColored = colored
}

// SetOutput redirects all loggers. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	globalOut = w
}

func (l *Logger) log(level Level, label string, style lipgloss.Style, format string, args ...any) {
	globalMu.RLock()
	if level < globalLevel {
		globalMu.RUnlock()
		return
	}
	colored, out := globalColored, globalOut
	globalMu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if colored {
		fmt.Fprintf(out, "%s %s %s\n", style.Render("["+label+"]"), stylePrefix.Render(l.prefix+":"), msg)
		return
	}
	fmt.Fprintf(out, "[%s] %s: %s\n", label, l.prefix, msg)
}

// Trace logs a trace message (most verbose)
func (l *Logger) Trace(format string, args ...any) {
	l.log(LevelTrace, "TRACE", styleTrace, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, "DEBUG", styleDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, "INFO", styleInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, "WARN", styleWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, "ERROR", styleError, format, args...)
}
