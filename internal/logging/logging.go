// Package logging provides the console logger used for run progress and
// the non-fatal warnings emitted while a tree is being walked.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Logger is the minimal logging surface the traversal code depends on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	debugTag = color.New(color.FgCyan)
	infoTag  = color.New(color.FgGreen)
	warnTag  = color.New(color.FgYellow)
	errorTag = color.New(color.FgRed)
)

// ConsoleLogger writes timestamped, level-filtered lines to a writer.
// Color is enabled only when writing to a stdout/stderr terminal.
type ConsoleLogger struct {
	writer io.Writer
	level  int
	mu     sync.Mutex
	color  bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given minimum
// level. Valid levels are debug, info, warn, error (case-insensitive);
// anything else defaults to info.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer: w,
		level:  parseLevel(level),
		color:  isTerminal(w),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// isTerminal reports whether w is a terminal that supports color. The color
// package's NoColor already folds in TTY detection and the NO_COLOR
// convention, so it is consulted directly for the standard streams.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func (l *ConsoleLogger) logf(level int, tag string, c *color.Color, format string, args ...any) {
	if l == nil || l.writer == nil || level < l.level {
		return
	}

	label := tag
	if l.color {
		label = c.Sprint(tag)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s %s\n", time.Now().Format("15:04:05"), label, fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.logf(levelDebug, "DEBUG", debugTag, format, args...)
}

func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.logf(levelInfo, "INFO", infoTag, format, args...)
}

func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.logf(levelWarn, "WARN", warnTag, format, args...)
}

func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.logf(levelError, "ERROR", errorTag, format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger { return nopLogger{} }
