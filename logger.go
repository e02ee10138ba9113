package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level labels with symbols — widths tuned so columns align.
type Level string

const (
	LevelInfo    Level = "ℹ  info   "
	LevelWarning Level = "⚠  warning"
	LevelError   Level = "✖  error  "
	LevelSuccess Level = "✔  success"
)

// color returns the ANSI code for the level, empty for uncolored levels.
func (lv Level) color() string {
	switch lv {
	case LevelWarning:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	}
	return ""
}

// Logger components
const (
	ComponentHTTPServer = "HTTP SERVER"
	ComponentStore      = "STORE"
	ComponentUploads    = "UPLOADS"
)

// Logger prints component-tagged console lines for requests and store
// diagnostics.
type Logger struct {
	out io.Writer
}

func NewLogger() *Logger {
	return &Logger{out: os.Stdout}
}

// RequestReceived prints the first line of a request's log block.
func (l *Logger) RequestReceived(method, path string) {
	fmt.Fprintf(l.out, "[%s] %s %s %s   Request received\n",
		ComponentHTTPServer, strings.ToLower(method), path, LevelInfo)
}

func (l *Logger) log(component string, level Level, message string) {
	if c := level.color(); c != "" {
		fmt.Fprintf(l.out, "    [%s] %s%s\033[0m   %s\n", component, c, level, message)
		return
	}
	fmt.Fprintf(l.out, "    [%s] %s   %s\n", component, level, message)
}

func (l *Logger) Info(component, message string) {
	l.log(component, LevelInfo, message)
}

func (l *Logger) Warning(component, message string) {
	l.log(component, LevelWarning, message)
}

func (l *Logger) Error(component, message string) {
	l.log(component, LevelError, message)
}

func (l *Logger) Success(component, message string) {
	l.log(component, LevelSuccess, message)
}

// RespondWith logs the status code a handler is about to answer with.
func (l *Logger) RespondWith(statusCode int) {
	l.Info(ComponentHTTPServer, fmt.Sprintf("> Responding with \"%d\"", statusCode))
}

// RedirectTo logs the redirect target of an admin action.
func (l *Logger) RedirectTo(location string) {
	l.Info(ComponentHTTPServer, fmt.Sprintf("> Redirecting to %s", location))
}
