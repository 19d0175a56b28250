package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger composes filters and handlers into a line-oriented pipeline.
//
// A line is delivered only when every filter matches it; a logger with
// no filters passes everything. All handlers receive the line, and a
// handler failure is written to the error writer without affecting the
// other handlers or the caller.
type Logger struct {
	filters  []Filter
	handlers []Handler
	errOut   io.Writer
}

// New creates a logger with the given filters and handlers.
func New(filters []Filter, handlers ...Handler) *Logger {
	return &Logger{
		filters:  filters,
		handlers: handlers,
		errOut:   os.Stderr,
	}
}

// SetErrorOutput redirects handler failure reports, mainly for tests.
func (l *Logger) SetErrorOutput(w io.Writer) {
	l.errOut = w
}

// AddHandler appends a handler to the pipeline.
func (l *Logger) AddHandler(h Handler) {
	l.handlers = append(l.handlers, h)
}

// Log sends one line through the pipeline.
func (l *Logger) Log(text string) {
	for _, f := range l.filters {
		if !f.Match(text) {
			return
		}
	}
	for _, h := range l.handlers {
		if err := h.Handle(text); err != nil {
			fmt.Fprintf(l.errOut, "log handler %T: %v\n", h, err)
		}
	}
}

// Logf formats and logs one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}
