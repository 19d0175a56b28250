package logging

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/fatih/color"
)

// Handler delivers a log line to one destination.
type Handler interface {
	Handle(text string) error
}

// ConsoleHandler writes lines to a terminal-aware writer, optionally
// styled.
type ConsoleHandler struct {
	Out   io.Writer
	Style *color.Color
}

// NewConsoleHandler creates a console handler writing to color.Output.
func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{Out: color.Output}
}

// WithStyle sets the color style applied to every line.
func (h *ConsoleHandler) WithStyle(style *color.Color) *ConsoleHandler {
	h.Style = style
	return h
}

// Handle writes the line followed by a newline.
func (h *ConsoleHandler) Handle(text string) error {
	out := h.Out
	if out == nil {
		out = color.Output
	}
	var err error
	if h.Style != nil {
		_, err = h.Style.Fprintln(out, text)
	} else {
		_, err = fmt.Fprintln(out, text)
	}
	return err
}

// FileHandler appends lines to a file, opening and closing it per line
// so the document stays durable even if the process dies.
type FileHandler struct {
	Path string
}

// NewFileHandler creates a file handler appending to path.
func NewFileHandler(path string) *FileHandler {
	return &FileHandler{Path: path}
}

// Handle appends the line to the file.
func (h *FileHandler) Handle(text string) error {
	f, err := os.OpenFile(h.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", h.Path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, text); err != nil {
		return fmt.Errorf("writing log %s: %w", h.Path, err)
	}
	return nil
}

// SocketHandler ships each line over a fresh TCP connection.
type SocketHandler struct {
	Addr    string
	Timeout time.Duration
}

// NewSocketHandler creates a socket handler for a host:port address.
func NewSocketHandler(addr string) *SocketHandler {
	return &SocketHandler{Addr: addr, Timeout: 5 * time.Second}
}

// Handle dials the address and sends the line.
func (h *SocketHandler) Handle(text string) error {
	conn, err := net.DialTimeout("tcp", h.Addr, h.Timeout)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", h.Addr, err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintln(conn, text); err != nil {
		return fmt.Errorf("sending to %s: %w", h.Addr, err)
	}
	return nil
}

// FilteredHandler gates a single handler behind its own filters,
// leaving the rest of the pipeline unfiltered.
type FilteredHandler struct {
	Filters []Filter
	Handler Handler
}

// Handle forwards the line when every filter matches it.
func (h *FilteredHandler) Handle(text string) error {
	for _, f := range h.Filters {
		if !f.Match(text) {
			return nil
		}
	}
	return h.Handler.Handle(text)
}

// SyslogHandler writes lines in a syslog-style prefixed form.
type SyslogHandler struct {
	Ident string
	Out   io.Writer
}

// NewSyslogHandler creates a syslog-style handler with the given ident.
func NewSyslogHandler(ident string) *SyslogHandler {
	return &SyslogHandler{Ident: ident, Out: os.Stdout}
}

// Handle writes the prefixed line.
func (h *SyslogHandler) Handle(text string) error {
	out := h.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "[SYSLOG] %s: %s\n", h.Ident, text)
	return err
}
