// Package logging provides the filter-and-handler log pipeline used by
// the input engine and the CLI.
//
// A Logger gates each line through all of its filters (AND) and then
// fans it out to every handler. Handlers are independent strategies:
// console, append-only file, TCP socket, or syslog-style prefix output.
// A failing handler is reported on the error writer and never aborts
// the operation that triggered the log line.
package logging
