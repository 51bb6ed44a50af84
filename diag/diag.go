// Package diag renders check diagnostics as single lines on an output
// stream. It implements slog.Handler so checkers log through the
// standard structured logging API while keeping the line shape
// "Error at line <N>", optionally followed by the failure cause.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Attribute keys recognized by the handler.
const (
	// LineKey carries the source line of the failing check.
	LineKey = "line"
	// CauseKey carries the failure cause, when one is available.
	CauseKey = "cause"
)

// Handler formats diagnostic records onto a single io.Writer. Writes
// are serialized, so one Handler may back several loggers.
type Handler struct {
	mu *sync.Mutex
	w  io.Writer
}

// NewHandler creates a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w}
}

// Enabled reports whether the handler handles records at the given
// level. Diagnostics are emitted at error level only.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

// Handle writes the record as one diagnostic line. A record with a
// cause attribute renders as "Error at line <N>: <cause>"; without
// one the line ends bare.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var line int64
	var cause error
	record.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case LineKey:
			line = attr.Value.Int64()
		case CauseKey:
			if err, ok := attr.Value.Any().(error); ok {
				cause = err
			}
		}
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	if cause != nil {
		_, err := fmt.Fprintf(h.w, "Error at line %d: %v\n", line, cause)
		return err
	}
	_, err := fmt.Fprintf(h.w, "Error at line %d\n", line)
	return err
}

// WithAttrs returns the handler unchanged; diagnostic lines carry no
// preformatted attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged.
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}
