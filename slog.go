// Copyright (c) 2026 lantern
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package lantern

import (
	"context"
	"log/slog"
)

// SlogHandler adapts a Logger to satisfy the standard library's slog.Handler
// interface, so code instrumented with log/slog reaches the same filter
// chain, dispatcher, and sinks.
type SlogHandler struct {
	logger *Logger
	attrs  []any
	group  string
}

// NewSlogHandler initializes a new SlogHandler using the provided Logger.
func NewSlogHandler(logger *Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled determines if the handler should process records at the specified
// slog.Level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.level.enabled(slogLevelToLantern(level))
}

// Handle processes a slog.Record, converting it into a lantern record.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	level := slogLevelToLantern(r.Level)

	keyvals := make([]any, 0, 2*r.NumAttrs()+len(h.attrs))
	keyvals = append(keyvals, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		keyvals = append(keyvals, h.qualify(a.Key), a.Value.Resolve().Any())
		return true
	})

	h.logger.Log(level, r.Message, keyvals...)
	return nil
}

// WithAttrs creates a new SlogHandler that includes the specified attributes
// in every log entry.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]any, 0, len(h.attrs)+2*len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	for _, a := range attrs {
		newAttrs = append(newAttrs, h.qualify(a.Key), a.Value.Resolve().Any())
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup creates a new SlogHandler that prefixes all subsequent attribute
// keys with the specified group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	newGroup := h.group
	if newGroup != "" {
		newGroup += "." + name
	} else {
		newGroup = name
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

func (h *SlogHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func slogLevelToLantern(l slog.Level) Level {
	switch {
	case l >= slog.LevelError+4:
		return CriticalLevel
	case l >= slog.LevelError:
		return ErrorLevel
	case l >= slog.LevelWarn:
		return WarningLevel
	case l >= slog.LevelInfo:
		return InfoLevel
	default:
		return DebugLevel
	}
}
