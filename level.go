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
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Level represents a logging priority.
//
// Higher levels indicate more severe conditions. A Logger discards records
// with a level lower than its configured minimum.
type Level int8

const (
	// DebugLevel designates fine grained informational events that are most
	// useful to debug an application.
	DebugLevel Level = iota - 1
	// InfoLevel designates informational messages that highlight the progress
	// of the application at coarse grained level. This is the default level.
	InfoLevel
	// WarningLevel designates potentially harmful situations.
	WarningLevel
	// ErrorLevel designates error events that might still allow the
	// application to continue running.
	ErrorLevel
	// CriticalLevel designates very severe error events that will presumably
	// lead the application to abort.
	CriticalLevel
)

// JSONField returns the formatted JSON key-value pair for the level.
//
// It provides a zero allocation string (e.g., `"level":"INFO"`) for the JSON
// formatter to use during serialization.
func (l Level) JSONField() string {
	switch l {
	case DebugLevel:
		return `"level":"DEBUG"`
	case InfoLevel:
		return `"level":"INFO"`
	case WarningLevel:
		return `"level":"WARNING"`
	case ErrorLevel:
		return `"level":"ERROR"`
	case CriticalLevel:
		return `"level":"CRITICAL"`
	}
	return fmt.Sprintf(`"level":"%s"`, l.String())
}

// String returns the uppercase ASCII representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// MarshalText serializes the Level to text.
//
// It returns the uppercase string representation of the level (e.g., "INFO").
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText deserializes text into a Level.
//
// It accepts uppercase or lowercase string representations (e.g., "INFO" or
// "info"). This facilitates configuring log levels via config files or flags.
func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToUpper(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *Level) unmarshalText(text []byte) bool {
	switch string(text) {
	case "debug", "DEBUG":
		*l = DebugLevel
	case "info", "INFO", "": // make the zero value useful
		*l = InfoLevel
	case "warning", "WARNING", "warn", "WARN":
		*l = WarningLevel
	case "error", "ERROR":
		*l = ErrorLevel
	case "critical", "CRITICAL":
		*l = CriticalLevel
	default:
		return false
	}
	return true
}

// ParseLevel converts a string into a Level.
//
// It accepts uppercase or lowercase string representations. It returns an
// error if the string does not match a known level.
func ParseLevel(text string) (Level, error) {
	var l Level
	err := l.UnmarshalText([]byte(text))
	return l, err
}

// levelState holds the minimum-level word on its own cache line so the
// hot-path level gate never shares a line with neighboring logger state.
type levelState struct {
	_   cpu.CacheLinePad
	val atomic.Int64
	_   cpu.CacheLinePad
}

func (s *levelState) enabled(l Level) bool {
	return s.val.Load() <= int64(l)
}
