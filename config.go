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
	"fmt"
	"io"
	"time"
)

// Config describes a Logger at construction time.
//
// A Config is fixed once the Logger is built; changing the minimum level via
// SetLevel is the only permitted live change.
type Config struct {
	// MinLevel is the lowest level the Logger emits. Defaults to InfoLevel
	// via the zero value.
	MinLevel Level

	// Console enables the console sink.
	Console bool

	// ConsoleOutput overrides the console destination. Defaults to standard
	// output. Useful for tests.
	ConsoleOutput io.Writer

	// File enables the rotating file sink.
	File bool

	// Dir is the directory the file sink writes into. Defaults to the
	// current working directory.
	Dir string

	// Structured switches the file sink to one JSON object per line instead
	// of plain text.
	Structured bool

	// MaxBytes bounds the current log file's size before rotation.
	// Defaults to 10 MiB.
	MaxBytes int64

	// BackupCount is the number of rotated generations to retain.
	// Defaults to 5.
	BackupCount int

	// Async routes records through the background dispatcher. When false,
	// sink writes happen inline on the calling goroutine.
	Async bool

	// DrainTimeout bounds the shutdown drain. Zero waits indefinitely.
	DrainTimeout time.Duration

	// Filters replaces the default filter chain. The default chain masks the
	// literal "password" in messages.
	Filters []Filter
}

const (
	defaultMaxBytes    = 10 * 1024 * 1024
	defaultBackupCount = 5
)

// withDefaults returns a copy of the config with zero values filled in.
func (c Config) withDefaults() Config {
	if c.MaxBytes == 0 {
		c.MaxBytes = defaultMaxBytes
	}
	if c.BackupCount == 0 {
		c.BackupCount = defaultBackupCount
	}
	if c.Filters == nil {
		c.Filters = defaultFilters()
	}
	return c
}

// validate rejects configurations no sink set can be built from. Errors wrap
// ErrInvalidConfig and are fatal to the construction call only.
func (c Config) validate() error {
	if !c.Console && !c.File {
		return fmt.Errorf("%w: no sinks enabled", ErrInvalidConfig)
	}
	if c.MinLevel < DebugLevel || c.MinLevel > CriticalLevel {
		return fmt.Errorf("%w: unknown level %d", ErrInvalidConfig, c.MinLevel)
	}
	if c.File {
		if c.MaxBytes < 0 {
			return fmt.Errorf("%w: max bytes must not be negative", ErrInvalidConfig)
		}
		if c.BackupCount < 0 {
			return fmt.Errorf("%w: backup count must not be negative", ErrInvalidConfig)
		}
	}
	return nil
}
