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
	"os"
	"sync"
)

// Sink is a terminal destination for rendered log text.
//
// The dispatcher's single consumer is the only writer of a sink once it is
// attached to a logger, so implementations need no internal ordering
// guarantees beyond a write mutex for direct (synchronous mode) use.
type Sink interface {
	// Write delivers one rendered record, newline included.
	Write(p []byte) error
	// Format reports the serialization this sink expects.
	Format() Formatter
	// Flush forces any buffered output to the destination.
	Flush() error
	// Close flushes and releases the sink's resources.
	Close() error
}

// ConsoleSink writes rendered lines synchronously to a terminal stream.
//
// It never propagates write failures to the caller: an I/O error is reported
// once to the internal fallback stream and the line is dropped.
type ConsoleSink struct {
	mu     sync.Mutex
	out    io.Writer
	format Formatter
	err    errorOnce
}

// NewConsoleSink constructs a console sink writing to w, or standard output
// when w is nil.
func NewConsoleSink(w io.Writer, format Formatter) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{out: w, format: format}
}

// Write delivers one rendered line to the console stream, best effort.
func (s *ConsoleSink) Write(p []byte) error {
	s.mu.Lock()
	_, err := s.out.Write(p)
	s.mu.Unlock()
	s.err.report(err)
	return nil
}

// Format reports the serialization this sink expects.
func (s *ConsoleSink) Format() Formatter { return s.format }

// Flush is a no-op; console writes are unbuffered.
func (s *ConsoleSink) Flush() error { return nil }

// Close is a no-op; the console stream is not owned by the sink.
func (s *ConsoleSink) Close() error { return nil }

// errorOnce reports sink errors to the fallback stream, deduplicating
// consecutive identical failures so a wedged destination cannot flood stderr.
type errorOnce struct {
	mu   sync.Mutex
	last string
}

func (e *errorOnce) report(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	e.mu.Lock()
	repeat := msg == e.last
	e.last = msg
	e.mu.Unlock()
	if !repeat {
		fmt.Fprintf(os.Stderr, "lantern: sink error: %v\n", err)
	}
}
