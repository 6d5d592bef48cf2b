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
	"runtime"
	"strconv"
	"strings"
)

const maxTraceDepth = 8

// captureStack renders the current call stack into trace text, skipping the
// given number of frames above it. The text is captured on the producer side
// so that formatters remain pure functions of the record.
func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip+2, pcs[:]) // +2 for runtime.Callers and captureStack
	if n == 0 {
		return ""
	}

	b := getBuffer()
	writeStacktrace(b, pcs[:n])
	s := strings.TrimRight(string(b.B), "\n")
	putBuffer(b)
	return s
}

// writeStacktrace processes program counters into human readable trace lines.
//
// It avoids string splitting and regular expressions, relying entirely on
// runtime.CallersFrames.
//
//go:noinline
func writeStacktrace(b *buffer, pcs []uintptr) {
	if len(pcs) == 0 {
		return
	}

	frames := runtime.CallersFrames(pcs)
	rendered := 0

	for {
		frame, more := frames.Next()

		// ignore standard library internals and test runners.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}

		// ignore our own library frames unless we are running tests.
		if strings.Contains(frame.Function, "lantern") && !strings.HasSuffix(frame.File, "_test.go") {
			if !more {
				break
			}
			continue
		}

		if rendered >= maxTraceDepth {
			break
		}

		// isolate the function name from its package path.
		fn := frame.Function
		if idx := strings.LastIndexByte(fn, '/'); idx >= 0 {
			fn = fn[idx+1:]
		}
		if idx := strings.IndexByte(fn, '.'); idx >= 0 {
			fn = fn[idx+1:]
		}

		b.WriteString("   at ")
		b.WriteString(fn)
		b.WriteByte(' ')
		b.WriteString(frame.File + ":" + strconv.Itoa(frame.Line))
		b.WriteByte('\n')

		rendered++
		if !more {
			break
		}
	}
}
