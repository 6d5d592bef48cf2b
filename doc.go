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

// Package lantern provides structured, leveled logging with colorized console
// output, size-based file rotation, and asynchronous non-blocking dispatch.
//
// Call sites hand records to a per-logger dispatcher whose single background
// consumer renders and writes them, so logging never blocks on sink I/O.
// Records carry their true call site, resolved with a fixed-depth stack walk,
// plus process and goroutine identity and an open attribute set. A filter
// chain masks sensitive substrings and injects process-wide context before a
// record is queued; per-sink formatters render plain text, severity-colored
// text, or JSON Lines.
//
// Loggers are acquired through a Registry that caches one logger and sink set
// per name:
//
//	log, err := lantern.GetLogger("training", lantern.Config{
//		Console: true,
//		File:    true,
//		Async:   true,
//	})
//	if err != nil {
//		// handle setup failure
//	}
//	defer lantern.Shutdown("training")
//
//	log.Info("epoch finished", "epoch", 3, "loss", 0.042)
//
// The logging path is fail-safe by construction: sink write failures are
// reported to an internal fallback stream and never propagate into the
// instrumented application's control flow.
package lantern
