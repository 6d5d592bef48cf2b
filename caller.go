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

import "runtime"

// facadeDepth is the number of stack frames between resolveCaller and the
// frame that invoked a public level method. The fixed call path is:
//
//	0 resolveCaller
//	1 Logger.emit
//	2 the exported level method (Info, Warning, Log, EndTimer, ...)
//	3 the originating call site
//
// Every exported entry point that produces a record must call emit directly,
// with no extra private helpers in between; caller_test.go pins this depth
// for each entry point so that adding a wrapper layer fails loudly instead of
// silently misattributing call sites.
const facadeDepth = 3

// Sentinel caller values reported when the stack is shallower than the fixed
// facade depth, e.g. when a level method is invoked from a trampoline.
const (
	callerUnknownFile = "unknown"
	callerUnknownFunc = "unknown"
	callerUnknownLine = -1
)

// resolveCaller identifies the file, line, and function of the frame skip
// levels above it.
//
// It uses runtime.Caller for maximum performance, avoiding the heavy
// allocation overhead associated with runtime.CallersFrames. Shallow stacks
// degrade to sentinel values rather than failing.
func resolveCaller(skip int) (file string, line int, fn string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return callerUnknownFile, callerUnknownLine, callerUnknownFunc
	}
	fn = callerUnknownFunc
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return file, line, fn
}
