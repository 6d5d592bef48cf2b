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
	"sync"
	"sync/atomic"
)

type contextKey struct{ string }

// _contextKeyInstance is the internal key used to store a logger in a context.
var _contextKeyInstance = contextKey{"log"}

var (
	_defaultLogger     atomic.Pointer[Logger]
	_defaultLoggerOnce sync.Once
)

// Default returns the global default Logger instance.
//
// It initializes a synchronous console-only logger at InfoLevel if one does
// not already exist. Use this for simple applications or quick debugging
// where dependency injection is unnecessary.
func Default() *Logger {
	dl := _defaultLogger.Load()
	if dl == nil {
		_defaultLoggerOnce.Do(func() {
			l, err := New("default", Config{Console: true})
			if err != nil {
				return
			}
			_defaultLogger.CompareAndSwap(nil, l)
		})
		dl = _defaultLogger.Load()
	}
	return dl
}

// SetDefault replaces the global default Logger with the provided instance.
//
// It safely swaps the underlying pointer and shuts the previous Logger down
// if one existed.
func SetDefault(logger *Logger) {
	old := _defaultLogger.Swap(logger)
	if old != nil {
		old.Shutdown()
	}
}

// WithContext adds a logger to a context.
//
// It returns a new context that contains the provided logger. Use this
// function to pass a specific logger down your application's call stack
// without changing your function signatures.
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, _contextKeyInstance, logger)
}

// FromContext retrieves the logger from a context.
//
// If the context contains a logger, this function returns it. If the context
// does not contain a logger, it returns the default logger instead, so
// callers always receive a working logger.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(_contextKeyInstance).(*Logger); ok {
		return logger
	}
	return Default()
}
