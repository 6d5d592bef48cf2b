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
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every configuration validation failure, so callers
// can match the whole class with errors.Is.
var ErrInvalidConfig = errors.New("invalid logger configuration")

// ErrDispatcherStopped is returned by enqueue attempts after shutdown has
// completed. Producers get a fast failure rather than a silent drop.
var ErrDispatcherStopped = errors.New("dispatcher stopped")

// ShutdownTimeoutError reports that a shutdown drain did not finish within
// the requested bound. Undrained counts the records still queued when the
// consumer was force stopped.
type ShutdownTimeoutError struct {
	Undrained int
}

func (e *ShutdownTimeoutError) Error() string {
	return fmt.Sprintf("shutdown drain timed out with %d records undrained", e.Undrained)
}
