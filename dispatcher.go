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
	"sync"
	"sync/atomic"
	"time"
)

// dispatcher states. Transitions only move forward:
// running -> draining -> stopped.
const (
	dispatcherRunning int32 = iota
	dispatcherDraining
	dispatcherStopped
)

// dispatcher decouples producer call sites from sink I/O.
//
// Records enter an unbounded FIFO guarded by a mutex; a single consumer
// goroutine drains it in enqueue order, rendering each record once per
// enabled sink and writing the result. Producers therefore never block on
// I/O; enqueue is an O(1) append under a briefly held lock. A write failure
// is reported once to the internal fallback and the record is dropped for
// that sink only; delivery is never retried.
//
// In synchronous mode (no consumer goroutine) dispatch runs inline under the
// same mutex, which also serializes sink writes.
type dispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []*Record
	state   atomic.Int32
	busy    bool
	taken   atomic.Int64
	sinks   []Sink
	async   bool
	done    chan struct{}
	sinkErr errorOnce
}

func newDispatcher(sinks []Sink, async bool) *dispatcher {
	d := &dispatcher{
		sinks: sinks,
		async: async,
		done:  make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	if async {
		go d.run()
	} else {
		close(d.done)
	}
	return d
}

// enqueue hands a record to the consumer, or dispatches it inline in
// synchronous mode. After shutdown it fails fast with ErrDispatcherStopped.
func (d *dispatcher) enqueue(r *Record) error {
	d.mu.Lock()
	if d.state.Load() != dispatcherRunning {
		d.mu.Unlock()
		putRecord(r)
		return ErrDispatcherStopped
	}

	if !d.async {
		// Inline dispatch; the held mutex is the single-writer discipline.
		d.dispatch(r)
		d.mu.Unlock()
		return nil
	}

	d.queue = append(d.queue, r)
	d.mu.Unlock()
	// Broadcast rather than Signal: the consumer and sync waiters share the
	// condition variable.
	d.cond.Broadcast()
	return nil
}

func (d *dispatcher) run() {
	defer close(d.done)

	for {
		d.mu.Lock()
		for len(d.queue) == 0 && d.state.Load() == dispatcherRunning {
			d.cond.Wait()
		}
		if d.state.Load() == dispatcherStopped || (len(d.queue) == 0 && d.state.Load() == dispatcherDraining) {
			d.mu.Unlock()
			return
		}

		// Take the whole batch so producers contend only for the append.
		batch := d.queue
		d.queue = nil
		d.busy = true
		d.taken.Store(int64(len(batch)))
		d.mu.Unlock()

		for i, r := range batch {
			// The force stop must take effect mid-batch, not at the next
			// batch boundary: once the state is stopped, nothing may touch
			// a sink again, because shutdown is about to close them.
			if d.state.Load() == dispatcherStopped {
				for _, rest := range batch[i:] {
					putRecord(rest)
				}
				return
			}
			d.dispatch(r)
			d.taken.Add(-1)
		}
		d.flushSinks()

		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
		d.cond.Broadcast()
	}
}

// dispatch renders a record for each sink and writes it, then returns the
// record to the pool.
func (d *dispatcher) dispatch(r *Record) {
	for _, s := range d.sinks {
		b := getBuffer()
		formatRecord(b, r, s.Format())
		d.sinkErr.report(s.Write(b.B))
		putBuffer(b)
	}
	putRecord(r)
}

func (d *dispatcher) flushSinks() {
	for _, s := range d.sinks {
		d.sinkErr.report(s.Flush())
	}
}

// shutdown transitions to draining, waits for the queue to empty, then closes
// every sink. A positive wait bounds the drain; on expiry the consumer is
// force stopped and the undrained record count is reported via
// ShutdownTimeoutError. Subsequent enqueues fail fast in either case.
func (d *dispatcher) shutdown(wait time.Duration) error {
	d.mu.Lock()
	if d.state.Load() == dispatcherStopped {
		d.mu.Unlock()
		return nil
	}
	d.state.Store(dispatcherDraining)
	d.mu.Unlock()
	d.cond.Broadcast()

	timedOut := false
	if wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-d.done:
		case <-t.C:
			timedOut = true
		}
	} else {
		<-d.done
	}

	// The transition happens under the mutex so sync waiters checking the
	// state cannot miss the wakeup.
	d.mu.Lock()
	d.state.Store(dispatcherStopped)
	d.mu.Unlock()
	d.cond.Broadcast()

	// The consumer checks the stopped state per record, so this wait is
	// short; it must complete before the sinks close, because the consumer
	// is the only goroutine allowed to touch them while it lives.
	<-d.done

	d.mu.Lock()
	// Count both the waiting queue and the batch still in the consumer's
	// hands when the drain deadline expired. None of them reach a sink.
	undrained := len(d.queue) + int(d.taken.Load())
	for _, r := range d.queue {
		putRecord(r)
	}
	d.queue = nil
	d.mu.Unlock()

	d.closeSinks()

	if timedOut {
		return &ShutdownTimeoutError{Undrained: undrained}
	}
	return nil
}

func (d *dispatcher) closeSinks() {
	for _, s := range d.sinks {
		d.sinkErr.report(s.Close())
	}
}

// sync blocks until every record enqueued before the call has reached its
// sinks and the sinks have flushed.
func (d *dispatcher) sync() {
	if !d.async {
		d.mu.Lock()
		d.flushSinks()
		d.mu.Unlock()
		return
	}

	d.mu.Lock()
	for (len(d.queue) > 0 || d.busy) && d.state.Load() != dispatcherStopped {
		d.cond.Wait()
	}
	d.mu.Unlock()
}
