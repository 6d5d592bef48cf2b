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
	"time"
)

// Attr is a single key/value attribute attached to a Record.
//
// Attributes keep their insertion order, so rendered output is stable across
// sinks and runs.
type Attr struct {
	Key   string
	Value any
}

// ExceptionInfo describes an error captured alongside a Record.
//
// Stack holds the pre-rendered trace frames. Rendering happens once on the
// producer side so formatters stay pure.
type ExceptionInfo struct {
	Kind    string
	Message string
	Stack   string
}

// Record encapsulates all the data associated with a single log event.
//
// Producers populate a Record completely before handing it to the dispatcher;
// after enqueue nothing mutates it. Message arguments are merged before
// enqueue, so the consumer never touches caller-owned values.
//
// Performance Note: Records are pooled to eliminate allocations during high
// throughput logging. The dispatcher returns each Record to the pool once
// every enabled sink has received its rendering.
type Record struct {
	Time       time.Time
	LoggerName string
	Message    string
	File       string
	Line       int
	Function   string
	PID        int
	Goroutine  int64
	Exception  *ExceptionInfo
	Attrs      []Attr
	Level      Level
}

var _recordPool = sync.Pool{
	New: func() any {
		return &Record{
			Attrs: make([]Attr, 0, 8),
		}
	},
}

func getRecord() *Record {
	return _recordPool.Get().(*Record)
}

func putRecord(r *Record) {
	r.Attrs = r.Attrs[:0]
	r.Exception = nil
	r.Message = ""
	r.File = ""
	r.Function = ""
	r.Line = 0
	_recordPool.Put(r)
}

// Attr returns the value for key and whether it is present.
func (r *Record) Attr(key string) (any, bool) {
	for i := range r.Attrs {
		if r.Attrs[i].Key == key {
			return r.Attrs[i].Value, true
		}
	}
	return nil, false
}

// AddAttr appends a key/value attribute to the record.
//
// It is intended for filters enriching a record before enqueue; once the
// record is queued it must not be called.
func (r *Record) AddAttr(key string, value any) {
	r.Attrs = append(r.Attrs, Attr{Key: key, Value: value})
}
