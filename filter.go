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

import "strings"

// Filter inspects or enriches a record before it is queued.
//
// Filters run synchronously on the producer goroutine ahead of enqueue, so
// they must be cheap and non-blocking. Returning false drops the record
// before any sink sees it.
type Filter func(*Record) bool

// DefaultMask is the replacement text RedactFilter substitutes for matched
// sensitive substrings.
const DefaultMask = "******"

// RedactFilter returns a filter that masks every occurrence of secret in the
// record's message. Attributes are not inspected; redaction applies to the
// message field only.
func RedactFilter(secret, mask string) Filter {
	if mask == "" {
		mask = DefaultMask
	}
	return func(r *Record) bool {
		if secret != "" && strings.Contains(r.Message, secret) {
			r.Message = strings.ReplaceAll(r.Message, secret, mask)
		}
		return true
	}
}

// ContextFilter returns a filter that appends the given attributes to every
// record, e.g. a session or user identifier shared process-wide.
func ContextFilter(attrs ...Attr) Filter {
	return func(r *Record) bool {
		r.Attrs = append(r.Attrs, attrs...)
		return true
	}
}

// LevelFilter returns a filter that rejects records below min. It is a
// cheaper alternative to a second logger when one call path needs a stricter
// threshold than the logger's own minimum.
func LevelFilter(min Level) Filter {
	return func(r *Record) bool {
		return r.Level >= min
	}
}

func defaultFilters() []Filter {
	return []Filter{RedactFilter("password", DefaultMask)}
}
