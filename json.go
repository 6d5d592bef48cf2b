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
	"math"
	"strconv"
	"time"
)

var _noEscape [256]bool

func init() {
	for i := 0; i <= 0x1f; i++ {
		_noEscape[i] = true
	}
	_noEscape['"'] = true
	_noEscape['\\'] = true
}

var _hex = "0123456789abcdef"

// appendJSONKey appends a JSON key to the buffer without allocating memory.
func appendJSONKey(b *buffer, s string, prependComma bool) {
	if prependComma {
		b.B = append(b.B, ',', '"')
	} else {
		b.B = append(b.B, '"')
	}
	for i := 0; i < len(s); i++ {
		if _noEscape[s[i]] {
			b.B = append(b.B, s[:i]...)
			appendJSONStringEscape(b, s, i)
			b.B = append(b.B, '"', ':')
			return
		}
	}
	b.B = append(b.B, s...)
	b.B = append(b.B, '"', ':')
}

// appendJSONString appends a properly escaped JSON string to the buffer
// without allocating memory. It uses chunked memory copies, mirroring Zap's
// safeSet approach.
func appendJSONString(b *buffer, s string) {
	b.B = append(b.B, '"')
	for i := 0; i < len(s); i++ {
		if _noEscape[s[i]] {
			b.B = append(b.B, s[:i]...)
			appendJSONStringEscape(b, s, i)
			b.B = append(b.B, '"')
			return
		}
	}
	b.B = append(b.B, s...)
	b.B = append(b.B, '"')
}

func appendJSONStringEscape(b *buffer, s string, i int) {
	start := i
	for ; i < len(s); i++ {
		if _noEscape[s[i]] {
			if start < i {
				b.B = append(b.B, s[start:i]...)
			}
			c := s[i]
			switch c {
			case '"':
				b.B = append(b.B, '\\', '"')
			case '\\':
				b.B = append(b.B, '\\', '\\')
			case '\n':
				b.B = append(b.B, '\\', 'n')
			case '\r':
				b.B = append(b.B, '\\', 'r')
			case '\t':
				b.B = append(b.B, '\\', 't')
			case '\b':
				b.B = append(b.B, '\\', 'b')
			case '\f':
				b.B = append(b.B, '\\', 'f')
			default:
				b.B = append(b.B, '\\', 'u', '0', '0', _hex[c>>4], _hex[c&0xF])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		b.B = append(b.B, s[start:]...)
	}
}

// appendJSONAny appends an attribute value to the buffer as JSON without
// allocating for the scalar types a Record may carry.
func appendJSONAny(b *buffer, v any) {
	switch val := v.(type) {
	case nil:
		b.B = append(b.B, "null"...)
	case string:
		appendJSONString(b, val)
	case int:
		b.B = strconv.AppendInt(b.B, int64(val), 10)
	case int64:
		b.B = strconv.AppendInt(b.B, val, 10)
	case int32:
		b.B = strconv.AppendInt(b.B, int64(val), 10)
	case uint:
		b.B = strconv.AppendUint(b.B, uint64(val), 10)
	case uint64:
		b.B = strconv.AppendUint(b.B, val, 10)
	case bool:
		b.B = strconv.AppendBool(b.B, val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			b.B = append(b.B, "null"...)
		} else {
			b.B = strconv.AppendFloat(b.B, val, 'f', -1, 64)
		}
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			b.B = append(b.B, "null"...)
		} else {
			b.B = strconv.AppendFloat(b.B, float64(val), 'f', -1, 32)
		}
	case error:
		appendJSONString(b, val.Error())
	case time.Duration:
		b.B = strconv.AppendInt(b.B, int64(val), 10)
	case time.Time:
		b.B = append(b.B, '"')
		b.B = appendTime(b.B, val, DefaultTimeFormat)
		b.B = append(b.B, '"')
	default:
		appendJSONString(b, formatAny(val))
	}
}
