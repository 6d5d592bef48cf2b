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

import "time"

// DefaultTimeFormat specifies the standard timestamp layout used when no
// custom format is provided. It matches the layout used in rotated file names.
const DefaultTimeFormat = "2006-01-02-15-04-05"

var _smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendInt appends an integer to a byte slice, zero padded to the specified width.
func appendInt(b []byte, v int, width int) []byte {
	u := uint(v)
	if width == 2 && u < 100 {
		i := u * 2
		return append(b, _smallsString[i], _smallsString[i+1])
	}

	if u == 0 && width <= 1 {
		return append(b, '0')
	}

	// Assemble decimal in reverse order.
	var buf [20]byte
	i := len(buf)
	for u > 0 || width > 0 {
		i--
		q := u / 10
		buf[i] = byte('0' + u - q*10)
		u = q
		width--
	}
	return append(b, buf[i:]...)
}

// appendTime formats a time.Time value and appends it to a byte slice.
//
// It uses a custom, zero allocation encoder for the default layout and falls
// back to the standard library for anything else.
func appendTime(b []byte, t time.Time, format string) []byte {
	if format != DefaultTimeFormat {
		return t.AppendFormat(b, format)
	}

	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	y := uint(year)
	if y < 10000 {
		i := (y / 100) * 2
		b = append(b, _smallsString[i], _smallsString[i+1])
		i = (y % 100) * 2
		b = append(b, _smallsString[i], _smallsString[i+1])
	} else {
		b = appendInt(b, year, 4)
	}

	b = append(b, '-')
	i := uint(month) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')
	i = uint(day) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')
	i = uint(hour) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')
	i = uint(min) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')
	i = uint(sec) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	return b
}
