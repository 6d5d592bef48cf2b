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

import "strconv"

// Formatter selects the serialization format a sink receives.
type Formatter int

const (
	// PlainFormatter serializes records as human readable text.
	PlainFormatter Formatter = iota
	// ColorFormatter serializes records as text wrapped in a severity color.
	ColorFormatter
	// JSONFormatter serializes records as one JSON object per line.
	JSONFormatter
)

// formatRecord renders a record onto a pooled buffer in the given format.
// Formatting never mutates the record.
func formatRecord(b *buffer, r *Record, f Formatter) {
	switch f {
	case JSONFormatter:
		formatJSON(b, r)
	case ColorFormatter:
		formatColor(b, r)
	default:
		formatPlain(b, r)
	}
}

// formatPlain renders "<file> <line> : <timestamp> <LEVEL>: <message>" plus
// an exception block for records carrying one.
func formatPlain(b *buffer, r *Record) {
	appendPlain(b, r)
	b.WriteByte('\n')
}

func appendPlain(b *buffer, r *Record) {
	b.WriteString(r.File)
	b.WriteByte(' ')
	b.B = strconv.AppendInt(b.B, int64(r.Line), 10)
	b.WriteString(" : ")
	b.B = appendTime(b.B, r.Time, DefaultTimeFormat)
	b.WriteByte(' ')
	b.WriteString(r.Level.String())
	b.WriteString(": ")
	b.WriteString(r.Message)

	for i := range r.Attrs {
		b.WriteByte(' ')
		b.WriteString(r.Attrs[i].Key)
		b.WriteByte('=')
		b.WriteString(formatAny(r.Attrs[i].Value))
	}

	if r.Exception != nil && r.Level >= ErrorLevel {
		appendExceptionText(b, r.Exception)
	}
}

// formatColor renders the plain content wrapped in the ANSI color selected by
// the record's level, with the reset appended before the newline.
func formatColor(b *buffer, r *Record) {
	line := getBuffer()
	appendPlain(line, r)

	st := _defaultStyles
	if style, ok := st.Levels[r.Level]; ok {
		b.WriteString(style.Render(string(line.B)))
	} else {
		b.Write(line.B)
	}
	putBuffer(line)

	b.WriteByte('\n')
}

func appendExceptionText(b *buffer, exc *ExceptionInfo) {
	b.WriteString("\nException")
	if exc.Kind != "" {
		b.WriteString(" (")
		b.WriteString(exc.Kind)
		b.WriteByte(')')
	}
	if exc.Message != "" {
		b.WriteString(": ")
		b.WriteString(exc.Message)
	}
	if exc.Stack != "" {
		b.WriteByte('\n')
		b.WriteString(exc.Stack)
	}
}

// formatJSON renders one JSON object with keys time, level, file, line,
// message, the populated attributes, and an exception object when present.
func formatJSON(b *buffer, r *Record) {
	b.B = append(b.B, '{', '"', 't', 'i', 'm', 'e', '"', ':', '"')
	b.B = appendTime(b.B, r.Time, DefaultTimeFormat)
	b.B = append(b.B, '"', ',')

	b.B = append(b.B, r.Level.JSONField()...)

	b.B = append(b.B, ',', '"', 'f', 'i', 'l', 'e', '"', ':')
	appendJSONString(b, r.File)

	b.B = append(b.B, ',', '"', 'l', 'i', 'n', 'e', '"', ':')
	b.B = strconv.AppendInt(b.B, int64(r.Line), 10)

	b.B = append(b.B, ',', '"', 'm', 'e', 's', 's', 'a', 'g', 'e', '"', ':')
	appendJSONString(b, r.Message)

	for i := range r.Attrs {
		appendJSONKey(b, r.Attrs[i].Key, true)
		appendJSONAny(b, r.Attrs[i].Value)
	}

	if r.Exception != nil && r.Level >= ErrorLevel {
		b.B = append(b.B, `,"exception":{"kind":`...)
		appendJSONString(b, r.Exception.Kind)
		b.B = append(b.B, `,"message":`...)
		appendJSONString(b, r.Exception.Message)
		b.B = append(b.B, `,"stack":`...)
		appendJSONString(b, r.Exception.Stack)
		b.B = append(b.B, '}')
	}

	b.B = append(b.B, '}', '\n')
}
