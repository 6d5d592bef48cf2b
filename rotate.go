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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RotatingFileSink appends rendered lines to a size-bounded log file and
// rolls it over numbered backup generations.
//
// The file name is generated once at construction as
// "<base>_<YYYY-MM-DD-HH-MM-SS>.log". After a write pushes the file past
// maxBytes, the generations shift (<file>.1 becomes <file>.2 and so on), the
// oldest beyond backupCount is discarded, the just-written file becomes
// <file>.1, and a fresh current file is opened. With backupCount zero the
// current file is simply truncated.
//
// All methods are called from the dispatcher's single consumer, so the size
// counter and file handle need no locking.
type RotatingFileSink struct {
	path        string
	file        *os.File
	size        int64
	maxBytes    int64
	backupCount int
	format      Formatter
	err         errorOnce
}

// NewRotatingFileSink opens a fresh timestamped log file under dir.
func NewRotatingFileSink(dir, base string, format Formatter, maxBytes int64, backupCount int) (*RotatingFileSink, error) {
	name := fmt.Sprintf("%s_%s.log", base, time.Now().Format(DefaultTimeFormat))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	s := &RotatingFileSink{
		path:        path,
		file:        f,
		maxBytes:    maxBytes,
		backupCount: backupCount,
		format:      format,
	}
	if info, err := f.Stat(); err == nil {
		s.size = info.Size()
	}
	return s, nil
}

// Path returns the current file's path. Backup generations live at
// Path()+".1" through Path()+".<backupCount>".
func (s *RotatingFileSink) Path() string { return s.path }

// Write appends one rendered line, then rolls the file over if the write
// pushed it past the size bound.
func (s *RotatingFileSink) Write(p []byte) error {
	if s.file == nil {
		return fmt.Errorf("write to closed log file %s", s.path)
	}

	n, err := s.file.Write(p)
	s.size += int64(n)
	if err != nil {
		return fmt.Errorf("write log file %s: %w", s.path, err)
	}

	if s.maxBytes > 0 && s.size > s.maxBytes {
		if err := s.rotate(); err != nil {
			return fmt.Errorf("rotate log file %s: %w", s.path, err)
		}
	}
	return nil
}

// rotate shifts the backup generations and reopens a fresh current file.
func (s *RotatingFileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return err
	}
	s.file = nil

	if s.backupCount > 0 {
		// Oldest generation falls off; missing generations are fine.
		os.Remove(s.generation(s.backupCount))
		for i := s.backupCount - 1; i >= 1; i-- {
			src := s.generation(i)
			if _, err := os.Stat(src); err == nil {
				if err := os.Rename(src, s.generation(i+1)); err != nil {
					return err
				}
			}
		}
		if err := os.Rename(s.path, s.generation(1)); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	s.file = f
	s.size = 0
	return nil
}

func (s *RotatingFileSink) generation(n int) string {
	return s.path + "." + strconv.Itoa(n)
}

// Format reports the serialization this sink expects.
func (s *RotatingFileSink) Format() Formatter { return s.format }

// Flush forces buffered data to stable storage.
func (s *RotatingFileSink) Flush() error {
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

// Close flushes and closes the current file. Further writes fail.
func (s *RotatingFileSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
