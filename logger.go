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
	"sync"
	"time"
)

// Logger is the public, leveled logging facade.
//
// It owns a record builder, a filter chain, and a dispatcher feeding the
// configured sinks; there is no inheritance relationship to any platform
// logging primitive. All methods are safe for concurrent use. A level method
// below the configured minimum returns before caller resolution or record
// construction, so disabled log statements stay near zero cost.
type Logger struct {
	level *levelState

	name     string
	filters  []Filter
	disp     *dispatcher
	fileSink *RotatingFileSink

	timerMu sync.Mutex
	timers  map[string]time.Time

	drainTimeout time.Duration
}

// New constructs a standalone Logger from the given configuration.
//
// Most applications acquire loggers through a Registry instead, which
// deduplicates sink sets by name; New always builds fresh sinks.
func New(name string, cfg Config) (*Logger, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var sinks []Sink
	var fileSink *RotatingFileSink

	if cfg.Console {
		sinks = append(sinks, NewConsoleSink(cfg.ConsoleOutput, ColorFormatter))
	}
	if cfg.File {
		format := PlainFormatter
		if cfg.Structured {
			format = JSONFormatter
		}
		fs, err := NewRotatingFileSink(cfg.Dir, name, format, cfg.MaxBytes, cfg.BackupCount)
		if err != nil {
			return nil, err
		}
		fileSink = fs
		sinks = append(sinks, fs)
	}

	l := &Logger{
		level:        &levelState{},
		name:         name,
		filters:      cfg.Filters,
		disp:         newDispatcher(sinks, cfg.Async),
		fileSink:     fileSink,
		timers:       make(map[string]time.Time),
		drainTimeout: cfg.DrainTimeout,
	}
	l.level.val.Store(int64(cfg.MinLevel))
	return l, nil
}

// Name returns the logger's registry name.
func (l *Logger) Name() string { return l.name }

// FileName returns the current log file's path, or "" without a file sink.
func (l *Logger) FileName() string {
	if l.fileSink == nil {
		return ""
	}
	return l.fileSink.Path()
}

// Level retrieves the current minimum logging level.
func (l *Logger) Level() Level {
	return Level(l.level.val.Load())
}

// SetLevel changes the minimum logging level dynamically.
//
// It uses atomic operations to ensure thread safety. This is the only
// configuration change permitted after construction.
func (l *Logger) SetLevel(level Level) {
	l.level.val.Store(int64(level))
}

// SetLevelName changes the minimum logging level from its string name.
//
// Unknown names are rejected without changing the current level.
func (l *Logger) SetLevelName(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	l.SetLevel(level)
	return nil
}

// Debug writes a message at DebugLevel with key-value attribute pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.level.enabled(DebugLevel) {
		return
	}
	l.emit(DebugLevel, msg, keyvals, nil)
}

// Info writes a message at InfoLevel with key-value attribute pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	if !l.level.enabled(InfoLevel) {
		return
	}
	l.emit(InfoLevel, msg, keyvals, nil)
}

// Warning writes a message at WarningLevel with key-value attribute pairs.
func (l *Logger) Warning(msg string, keyvals ...any) {
	if !l.level.enabled(WarningLevel) {
		return
	}
	l.emit(WarningLevel, msg, keyvals, nil)
}

// Error writes a message at ErrorLevel with key-value attribute pairs.
//
// If one of the values is an error, its type, message, and the current stack
// are captured as the record's exception block.
func (l *Logger) Error(msg string, keyvals ...any) {
	if !l.level.enabled(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, msg, keyvals, nil)
}

// Critical writes a message at CriticalLevel with key-value attribute pairs.
//
// If one of the values is an error, its type, message, and the current stack
// are captured as the record's exception block.
func (l *Logger) Critical(msg string, keyvals ...any) {
	if !l.level.enabled(CriticalLevel) {
		return
	}
	l.emit(CriticalLevel, msg, keyvals, nil)
}

// Log writes a message at the specified level with key-value attribute pairs.
func (l *Logger) Log(level Level, msg string, keyvals ...any) {
	if !l.level.enabled(level) {
		return
	}
	l.emit(level, msg, keyvals, nil)
}

// Debugf formats and writes a message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.level.enabled(DebugLevel) {
		return
	}
	l.emit(DebugLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Infof formats and writes a message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) {
	if !l.level.enabled(InfoLevel) {
		return
	}
	l.emit(InfoLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Warningf formats and writes a message at WarningLevel.
func (l *Logger) Warningf(format string, args ...any) {
	if !l.level.enabled(WarningLevel) {
		return
	}
	l.emit(WarningLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Errorf formats and writes a message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) {
	if !l.level.enabled(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Criticalf formats and writes a message at CriticalLevel.
func (l *Logger) Criticalf(format string, args ...any) {
	if !l.level.enabled(CriticalLevel) {
		return
	}
	l.emit(CriticalLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Exception writes a message at ErrorLevel carrying err's type, message, and
// the current stack as an explicit exception block.
//
// A nil err yields an empty exception block rather than a failure.
func (l *Logger) Exception(msg string, err error) {
	if !l.level.enabled(ErrorLevel) {
		return
	}
	exc := &ExceptionInfo{}
	if err != nil {
		exc.Kind = fmt.Sprintf("%T", err)
		exc.Message = err.Error()
		exc.Stack = captureStack(1) // skip the Exception frame itself
	}
	l.emit(ErrorLevel, msg, nil, exc)
}

// StartTimer begins an elapsed-time measurement under the given label.
func (l *Logger) StartTimer(label string) {
	l.timerMu.Lock()
	l.timers[label] = time.Now()
	l.timerMu.Unlock()
}

// EndTimer completes the labeled measurement and logs the elapsed time at
// InfoLevel. Calling it without a prior StartTimer logs a WARNING instead of
// failing.
func (l *Logger) EndTimer(label string) {
	l.timerMu.Lock()
	start, ok := l.timers[label]
	if ok {
		delete(l.timers, label)
	}
	l.timerMu.Unlock()

	if !ok {
		if !l.level.enabled(WarningLevel) {
			return
		}
		l.emit(WarningLevel, fmt.Sprintf("timer %q was never started", label), nil, nil)
		return
	}

	if !l.level.enabled(InfoLevel) {
		return
	}
	elapsed := time.Since(start)
	l.emit(InfoLevel, fmt.Sprintf("%s completed", label), []any{"elapsed_ms", elapsed.Milliseconds()}, nil)
}

// emit builds the record on the producer goroutine and queues it.
//
// Only exported entry points may call emit, and they must call it directly:
// caller resolution depends on the fixed facadeDepth frame count.
func (l *Logger) emit(level Level, msg string, keyvals []any, exc *ExceptionInfo) {
	r := getRecord()
	r.Time = time.Now().Truncate(time.Millisecond)
	r.Level = level
	r.LoggerName = l.name
	r.Message = msg
	r.PID = _pid
	r.Goroutine = goroutineID()
	r.File, r.Line, r.Function = resolveCaller(facadeDepth)
	r.Exception = exc

	var errVal error
	for i := 0; i+1 < len(keyvals); i += 2 {
		v := keyvals[i+1]
		r.AddAttr(formatAny(keyvals[i]), v)
		if e, ok := v.(error); ok && errVal == nil {
			errVal = e
		}
	}

	// ERROR and CRITICAL records capture the most recent in-flight error's
	// trace when one rode in as an attribute.
	if exc == nil && errVal != nil && level >= ErrorLevel {
		r.Exception = &ExceptionInfo{
			Kind:    fmt.Sprintf("%T", errVal),
			Message: errVal.Error(),
			Stack:   captureStack(2), // skip emit and the level method
		}
	}

	for _, f := range l.filters {
		if !f(r) {
			putRecord(r)
			return
		}
	}

	// A stopped dispatcher fails the enqueue fast; the failure is reported
	// to the fallback stream, never to the caller.
	if err := l.disp.enqueue(r); err != nil {
		l.disp.sinkErr.report(err)
	}
}

// Sync blocks until every record enqueued before the call has reached its
// sinks and the sinks have flushed.
func (l *Logger) Sync() {
	l.disp.sync()
}

// Shutdown drains the dispatcher and flushes and closes every sink.
//
// The configured DrainTimeout bounds the wait; on expiry the undrained count
// is reported via ShutdownTimeoutError. After Shutdown returns, the logger
// drops further records.
func (l *Logger) Shutdown() error {
	return l.disp.shutdown(l.drainTimeout)
}
