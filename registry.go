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
	"sync"
	"sync/atomic"
)

// Registry caches constructed loggers by name.
//
// For a given name at most one logger and sink set exists per Registry;
// repeated acquisition returns the same instance. Construction for
// first-callers is serialized under the registry lock, so two goroutines
// racing on the same name never build two physical sink sets. Lifecycle is
// explicit: entries live until Shutdown or ShutdownAll drains and removes
// them, after which the next GetLogger builds fresh state.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry constructs an empty logger registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// GetLogger returns the logger registered under name, constructing it from
// cfg on first acquisition. Later calls ignore cfg and return the cached
// instance.
func (reg *Registry) GetLogger(name string, cfg Config) (*Logger, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if l, ok := reg.loggers[name]; ok {
		return l, nil
	}

	l, err := New(name, cfg)
	if err != nil {
		return nil, err
	}
	reg.loggers[name] = l
	return l, nil
}

// Shutdown drains the named logger, flushes and closes its sinks, and removes
// the entry. A missing name is not an error.
func (reg *Registry) Shutdown(name string) error {
	reg.mu.Lock()
	l, ok := reg.loggers[name]
	delete(reg.loggers, name)
	reg.mu.Unlock()

	if !ok {
		return nil
	}
	return l.Shutdown()
}

// ShutdownAll drains and removes every registered logger, joining any drain
// timeout errors.
func (reg *Registry) ShutdownAll() error {
	reg.mu.Lock()
	loggers := reg.loggers
	reg.loggers = make(map[string]*Logger)
	reg.mu.Unlock()

	var errs []error
	for _, l := range loggers {
		if err := l.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_defaultRegistry     atomic.Pointer[Registry]
	_defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide logger registry.
//
// It initializes an empty Registry if one does not already exist. Prefer
// constructing and passing an explicit Registry where dependency injection is
// practical; the default exists for simple applications and the package level
// convenience functions.
func DefaultRegistry() *Registry {
	r := _defaultRegistry.Load()
	if r == nil {
		_defaultRegistryOnce.Do(func() {
			_defaultRegistry.CompareAndSwap(nil, NewRegistry())
		})
		r = _defaultRegistry.Load()
	}
	return r
}

// SetDefaultRegistry replaces the process-wide registry with the provided
// instance, draining the previous registry's loggers if one existed.
func SetDefaultRegistry(reg *Registry) {
	old := _defaultRegistry.Swap(reg)
	if old != nil {
		old.ShutdownAll()
	}
}

// GetLogger acquires a logger from the default registry.
func GetLogger(name string, cfg Config) (*Logger, error) {
	return DefaultRegistry().GetLogger(name, cfg)
}

// Shutdown drains the named logger in the default registry.
func Shutdown(name string) error {
	return DefaultRegistry().Shutdown(name)
}

// ShutdownAll drains every logger in the default registry.
func ShutdownAll() error {
	return DefaultRegistry().ShutdownAll()
}
