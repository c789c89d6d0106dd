// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	// DefaultRegistry backs the package-level New for callers that do not
	// inject their own registry.
	DefaultRegistry = NewRegistry()
)

// Registry owns a name to handle map. Requesting a name twice returns the
// handle created first, with its sinks unchanged.
type Registry struct {
	mu      sync.Mutex
	handles map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: map[string]*Handle{}}
}

// New configures a named logger on the DefaultRegistry.
func New(name, dir, baseName string, opts Options) (*Handle, error) {
	return DefaultRegistry.Logger(name, dir, baseName, opts)
}

// Logger returns the handle registered under name, creating it with the
// requested sinks on first use. dir and baseName are consulted only when the
// file sink is enabled and combine to "{dir}/{baseName}_logger.log"; the
// directory must already exist and open failures are returned untouched.
func (r *Registry) Logger(name, dir, baseName string, opts Options) (*Handle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: logger name must not be blank", ErrConfiguration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, ok := r.handles[name]; ok {
		return handle, nil
	}

	var sinks []Sink
	if opts.FileSinkEnabled {
		sink, err := newFileSink(logFilePath(dir, baseName), opts.FileSeverity, opts.TimeFn)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if opts.ConsoleSinkEnabled {
		writer := opts.ConsoleWriter
		if writer == nil {
			writer = os.Stderr
		}
		sinks = append(sinks, newTemplateSink(writer, opts.ConsoleSeverity, opts.TimeFn))
	}

	handle := newHandle(name, sinks)
	r.handles[name] = handle
	return handle, nil
}
