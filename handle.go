// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"io"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

var (
	// Disabled is a handle with no sinks that drops every record.
	// FromContext falls back to it so callers never need nil checks.
	Disabled = disabledHandle()
)

// Handle is a named logger with zero or more attached sinks. Its own level is
// a first-stage severity filter; each sink applies a second, possibly
// stricter, one. Handles live for the process lifetime and are never closed.
type Handle struct {
	name  string
	level atomic.Int32

	intercept hclog.InterceptLogger
	sinks     []Sink
}

func newHandle(name string, sinks []Sink) *Handle {
	intercept := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Trace,
		Output: io.Discard,
	})
	for _, sink := range sinks {
		intercept.RegisterSink(sink)
	}

	handle := &Handle{name: name, intercept: intercept, sinks: sinks}
	handle.level.Store(int32(DEBUG))
	return handle
}

func disabledHandle() *Handle {
	handle := newHandle("", nil)
	handle.level.Store(int32(ERROR + 1))
	return handle
}

// Name returns the identity the handle was registered under.
func (h *Handle) Name() string {
	return h.name
}

// Sinks returns the sinks attached at creation.
func (h *Handle) Sinks() []Sink {
	return h.sinks
}

// SetLevel updates the handle's first-stage severity filter.
func (h *Handle) SetLevel(level Severity) {
	h.level.Store(int32(level))
}

// Level returns the handle's current first-stage severity filter.
func (h *Handle) Level() Severity {
	return Severity(h.level.Load())
}

// Trace emits a message and key/value pairs at the TRACE level.
func (h *Handle) Trace(msg string, args ...interface{}) {
	h.log(TRACE, msg, args...)
}

// Debug emits a message and key/value pairs at the DEBUG level.
func (h *Handle) Debug(msg string, args ...interface{}) {
	h.log(DEBUG, msg, args...)
}

// Info emits a message and key/value pairs at the INFO level.
func (h *Handle) Info(msg string, args ...interface{}) {
	h.log(INFO, msg, args...)
}

// Warn emits a message and key/value pairs at the WARN level.
func (h *Handle) Warn(msg string, args ...interface{}) {
	h.log(WARN, msg, args...)
}

// Error emits a message and key/value pairs at the ERROR level.
func (h *Handle) Error(msg string, args ...interface{}) {
	h.log(ERROR, msg, args...)
}

// log gates on the handle level, captures the emit call site and forwards the
// record to the attached sinks through the hclog intercept logger.
func (h *Handle) log(severity Severity, msg string, args ...interface{}) {
	if severity < h.Level() {
		return
	}

	// Skip log and the public emit wrapper above it.
	if _, file, line, ok := runtime.Caller(2); ok {
		args = append(args, originArgKey{}, origin{file: filepath.Base(file), line: line})
	}

	h.intercept.Log(severity.convertedLevel(), msg, args...)
}
