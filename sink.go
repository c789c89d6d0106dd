// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// timestampLayout renders 12-hour month-day times, e.g. "06-01 03:04 PM".
const timestampLayout = "01-02 03:04 PM"

// Sink is a destination that receives formatted records at or above its
// severity threshold.
type Sink interface {
	hclog.SinkAdapter

	// Threshold returns the minimum severity the sink writes.
	Threshold() Severity
}

// originArgKey marks the caller location pair that Handle appends to the args
// stream. An unexported type never collides with a caller-supplied key.
type originArgKey struct{}

type origin struct {
	file string
	line int
}

// Make sure that templateSink is a Sink.
var _ Sink = &templateSink{}

// templateSink writes one line per record using the fixed template
// "[<name>] <SEVERITY> (<timestamp>): <message> (Line: <n>) [<file>]".
type templateSink struct {
	threshold Severity
	timeFn    func() time.Time

	mu  sync.Mutex
	out io.Writer
}

func newTemplateSink(out io.Writer, threshold Severity, timeFn func() time.Time) *templateSink {
	if timeFn == nil {
		timeFn = time.Now
	}

	return &templateSink{threshold: threshold, timeFn: timeFn, out: out}
}

// newFileSink opens path in append mode, never truncating an existing log.
// The directory must already exist; open failures are returned untouched.
func newFileSink(path string, threshold Severity, timeFn func() time.Time) (*templateSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return newTemplateSink(file, threshold, timeFn), nil
}

// logFilePath builds "{dir}/{baseName}_logger.log".
func logFilePath(dir, baseName string) string {
	return filepath.Join(dir, baseName+"_logger.log")
}

func (s *templateSink) Threshold() Severity {
	return s.threshold
}

// Accept implements hclog.SinkAdapter.
func (s *templateSink) Accept(name string, level hclog.Level, msg string, args ...interface{}) {
	severity := severityFromLevel(level)
	if severity < s.threshold {
		return
	}

	loc, rest := splitOrigin(args)

	builder := new(strings.Builder)
	fmt.Fprintf(builder, "[%s] %s (%s): %s", name, severity, s.timeFn().Format(timestampLayout), msg)
	appendArgs(builder, rest)
	if loc != nil {
		fmt.Fprintf(builder, " (Line: %d) [%s]", loc.line, loc.file)
	}
	builder.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, builder.String())
}

// splitOrigin extracts the caller location pair appended by Handle, returning
// the remaining args untouched.
func splitOrigin(args []interface{}) (*origin, []interface{}) {
	for i := 0; i+1 < len(args); i++ {
		if _, ok := args[i].(originArgKey); !ok {
			continue
		}

		if loc, ok := args[i+1].(origin); ok {
			rest := make([]interface{}, 0, len(args)-2)
			rest = append(rest, args[:i]...)
			rest = append(rest, args[i+2:]...)
			return &loc, rest
		}
	}

	return nil, args
}

// appendArgs renders key/value pairs after the message, hclog style.
func appendArgs(builder *strings.Builder, args []interface{}) {
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(builder, " %v=%v", args[i], args[i+1])
	}

	if len(args)%2 == 1 {
		fmt.Fprintf(builder, " %s=%v", hclog.MissingKey, args[len(args)-1])
	}
}
