// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

//go:generate ${TOOLS_BIN}/stringer -type=Severity
type Severity int

const (
	TRACE Severity = iota + 1
	DEBUG
	INFO
	WARN
	ERROR
)

// ParseSeverity maps a level name to its Severity, ignoring case and
// surrounding whitespace. Unknown names map to DEBUG instead of failing.
func ParseSeverity(level string) Severity {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return DEBUG
	}
}

func (s Severity) convertedLevel() hclog.Level {
	switch s {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR:
		return hclog.Error
	default:
		return hclog.Debug
	}
}

func severityFromLevel(level hclog.Level) Severity {
	switch level {
	case hclog.Trace:
		return TRACE
	case hclog.Debug:
		return DEBUG
	case hclog.Info:
		return INFO
	case hclog.Warn:
		return WARN
	case hclog.Error:
		return ERROR
	default:
		return DEBUG
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same lenient
// fallback as ParseSeverity, so environment parsing never fails on a level
// name.
func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same lenient fallback as
// ParseSeverity.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*s = ParseSeverity(raw)
	return nil
}
