// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Options control which sinks Registry.Logger attaches and their severity
// thresholds. The zero value attaches no sinks; use DefaultOptions for the
// standard file plus console configuration.
type Options struct {
	// FileSinkEnabled attaches a file sink when true.
	FileSinkEnabled bool `env:"LOG_FILE_SINK_ENABLED" envDefault:"true" yaml:"fileSinkEnabled"`

	// ConsoleSinkEnabled attaches a console sink when true.
	ConsoleSinkEnabled bool `env:"LOG_CONSOLE_SINK_ENABLED" envDefault:"true" yaml:"consoleSinkEnabled"`

	// FileSeverity is the minimum severity written to the file sink.
	FileSeverity Severity `env:"LOG_FILE_SEVERITY" envDefault:"DEBUG" yaml:"fileSeverity"`

	// ConsoleSeverity is the minimum severity written to the console sink.
	ConsoleSeverity Severity `env:"LOG_CONSOLE_SEVERITY" envDefault:"INFO" yaml:"consoleSeverity"`

	// ConsoleWriter overrides the console sink destination. Defaults to
	// os.Stderr.
	ConsoleWriter io.Writer `env:"-" yaml:"-"`

	// TimeFn supplies record timestamps. Defaults to time.Now.
	TimeFn func() time.Time `env:"-" yaml:"-"`
}

// DefaultOptions returns the standard configuration: both sinks attached,
// DEBUG threshold on file, INFO on console.
func DefaultOptions() Options {
	return Options{
		FileSinkEnabled:    true,
		ConsoleSinkEnabled: true,
		FileSeverity:       DEBUG,
		ConsoleSeverity:    INFO,
	}
}

// OptionsFromEnv reads Options from the LOG_* environment variables, keeping
// the defaults for unset ones.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("%w: %s", ErrConfiguration, err.Error())
	}

	return opts, nil
}

// OptionsFromYAML decodes Options from a YAML document, keeping the defaults
// for omitted keys. An empty document yields DefaultOptions.
func OptionsFromYAML(reader io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(reader).Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}

		return Options{}, fmt.Errorf("%w: %s", ErrConfiguration, err.Error())
	}

	return opts, nil
}
