/*
Copyright (c) 2019 Maxim Konakov
All rights reserved.

Redistribution and use in source and binary forms, with or without modification,
are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software without
   specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED.
IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT,
INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE,
EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Package config loads the YAML configuration of the bbhtml command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maxim2266/bbhtml"
)

// Config is the top level configuration file structure.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ConverterConfig mirrors the bbhtml.Option set.
type ConverterConfig struct {
	MaxIterations     *int   `yaml:"max_iterations,omitempty"`
	MaxDocumentBytes  *int   `yaml:"max_document_bytes,omitempty"`
	EmptySize         string `yaml:"empty_size,omitempty"` // "reject" or "inherit"
	SpanLines         *bool  `yaml:"span_lines,omitempty"`
	LineBreaks        bool   `yaml:"line_breaks,omitempty"`
	NormalizeNewlines bool   `yaml:"normalize_newlines,omitempty"`
	Timeout           string `yaml:"timeout,omitempty"` // Go duration, empty for none

	emptySize bbhtml.EmptySizePolicy
	timeout   time.Duration
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Textfile is the path of a Prometheus textfile collector file written after each run.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}

	if err := cfg.normalize(); err != nil {
		panic("invalid default configuration: " + err.Error())
	}

	return cfg
}

// Load reads and normalizes the configuration file at path. Environment
// variable references in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes and normalizes a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) normalize() error {
	cv := &c.Converter

	if cv.MaxIterations == nil {
		cv.MaxIterations = ptr(bbhtml.DefaultMaxIterations)
	} else if *cv.MaxIterations < 0 {
		return fmt.Errorf("converter.max_iterations must not be negative: %d", *cv.MaxIterations)
	}

	if cv.MaxDocumentBytes == nil {
		cv.MaxDocumentBytes = ptr(bbhtml.DefaultMaxDocumentSize)
	} else if *cv.MaxDocumentBytes < 0 {
		return fmt.Errorf("converter.max_document_bytes must not be negative: %d", *cv.MaxDocumentBytes)
	}

	if cv.SpanLines == nil {
		cv.SpanLines = ptr(false)
	}

	policy, err := bbhtml.ParseEmptySizePolicy(cv.EmptySize)

	if err != nil {
		return fmt.Errorf("converter.empty_size: %w", err)
	}

	cv.emptySize = policy
	cv.EmptySize = policy.String()

	if cv.Timeout != "" {
		if cv.timeout, err = time.ParseDuration(cv.Timeout); err != nil {
			return fmt.Errorf("converter.timeout: %w", err)
		}

		if cv.timeout < 0 {
			return fmt.Errorf("converter.timeout must not be negative: %s", cv.Timeout)
		}
	}

	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))
	return nil
}

// Timeout returns the per-conversion timeout, 0 for none.
func (c *Config) Timeout() time.Duration {
	return c.Converter.timeout
}

// ConverterOptions translates the converter section into bbhtml options.
func (c *Config) ConverterOptions(logger *slog.Logger, rec bbhtml.Recorder) []bbhtml.Option {
	cv := &c.Converter

	opts := []bbhtml.Option{
		bbhtml.WithMaxIterations(*cv.MaxIterations),
		bbhtml.WithMaxDocumentSize(*cv.MaxDocumentBytes),
		bbhtml.WithSpanLines(*cv.SpanLines),
		bbhtml.WithEmptySize(cv.emptySize),
		bbhtml.WithLineBreaks(cv.LineBreaks),
		bbhtml.WithNormalizeNewlines(cv.NormalizeNewlines),
	}

	if logger != nil {
		opts = append(opts, bbhtml.WithLogger(logger))
	}

	if rec != nil {
		opts = append(opts, bbhtml.WithRecorder(rec))
	}

	return opts
}

func ptr[T any](v T) *T { return &v }
