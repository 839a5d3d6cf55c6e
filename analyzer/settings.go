// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Settings represents the configuration file options of the analyzer.
type Settings struct {
	// OverlapExcept enables overlapping-except checks.
	OverlapExcept *bool `yaml:"overlapping-except"`
	// RedefinedType enables redefined-variable-type checks.
	RedefinedType *bool `yaml:"redefined-variable-type"`
	// Generated enables checking generated files.
	Generated *bool `yaml:"generated"`
	// Directives enables "# pylint:" comments.
	Directives *bool `yaml:"directives"`
	// Faults enables reporting of checker failures.
	Faults *bool `yaml:"faults"`
	// Disable lists rule IDs, symbols or categories to suppress.
	Disable *[]string `yaml:"disable"`
	// MaxDepth bounds the nesting of inference steps.
	MaxDepth *int `yaml:"max-depth"`
	// Concurrency bounds the number of files analyzed in parallel.
	Concurrency *int `yaml:"concurrency"`
}

// DecodeSettings reads YAML settings from r. Unknown keys are rejected, an empty document yields zero settings.
func DecodeSettings(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("can't decode settings: %w", err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [Option] for the analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() Options {
	var opts Options

	opts = appendOption(opts, s.OverlapExcept, WithOverlapExcept)
	opts = appendOption(opts, s.RedefinedType, WithRedefinedType)
	opts = appendOption(opts, s.Generated, WithGenerated)
	opts = appendOption(opts, s.Directives, WithDirectives)
	opts = appendOption(opts, s.Faults, WithFaults)
	opts = appendOption(opts, s.Disable, func(rules []string) Option { return WithDisable(rules...) })
	opts = appendOption(opts, s.MaxDepth, WithMaxDepth)
	opts = appendOption(opts, s.Concurrency, WithConcurrency)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
