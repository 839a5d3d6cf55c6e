// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"log/slog"
	"runtime"
	"strings"

	"fillmore-labs.com/pycheck/analyzer/level"
	"fillmore-labs.com/pycheck/internal/config"
	"fillmore-labs.com/pycheck/internal/infer"
	"fillmore-labs.com/pycheck/internal/report"
)

// Options configure a run.
type Options struct {
	// Checkers represent the checkers to be enabled.
	Checkers config.Checkers

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Disabled lists rules to suppress, by ID, symbol or category. "all" disables every rule.
	Disabled []string

	// MaxDepth bounds the nesting of inference steps.
	MaxDepth int

	// Concurrency bounds the number of files analyzed in parallel by [Options.RunAll].
	Concurrency int

	// Logger receives checker faults and skipped files. nil uses [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions returns options enabling all checkers.
func DefaultOptions() *Options {
	return &Options{
		Checkers:    config.DefaultCheckers(),
		Behavior:    config.DefaultBehavior(),
		MaxDepth:    infer.DefaultMaxDepth,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}

func (o *Options) concurrency() int {
	if o.Concurrency < 1 {
		return 1
	}

	return o.Concurrency
}

// ruleFilter decides which rules are enabled.
type ruleFilter struct {
	all        bool
	rules      map[string]struct{}
	categories map[level.Category]struct{}
}

func newRuleFilter(disabled []string) *ruleFilter {
	f := &ruleFilter{
		rules:      make(map[string]struct{}),
		categories: make(map[level.Category]struct{}),
	}

	for _, d := range disabled {
		d = strings.ToLower(strings.TrimSpace(d))

		var c level.Category

		switch {
		case d == "all":
			f.all = true

		case len(d) > 1 && c.UnmarshalText([]byte(d)) == nil:
			f.categories[c] = struct{}{}

		case d != "":
			f.rules[d] = struct{}{}
		}
	}

	return f
}

func (f *ruleFilter) enabled(def report.Definition) bool {
	if f.all {
		return false
	}

	if _, ok := f.categories[def.Category()]; ok {
		return false
	}

	if _, ok := f.rules[strings.ToLower(def.ID)]; ok {
		return false
	}

	_, ok := f.rules[def.Symbol]

	return !ok
}
