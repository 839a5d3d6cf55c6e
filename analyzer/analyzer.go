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
	"context"

	"fillmore-labs.com/pycheck/internal/report"
	"fillmore-labs.com/pycheck/internal/run"
)

// Public API constants for the pycheck analyzer.
const (
	name = "pycheck"
	doc  = `pycheck reports overlapping exception handlers and variables redefined with a different type`
)

// Message is a single diagnostic.
type Message = report.Message

// Result holds the messages of one analyzed file.
type Result = run.Result

// Analyzer checks Python source files.
type Analyzer struct {
	opts *run.Options
}

// New creates a new instance of the pycheck analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Analyzer{opts: r}
}

// Name returns the name of the analyzer.
func (a *Analyzer) Name() string { return name }

// Doc returns a one-line description of the analyzer.
func (a *Analyzer) Doc() string { return doc }

// CheckSource analyzes a single file whose content is src.
//
// A file that fails to parse yields a syntax-error message, not an error.
func (a *Analyzer) CheckSource(ctx context.Context, path string, src []byte) ([]Message, error) {
	r, err := a.opts.Run(ctx, path, src)

	return r.Messages, err
}

// CheckFiles reads and analyzes the files at paths concurrently.
// Results are returned in the order of paths, even when some files fail.
func (a *Analyzer) CheckFiles(ctx context.Context, paths ...string) ([]Result, error) {
	units := make([]run.Unit, 0, len(paths))
	for _, p := range paths {
		units = append(units, run.Unit{Path: p})
	}

	return a.opts.RunAll(ctx, units)
}
