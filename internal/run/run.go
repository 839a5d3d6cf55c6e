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

// Package run drives the analysis of Python source files.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/pycheck/internal/astutil"
	"fillmore-labs.com/pycheck/internal/checker"
	"fillmore-labs.com/pycheck/internal/checkers"
	"fillmore-labs.com/pycheck/internal/config"
	"fillmore-labs.com/pycheck/internal/hierarchy"
	"fillmore-labs.com/pycheck/internal/infer"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/parse"
	"fillmore-labs.com/pycheck/internal/report"
	"fillmore-labs.com/pycheck/internal/scope"
	"fillmore-labs.com/pycheck/internal/walk"
)

// Unit is a source file to analyze. A nil Source is read from Path.
type Unit struct {
	Path   string
	Source []byte
}

// Result is the outcome of analyzing one unit.
type Result struct {
	Path     string
	Messages []report.Message
	Faults   []walk.Fault

	// Skipped is set for generated files and, with directives enabled, files with a skip-file directive.
	Skipped bool
}

// Run analyzes a single source file.
//
// Syntax errors are reported as messages. The returned error is non-nil when
// the tree is malformed or ctx is canceled; messages emitted before remain
// valid.
func (o *Options) Run(ctx context.Context, path string, src []byte) (Result, error) {
	ctx, task := trace.NewTask(ctx, "pycheck")
	defer task.End()

	trace.Log(ctx, "path", path)

	logger, filter := o.logger(), newRuleFilter(o.Disabled)
	result := Result{Path: path}

	f, err := parse.Parse(ctx, path, src)
	if err != nil {
		var se *parse.SyntaxError
		if !errors.As(err, &se) {
			return result, fmt.Errorf("%s: %w", path, err)
		}

		if filter.enabled(astutil.SyntaxError) {
			span := node.Span{Start: se.Pos, End: se.Pos}
			result.Messages = append(result.Messages,
				report.New(astutil.SyntaxError, path, parse.ModuleName(path), span, se.Msg))
		}

		return result, nil
	}

	currentFile := astutil.NewCurrentFile(f)

	directives := o.Behavior.Enabled(config.Directives)

	// Skip generated files
	if directives && currentFile.Skipped() || currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping file",
			slog.String("path", path), slog.Bool("generated", currentFile.Generated()))

		result.Skipped = true

		return result, nil
	}

	ic := infer.NewContext(f.Module, scope.NewIndex(f.Module), infer.WithMaxDepth(o.MaxDepth))

	env := &checker.Env{
		File:       currentFile,
		Infer:      ic,
		Hierarchy:  hierarchy.NewResolver(ic),
		Dispatcher: walk.New(logger),
		Sink:       &report.Sink{},
		Active:     filter.enabled,
		Directives: directives,
	}

	var registry checker.Registry
	if err := registry.Register(checkers.Selected(o.Checkers)...); err != nil {
		return result, err
	}

	for _, c := range registry.Checkers() {
		c.Run(checker.NewPass(c, env))
	}

	err = env.Dispatcher.Walk(ctx, f.Module)

	result.Faults = env.Dispatcher.Faults()
	if o.Behavior.Enabled(config.ReportFaults) && filter.enabled(astutil.AnalysisFault) {
		for _, fault := range result.Faults {
			env.Sink.Add(astutil.InternalError(currentFile, fault.Owner, fault.Node, "%v", fault.Value))
		}
	}

	result.Messages = env.Sink.Messages()

	switch {
	case errors.Is(err, node.ErrStructure):
		logger.LogAttrs(ctx, slog.LevelWarn, "Malformed tree", slog.String("path", path), slog.Any("error", err))

		return result, fmt.Errorf("%s: %w", path, err)

	case err != nil:
		return result, err
	}

	return result, nil
}

// RunAll analyzes units in parallel, returning results in the order of units.
//
// A failing unit does not stop the others; all errors are joined.
func (o *Options) RunAll(ctx context.Context, units []Unit) ([]Result, error) {
	results := make([]Result, len(units))
	errs := make([]error, len(units))

	var g errgroup.Group
	g.SetLimit(o.concurrency())

	for i, u := range units {
		g.Go(func() error {
			src := u.Source
			if src == nil {
				var err error
				if src, err = os.ReadFile(u.Path); err != nil {
					results[i], errs[i] = Result{Path: u.Path}, err

					return nil
				}
			}

			results[i], errs[i] = o.Run(ctx, u.Path, src)

			return nil
		})
	}

	_ = g.Wait()

	return results, errors.Join(errs...)
}
