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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/pycheck/internal/config"
	"fillmore-labs.com/pycheck/internal/run"
)

// Option configures specific behavior of a [New] pycheck analyzer.
type Option interface {
	apply(o *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithOverlapExcept is an [Option] to configure whether overlapping exceptions are reported.
func WithOverlapExcept(enabled bool) Option { return overlapExceptOption{enabled: enabled} }

type overlapExceptOption struct{ enabled bool }

func (o overlapExceptOption) apply(r *run.Options) {
	r.Checkers.Set(config.OverlapExcept, o.enabled)
}

func (o overlapExceptOption) LogAttr() slog.Attr {
	return slog.Bool("overlapping-except", o.enabled)
}

// WithRedefinedType is an [Option] to configure whether variable type changes are reported.
func WithRedefinedType(enabled bool) Option { return redefinedTypeOption{enabled: enabled} }

type redefinedTypeOption struct{ enabled bool }

func (o redefinedTypeOption) apply(r *run.Options) {
	r.Checkers.Set(config.RedefinedType, o.enabled)
}

func (o redefinedTypeOption) LogAttr() slog.Attr {
	return slog.Bool("redefined-variable-type", o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDirectives is an [Option] to configure whether "# pylint: disable=" comments are honored.
func WithDirectives(directives bool) Option { return directivesOption{directives: directives} }

type directivesOption struct{ directives bool }

func (o directivesOption) apply(r *run.Options) {
	r.Behavior.Set(config.Directives, o.directives)
}

func (o directivesOption) LogAttr() slog.Attr {
	return slog.Bool("directives", o.directives)
}

// WithFaults is an [Option] to report checker failures as analysis-fault messages.
func WithFaults(faults bool) Option { return faultsOption{faults: faults} }

type faultsOption struct{ faults bool }

func (o faultsOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportFaults, o.faults)
}

func (o faultsOption) LogAttr() slog.Attr {
	return slog.Bool("faults", o.faults)
}

// WithDisable is an [Option] to suppress rules by ID, symbol or category.
func WithDisable(rules ...string) Option { return disableOption{rules: rules} }

type disableOption struct{ rules []string }

func (o disableOption) apply(r *run.Options) {
	r.Disabled = append(r.Disabled, o.rules...)
}

func (o disableOption) LogAttr() slog.Attr {
	return slog.Any("disable", o.rules)
}

// WithMaxDepth is an [Option] to bound the nesting of inference steps.
func WithMaxDepth(depth int) Option { return maxDepthOption{depth: depth} }

type maxDepthOption struct{ depth int }

func (o maxDepthOption) apply(r *run.Options) {
	r.MaxDepth = o.depth
}

func (o maxDepthOption) LogAttr() slog.Attr {
	return slog.Int("max-depth", o.depth)
}

// WithConcurrency is an [Option] to bound the number of files analyzed in parallel.
func WithConcurrency(n int) Option { return concurrencyOption{n: n} }

type concurrencyOption struct{ n int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.n
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.n)
}

// WithLogger is an [Option] to set the logger receiving checker faults and skipped files.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
