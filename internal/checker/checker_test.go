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

package checker_test

import (
	"errors"
	"log/slog"
	"testing"

	"fillmore-labs.com/pycheck/internal/astutil"
	. "fillmore-labs.com/pycheck/internal/checker"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/report"
	"fillmore-labs.com/pycheck/internal/testsource"
	"fillmore-labs.com/pycheck/internal/walk"
)

var (
	assignment = report.Definition{ID: "C9001", Symbol: "assignment", Template: "Assignment to %s"}
	other      = report.Definition{ID: "C9002", Symbol: "other", Template: "Other"}
)

func assignments(p *Pass) {
	p.Enter(node.KindAssign, func(n node.Node) {
		p.Report("assignment", n, node.Render(n.(*node.Assign).Targets[0]))
	}, "assignment")
}

func run(tb testing.TB, src string, active func(report.Definition) bool, directives bool) []report.Message {
	tb.Helper()

	f := testsource.Parse(tb, src)

	env := &Env{
		File:       astutil.NewCurrentFile(f),
		Dispatcher: walk.New(slog.New(slog.DiscardHandler)),
		Sink:       &report.Sink{},
		Active:     active,
		Directives: directives,
	}

	c := &Checker{Name: "test", Messages: []report.Definition{assignment, other}, Run: assignments}
	c.Run(NewPass(c, env))

	if err := env.Dispatcher.Walk(tb.Context(), f.Module); err != nil {
		tb.Fatalf("Walk failed: %v", err)
	}

	return env.Sink.Messages()
}

func TestReport(t *testing.T) {
	t.Parallel()

	const src = "x = 1\ny = 2  # pylint: disable=assignment"

	tests := []struct {
		name       string
		active     func(report.Definition) bool
		directives bool
		want       []string
	}{
		{"all", nil, false, []string{"Assignment to x", "Assignment to y"}},
		{"directives", nil, true, []string{"Assignment to x"}},
		{"disabled", func(d report.Definition) bool { return d.Symbol != "assignment" }, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msgs := run(t, src, tt.active, tt.directives)
			if len(msgs) != len(tt.want) {
				t.Fatalf("Got %d messages, expected %d", len(msgs), len(tt.want))
			}

			for i, m := range msgs {
				if m.Text != tt.want[i] || m.ID != "C9001" || m.Path != "test.py" {
					t.Errorf("Got %v, expected %q", m, tt.want[i])
				}
			}
		})
	}
}

func TestReportUndeclared(t *testing.T) {
	t.Parallel()

	c := &Checker{Name: "test", Messages: []report.Definition{assignment}, Run: func(*Pass) {}}
	p := NewPass(c, &Env{Sink: &report.Sink{}})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for undeclared rule")
		}
	}()

	p.Report("undeclared", &node.Pass{})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	noop := func(*Pass) {}

	tests := []struct {
		name     string
		checkers []*Checker
		err      error
	}{
		{"distinct", []*Checker{
			{Name: "a", Messages: []report.Definition{assignment}, Run: noop},
			{Name: "b", Messages: []report.Definition{other}, Run: noop},
		}, nil},
		{"same_name", []*Checker{
			{Name: "a", Run: noop},
			{Name: "a", Run: noop},
		}, ErrDuplicate},
		{"same_id", []*Checker{
			{Name: "a", Messages: []report.Definition{assignment}, Run: noop},
			{Name: "b", Messages: []report.Definition{{ID: "C9001", Symbol: "renamed"}}, Run: noop},
		}, ErrDuplicate},
		{"same_symbol_in_checker", []*Checker{
			{Name: "a", Messages: []report.Definition{assignment, {ID: "C9003", Symbol: "assignment"}}, Run: noop},
		}, ErrDuplicate},
		{"bad_id", []*Checker{
			{Name: "a", Messages: []report.Definition{{ID: "X1", Symbol: "x"}}, Run: noop},
		}, ErrInvalid},
		{"no_run", []*Checker{{Name: "a"}}, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var r Registry

			err := r.Register(tt.checkers...)
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Errorf("Got error %v, expected %v", err, tt.err)
			}

			if tt.err == nil {
				if def, ok := r.Definition("C9002"); !ok || def.Symbol != "other" {
					t.Errorf("Got %v, expected rule other", def)
				}
			}
		})
	}
}
