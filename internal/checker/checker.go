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

// Package checker defines how checkers plug into the engine.
//
// A [Checker] declares the rules it reports and, in its Run function, binds
// callbacks for the node kinds it is interested in through a [Pass]. The
// callbacks are invoked during traversal and emit messages with
// [Pass.Report].
package checker

import (
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/pycheck/analyzer/level"
	"fillmore-labs.com/pycheck/internal/astutil"
	"fillmore-labs.com/pycheck/internal/hierarchy"
	"fillmore-labs.com/pycheck/internal/infer"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/report"
	"fillmore-labs.com/pycheck/internal/walk"
)

// Checker is a named set of rules.
type Checker struct {
	// Name identifies the checker in logs and fault messages.
	Name string

	// Doc is a short description.
	Doc string

	// Messages are the rules the checker can report.
	Messages []report.Definition

	// Run registers the callbacks of the checker. It is called once per
	// analyzed unit, before traversal.
	Run func(*Pass)
}

// Definition returns the rule with the given ID or symbol.
func (c *Checker) Definition(rule string) (report.Definition, bool) {
	for _, def := range c.Messages {
		if def.ID == rule || def.Symbol == rule {
			return def, true
		}
	}

	return report.Definition{}, false
}

// Env is the per-unit state shared by all passes.
type Env struct {
	File       astutil.CurrentFile
	Infer      *infer.Context
	Hierarchy  *hierarchy.Resolver
	Dispatcher *walk.Dispatcher
	Sink       *report.Sink

	// Active reports whether a rule is enabled. nil enables all rules.
	Active func(report.Definition) bool

	// Directives enables inline "# pylint: disable=" comments.
	Directives bool
}

// Pass is the interface of one checker to one analyzed unit.
type Pass struct {
	*Env
	Checker *Checker
}

// NewPass creates a pass for c.
func NewPass(c *Checker, env *Env) *Pass {
	return &Pass{Env: env, Checker: c}
}

// Enter registers fn for entering nodes of kind k.
//
// When rules are given, fn is only called while at least one of them is enabled.
func (p *Pass) Enter(k node.Kind, fn func(node.Node), rules ...string) {
	p.Dispatcher.OnEnter(k, p.callback(fn, rules))
}

// Leave registers fn for leaving nodes of kind k.
func (p *Pass) Leave(k node.Kind, fn func(node.Node), rules ...string) {
	p.Dispatcher.OnLeave(k, p.callback(fn, rules))
}

func (p *Pass) callback(fn func(node.Node), rules []string) walk.Callback {
	cb := walk.Callback{Owner: p.Checker.Name, Func: fn}

	if len(rules) > 0 {
		defs := make([]report.Definition, 0, len(rules))
		for _, rule := range rules {
			defs = append(defs, p.definition(rule))
		}

		cb.Active = func() bool {
			for _, def := range defs {
				if p.enabled(def) {
					return true
				}
			}

			return false
		}
	}

	return cb
}

// Enabled reports whether the rule with the given ID or symbol is active.
func (p *Pass) Enabled(rule string) bool {
	return p.enabled(p.definition(rule))
}

func (p *Pass) enabled(def report.Definition) bool {
	return p.Active == nil || p.Active(def)
}

// Report emits a message for rule at n.
//
// Messages of disabled rules, or rules disabled by a directive on the line
// of n, are dropped. Reporting a rule the checker did not declare panics.
func (p *Pass) Report(rule string, n node.Node, args ...string) {
	def := p.definition(rule)
	if !p.enabled(def) {
		return
	}

	span := n.Span()
	if p.Directives && p.File.NoLint(span.Start.Line, def.ID, def.Symbol) {
		return
	}

	p.Sink.Add(report.New(def, p.File.Path(), p.File.Module(), span, args...))
}

func (p *Pass) definition(rule string) report.Definition {
	def, ok := p.Checker.Definition(rule)
	if !ok {
		panic(fmt.Sprintf("checker %s: undeclared rule %q", p.Checker.Name, rule))
	}

	return def
}

var (
	// ErrDuplicate is returned when a checker name, rule ID or symbol is registered twice.
	ErrDuplicate = errors.New("duplicate registration")

	// ErrInvalid is returned for malformed checkers.
	ErrInvalid = errors.New("invalid checker")
)

// Registry holds the checkers of a run. The zero value is ready to use.
type Registry struct {
	checkers []*Checker
	keys     map[string]string
}

// Register adds checkers, rejecting duplicate names, rule IDs and symbols.
func (r *Registry) Register(checkers ...*Checker) error {
	if r.keys == nil {
		r.keys = make(map[string]string)
	}

	for _, c := range checkers {
		if c.Name == "" || c.Run == nil {
			return fmt.Errorf("checker %q: missing name or run function: %w", c.Name, ErrInvalid)
		}

		keys := []string{"checker:" + c.Name}

		for _, def := range c.Messages {
			if _, ok := level.FromID(def.ID); !ok || def.Symbol == "" {
				return fmt.Errorf("checker %s: rule %q (%s): %w", c.Name, def.ID, def.Symbol, ErrInvalid)
			}

			keys = append(keys, "rule:"+def.ID, "rule:"+def.Symbol)
		}

		for i, key := range keys {
			owner, ok := r.keys[key]
			if !ok && slices.Contains(keys[:i], key) {
				owner, ok = c.Name, true
			}

			if ok {
				return fmt.Errorf("checker %s: %s already registered by %s: %w", c.Name, key, owner, ErrDuplicate)
			}
		}

		for _, key := range keys {
			r.keys[key] = c.Name
		}

		r.checkers = append(r.checkers, c)
	}

	return nil
}

// Checkers returns the registered checkers in registration order.
func (r *Registry) Checkers() []*Checker {
	return r.checkers
}

// Definition returns the rule with the given ID or symbol of any registered checker.
func (r *Registry) Definition(rule string) (report.Definition, bool) {
	for _, c := range r.checkers {
		if def, ok := c.Definition(rule); ok {
			return def, true
		}
	}

	return report.Definition{}, false
}
