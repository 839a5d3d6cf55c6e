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

// Package multitype reports variables whose inferred type changes within a scope.
//
// None is not considered a type change, and a variable set to different
// types in the branches of one if statement is not a redefinition.
package multitype

import (
	"strings"

	"fillmore-labs.com/pycheck/internal/checker"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/report"
)

const symbol = "redefined-variable-type"

// Checker reports the first type change of each variable per module, class and function.
var Checker = &checker.Checker{
	Name: "multiple-types",
	Doc:  "Checks for variable type redefinitions (NoneType excepted).",
	Messages: []report.Definition{{
		ID:       "R0204",
		Symbol:   symbol,
		Template: "Redefinition of %s type from %s to %s",
		Help:     "Used when the type of a variable changes inside a method or a function.",
	}},
	Run: run,
}

type assignment struct {
	stmt   *node.Assign
	pytype string
}

// frame records the typed assignments of one scope by rendered target.
type frame struct {
	names   []string
	assigns map[string][]assignment
}

func newFrame() *frame {
	return &frame{assigns: make(map[string][]assignment)}
}

func (f *frame) add(name string, a assignment) {
	if _, ok := f.assigns[name]; !ok {
		f.names = append(f.names, name)
	}

	f.assigns[name] = append(f.assigns[name], a)
}

type state struct {
	*checker.Pass
	stack []*frame
}

func run(p *checker.Pass) {
	s := &state{Pass: p}

	p.Enter(node.KindModule, func(node.Node) { s.stack = []*frame{newFrame()} }, symbol)
	p.Enter(node.KindClassDef, s.push, symbol)
	p.Enter(node.KindFunctionDef, s.push, symbol)
	p.Enter(node.KindAssign, s.assign, symbol)
	p.Leave(node.KindClassDef, s.pop, symbol)
	p.Leave(node.KindFunctionDef, s.pop, symbol)
	p.Leave(node.KindModule, s.pop, symbol)
}

func (s *state) push(node.Node) {
	s.stack = append(s.stack, newFrame())
}

func (s *state) assign(n node.Node) {
	a := n.(*node.Assign)

	// Unpacking and item assignment are not tracked.
	target := a.Targets[0]
	if k := target.Kind(); k == node.KindTuple || k == node.KindSubscript {
		return
	}

	t := s.Infer.NodeType(a.Value)
	if t == nil {
		return
	}

	top := s.stack[len(s.stack)-1]
	top.add(node.Render(target), assignment{stmt: a, pytype: t.Pytype()})
}

func (s *state) pop(node.Node) {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	for _, name := range f.names {
		s.check(name, f.assigns[name])
	}
}

func (s *state) check(name string, assigns []assignment) {
	if len(assigns) < 2 {
		return
	}

	orig := assigns[0]

	for _, redef := range assigns[1:] {
		if redef.pytype == orig.pytype {
			continue
		}

		if sameConditional(orig.stmt, redef.stmt) {
			orig = redef

			continue
		}

		s.Report(symbol, redef.stmt, name, strip(orig.pytype), strip(redef.pytype))

		return
	}
}

// sameConditional reports whether redef sets the variable in another branch of
// the if statement holding orig: its else branch, or an if statement nested
// inside it.
func sameConditional(orig, redef node.Node) bool {
	cond, ok := orig.Parent().(*node.If)
	if !ok {
		return false
	}

	redefParent := redef.Parent()
	if redefParent == cond {
		return node.InOrelse(redef) && !node.InOrelse(orig)
	}

	return redefParent.Kind() == node.KindIf && node.IsAncestor(cond, redefParent)
}

func strip(pytype string) string {
	return strings.ReplaceAll(pytype, "builtins.", "")
}
