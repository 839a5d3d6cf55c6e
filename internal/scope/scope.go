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

package scope

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/pycheck/internal/node"
)

// Scope is the binding table of one scope-introducing node.
type Scope struct {
	Node   node.Node // module, class, function, lambda or comprehension
	Parent *Scope    // nil for the module scope

	locals    map[string][]node.Node
	globals   map[string]struct{}
	nonlocals map[string]struct{}
}

func newScope(n node.Node, parent *Scope) *Scope {
	return &Scope{
		Node:      n,
		Parent:    parent,
		locals:    make(map[string][]node.Node),
		globals:   make(map[string]struct{}),
		nonlocals: make(map[string]struct{}),
	}
}

// Bindings returns the nodes binding name in this scope, in source order.
//
// Binding nodes are store names, parameters, class and function definitions and imports.
func (s *Scope) Bindings(name string) []node.Node { return s.locals[name] }

// Locals yields the bound names of this scope in sorted order with their bindings.
func (s *Scope) Locals() iter.Seq2[string, []node.Node] {
	return func(yield func(string, []node.Node) bool) {
		for _, name := range slices.Sorted(maps.Keys(s.locals)) {
			if !yield(name, s.locals[name]) {
				return
			}
		}
	}
}

// Global reports whether name is declared global in this scope.
func (s *Scope) Global(name string) bool {
	_, ok := s.globals[name]

	return ok
}

// Nonlocal reports whether name is declared nonlocal in this scope.
func (s *Scope) Nonlocal(name string) bool {
	_, ok := s.nonlocals[name]

	return ok
}

// Index maps scope-introducing nodes to their [Scope].
type Index map[node.Node]*Scope

// NewIndex builds the scopes of a module.
func NewIndex(root *node.Module) Index {
	b := builder{index: make(Index), module: newScope(root, nil)}
	b.index[root] = b.module

	for _, s := range root.Body {
		b.visit(s, b.module)
	}

	b.hoistGlobals()

	return b.index
}

// Module returns the scope of the module.
func (x Index) Module() *Scope {
	for _, s := range x {
		for s.Parent != nil {
			s = s.Parent
		}

		return s
	}

	return nil
}

// Of returns the scope n is evaluated in.
//
// Decorators, base classes, parameter defaults and annotations belong to the
// enclosing scope of their definition, the first iterable of a comprehension
// to the scope enclosing the comprehension.
func (x Index) Of(n node.Node) *Scope {
	var skip bool

	for c, p := n, n.Parent(); p != nil; c, p = p, p.Parent() {
		switch p := p.(type) {
		case *node.Arg:
			skip = true // defaults and annotations

		case *node.ClassDef:
			if !skip && node.InBody(c) {
				return x[p]
			}

			skip = false

		case *node.FunctionDef:
			if !skip && (node.InBody(c) || isArg(p.Args, c)) {
				return x[p]
			}

			skip = false

		case *node.Lambda:
			if !skip && (p.Body == c || isArg(p.Args, c)) {
				return x[p]
			}

			skip = false

		case *node.Comprehension:
			if len(p.Generators) == 0 || p.Generators[0].Iter != c {
				return x[p]
			}

		case *node.Module:
			return x[p]
		}
	}

	if s, ok := x[n]; ok && n.Kind() == node.KindModule {
		return s
	}

	return nil
}

func isArg(args []*node.Arg, n node.Node) bool {
	a, ok := n.(*node.Arg)

	return ok && slices.Contains(args, a)
}

// Lookup resolves name as seen from n, following local, enclosing and module scopes.
//
// Class scopes are only visible to their direct body. Builtins are not handled here.
func (x Index) Lookup(name string, from node.Node) (*Scope, []node.Node) {
	return x.LookupFunc(name, from, nil)
}

// LookupFunc is like [Index.Lookup], but passes the bindings found in the scope
// of from through filter first. A scope whose filtered bindings are empty is
// treated as not binding name.
func (x Index) LookupFunc(name string, from node.Node, filter func(s *Scope, bindings []node.Node) []node.Node) (*Scope, []node.Node) {
	start := x.Of(from)

	for s := range x.ParentScopes(start) {
		if s != start && s.Node.Kind() == node.KindClassDef {
			continue
		}

		if s.Global(name) {
			m := x.Module()

			return m, m.Bindings(name)
		}

		if s.Nonlocal(name) {
			continue
		}

		b := s.Bindings(name)
		if s == start && filter != nil && len(b) > 0 {
			b = filter(s, b)
		}

		if len(b) > 0 {
			return s, b
		}
	}

	return nil, nil
}

// ParentScopes yields start and its enclosing scopes up to the module.
func (x Index) ParentScopes(start *Scope) iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for s := start; s != nil; s = s.Parent {
			if !yield(s) {
				return
			}
		}
	}
}

type builder struct {
	index  Index
	module *Scope
}

func (b *builder) bind(s *Scope, name string, n node.Node) {
	s.locals[name] = append(s.locals[name], n)
}

func (b *builder) visitAll(nodes []node.Node, s *Scope) {
	for _, n := range nodes {
		b.visit(n, s)
	}
}

func (b *builder) visitArgs(args []*node.Arg, outer, inner *Scope) {
	for _, a := range args {
		if a.Annotation != nil {
			b.visit(a.Annotation, outer)
		}

		if a.Default != nil {
			b.visit(a.Default, outer)
		}

		b.bind(inner, a.Name, a)
	}
}

func (b *builder) visit(n node.Node, s *Scope) {
	switch n := n.(type) {
	case *node.ClassDef:
		b.visitAll(n.Decorators, s)
		b.visitAll(n.Bases, s)

		for _, k := range n.Keywords {
			b.visit(k, s)
		}

		b.bind(s, n.Name, n)

		inner := newScope(n, s)
		b.index[n] = inner
		b.visitAll(n.Body, inner)

	case *node.FunctionDef:
		b.visitAll(n.Decorators, s)

		if n.Returns != nil {
			b.visit(n.Returns, s)
		}

		b.bind(s, n.Name, n)

		inner := newScope(n, s)
		b.index[n] = inner
		b.visitArgs(n.Args, s, inner)
		b.visitAll(n.Body, inner)

	case *node.Lambda:
		inner := newScope(n, s)
		b.index[n] = inner
		b.visitArgs(n.Args, s, inner)
		b.visit(n.Body, inner)

	case *node.Comprehension:
		inner := newScope(n, s)
		b.index[n] = inner

		for i, g := range n.Generators {
			if i == 0 {
				b.visit(g.Iter, s)
			} else {
				b.visit(g.Iter, inner)
			}

			b.visit(g.Target, inner)
			b.visitAll(g.Ifs, inner)
		}

		b.visit(n.Elt, inner)

		if n.Value != nil {
			b.visit(n.Value, inner)
		}

	case *node.Name:
		if n.Ctx == node.Store {
			b.bind(s, n.ID, n)
		}

	case *node.Import:
		for _, a := range n.Names {
			b.bind(s, a.Bound(), n)
		}

	case *node.ImportFrom:
		for _, a := range n.Names {
			if a.Name != "*" {
				b.bind(s, a.Bound(), n)
			}
		}

	case *node.Global:
		for _, name := range n.Names {
			s.globals[name] = struct{}{}
		}

	case *node.Nonlocal:
		for _, name := range n.Names {
			s.nonlocals[name] = struct{}{}
		}

	default:
		b.visitAll(n.Children(), s)
	}
}

// hoistGlobals moves bindings of names declared global to the module scope.
func (b *builder) hoistGlobals() {
	changed := make(map[string]struct{})

	for _, s := range b.index {
		if s == b.module {
			continue
		}

		for name := range s.globals {
			if bindings, ok := s.locals[name]; ok {
				b.module.locals[name] = append(b.module.locals[name], bindings...)
				delete(s.locals, name)

				changed[name] = struct{}{}
			}
		}
	}

	for name := range changed {
		slices.SortFunc(b.module.locals[name], func(a, c node.Node) int {
			return cmp.Compare(a.Span().Start.Offset, c.Span().Start.Offset)
		})
	}
}
