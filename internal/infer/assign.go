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

package infer

import (
	"iter"
	"slices"
	"sort"

	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/scope"
)

// precedingBindings filters the bindings of a name in the scope of its use.
//
// Only bindings in statements before the use, or in statements containing it,
// are kept. An assignment in the same statement list as the use (or one of its
// enclosing statements) hides all earlier bindings.
//
// bindings are in source order. They are scanned backwards from the use and
// the scan stops at the first hiding assignment.
func precedingBindings(s *scope.Scope, bindings []node.Node, use node.Node) []node.Node {
	switch s.Node.Kind() {
	case node.KindModule, node.KindClassDef, node.KindFunctionDef:
	default:
		return bindings
	}

	useStmt := node.Statement(use)
	if useStmt == nil {
		return bindings
	}

	start := useStmt.Span().Start
	before := sort.Search(len(bindings), func(i int) bool { return !bindings[i].Span().Start.Before(start) })

	var result []node.Node

	for i := before - 1; i >= 0; i-- {
		b := bindings[i]
		if b.Kind() == node.KindArg {
			result = append(result, b)

			continue
		}

		stmt := node.Statement(b)
		if stmt == nil || stmt == useStmt {
			continue
		}

		result = append(result, b)

		if !node.IsAncestor(stmt, useStmt) && unconditional(stmt) && dominates(stmt, useStmt) {
			break
		}
	}

	slices.Reverse(result)

	return result
}

// unconditional reports whether stmt always binds its names when executed.
func unconditional(stmt node.Node) bool {
	switch stmt.Kind() {
	case node.KindAssign, node.KindAnnAssign, node.KindAugAssign,
		node.KindClassDef, node.KindFunctionDef, node.KindImport, node.KindImportFrom:
		return true

	default:
		return false
	}
}

// dominates reports whether stmt shares its statement list with use or one of its ancestors.
func dominates(stmt, use node.Node) bool {
	for n := use; n != nil; n = n.Parent() {
		if node.SameList(stmt, n) {
			return true
		}
	}

	return false
}

// assigned infers the value bound to a store name.
func (c *Context) assigned(n *node.Name) iter.Seq2[Value, error] {
	var (
		child node.Node = n
		path  []int
	)

	for p := n.Parent(); p != nil; child, p = p, p.Parent() {
		switch p := p.(type) {
		case *node.Tuple:
			if hasStarred(p.Elts) {
				return single(Uninferable)
			}

			path = append(path, slices.Index(p.Elts, child))

		case *node.List:
			if hasStarred(p.Elts) {
				return single(Uninferable)
			}

			path = append(path, slices.Index(p.Elts, child))

		case *node.Starred:
			if len(path) > 0 {
				return single(Uninferable)
			}

			return single(Instantiate(builtinClasses["list"]))

		case *node.Assign:
			if slices.Contains(p.Targets, child) {
				return c.unpack(p.Value, reversed(path))
			}

			return failure(fail(n, "unexpected assignment shape"))

		case *node.AnnAssign:
			if p.Value == nil || len(path) > 0 {
				return single(Uninferable)
			}

			return c.Infer(p.Value)

		case *node.AugAssign:
			return single(Uninferable)

		case *node.For:
			return c.iterate(p.Iter, reversed(path))

		case *node.Comprehension:
			for _, g := range p.Generators {
				if g.Target == child {
					return c.iterate(g.Iter, reversed(path))
				}
			}

			return single(Uninferable)

		case *node.ExceptHandler:
			return c.caught(p)

		default:
			return single(Uninferable)
		}
	}

	return single(Uninferable)
}

func reversed(path []int) []int {
	slices.Reverse(path)

	return path
}

// unpack infers the value reached by following the element indices of path into value.
func (c *Context) unpack(value node.Node, path []int) iter.Seq2[Value, error] {
	if len(path) == 0 {
		return c.Infer(value)
	}

	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(value) {
			if err != nil {
				yield(nil, err)

				return
			}

			seq, ok := v.(*Instance)
			if !ok || seq.Elts == nil || path[0] >= len(seq.Elts) || hasStarred(seq.Elts) {
				if !yield(Uninferable, nil) {
					return
				}

				continue
			}

			for w, err := range c.unpack(seq.Elts[path[0]], path[1:]) {
				if !yield(w, err) || err != nil {
					return
				}
			}
		}
	}
}

func hasStarred(elts []node.Node) bool {
	return slices.ContainsFunc(elts, func(n node.Node) bool { return n.Kind() == node.KindStarred })
}

// iterate infers the elements of an iterable bound to a loop target.
func (c *Context) iterate(iterable node.Node, path []int) iter.Seq2[Value, error] {
	if len(path) > 0 {
		return single(Uninferable)
	}

	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(iterable) {
			if err != nil {
				yield(nil, err)

				return
			}

			var elements iter.Seq2[Value, error]

			switch seq, _ := v.(*Instance); {
			case seq == nil:
				elements = single(Uninferable)

			case seq.Elts != nil && !hasStarred(seq.Elts) && len(seq.Elts) > 0:
				elements = c.values(seq.Elts...)

			case seq.Class == builtinClasses["str"]:
				elements = single(Instantiate(builtinClasses["str"]))

			case seq.Class == builtinClasses["bytes"], seq.Class == builtinClasses["range"]:
				elements = single(Instantiate(builtinClasses["int"]))

			default:
				elements = single(Uninferable)
			}

			for w, err := range elements {
				if err != nil {
					w = Uninferable
				}

				if !yield(w, nil) {
					return
				}
			}
		}
	}
}

// caught yields instances of the exceptions an except clause handles.
func (c *Context) caught(h *node.ExceptHandler) iter.Seq2[Value, error] {
	if h.Type == nil {
		return single(Instantiate(builtinClasses["BaseException"]))
	}

	return func(yield func(Value, error) bool) {
		for part, err := range c.AnnotatedUnpack(h.Type) {
			if err != nil {
				yield(nil, err)

				return
			}

			var v Value = Uninferable
			if cls, ok := part.Value.(*Class); ok {
				v = &Instance{Class: cls}
			}

			if !yield(v, nil) {
				return
			}
		}
	}
}

// argument infers a parameter. Only the receiver of methods and star
// parameters are known; everything else depends on the caller.
func (c *Context) argument(a *node.Arg) iter.Seq2[Value, error] {
	switch a.Star {
	case "*":
		return single(Instantiate(builtinClasses["tuple"]))

	case "**":
		return single(Instantiate(builtinClasses["dict"]))
	}

	fn, ok := a.Parent().(*node.FunctionDef)
	if !ok || len(fn.Args) == 0 || fn.Args[0] != a {
		return single(Uninferable)
	}

	cls, ok := fn.Parent().(*node.ClassDef)
	if !ok {
		return single(Uninferable)
	}

	switch methodKind(fn) {
	case "staticmethod":
		return single(Uninferable)

	case "classmethod":
		return single(c.ClassOf(cls))

	default:
		return single(&Instance{Class: c.ClassOf(cls)})
	}
}

// methodKind returns "staticmethod", "classmethod", "property" for property
// and cached_property getters, "decorated" for other decorators or "" for a
// plain method.
func methodKind(fn *node.FunctionDef) string {
	kind := ""

	for _, d := range fn.Decorators {
		switch d := d.(type) {
		case *node.Name:
			switch d.ID {
			case "staticmethod", "classmethod":
				return d.ID

			case "property", "cached_property":
				kind = "property"

			default:
				kind = "decorated"
			}

		case *node.Attribute:
			if d.Attr == "cached_property" {
				kind = "property"
			} else {
				kind = "decorated"
			}

		default:
			kind = "decorated"
		}
	}

	if kind == "" && (fn.Name == "__new__" || fn.Name == "__init_subclass__" || fn.Name == "__class_getitem__") {
		return "classmethod"
	}

	return kind
}
