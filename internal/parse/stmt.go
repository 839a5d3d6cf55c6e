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

package parse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/pycheck/internal/node"
)

type converter struct {
	src []byte
}

func (c *converter) at(n *sitter.Node) node.Base {
	return node.At(node.Span{Start: pos(n), End: end(n)})
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(c.src)
}

// named returns the named children of n, comments excluded.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	var result []*sitter.Node
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch != nil && ch.IsNamed() && ch.Type() != "comment" {
			result = append(result, ch)
		}
	}

	return result
}

// hasToken reports whether n has an anonymous child of the given type.
func hasToken(n *sitter.Node, token string) bool {
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch != nil && !ch.IsNamed() && ch.Type() == token {
			return true
		}
	}

	return false
}

func same(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// stmts converts the statements of a module or block.
func (c *converter) stmts(block *sitter.Node) []node.Node {
	var result []node.Node
	for _, s := range named(block) {
		result = append(result, c.stmt(s))
	}

	return result
}

func (c *converter) stmt(n *sitter.Node) node.Node {
	switch n.Type() {
	case "expression_statement":
		return c.exprStmt(n)

	case "if_statement":
		return c.ifStmt(n)

	case "for_statement":
		return &node.For{
			Base:   c.at(n),
			Target: c.target(n.ChildByFieldName("left"), node.Store),
			Iter:   c.expr(n.ChildByFieldName("right")),
			Body:   c.stmts(n.ChildByFieldName("body")),
			Orelse: c.elseBody(n.ChildByFieldName("alternative")),
			Async:  hasToken(n, "async"),
		}

	case "while_statement":
		return &node.While{
			Base:   c.at(n),
			Test:   c.expr(n.ChildByFieldName("condition")),
			Body:   c.stmts(n.ChildByFieldName("body")),
			Orelse: c.elseBody(n.ChildByFieldName("alternative")),
		}

	case "try_statement":
		return c.tryStmt(n)

	case "match_statement":
		return c.matchStmt(n)

	case "with_statement":
		return c.withStmt(n)

	case "function_definition":
		return c.functionDef(n, nil)

	case "class_definition":
		return c.classDef(n, nil)

	case "decorated_definition":
		return c.decorated(n)

	case "return_statement":
		r := &node.Return{Base: c.at(n)}
		if v := named(n); len(v) > 0 {
			r.Value = c.expr(v[0])
		}

		return r

	case "raise_statement":
		return c.raiseStmt(n)

	case "pass_statement":
		return &node.Pass{Base: c.at(n)}

	case "break_statement":
		return &node.Break{Base: c.at(n)}

	case "continue_statement":
		return &node.Continue{Base: c.at(n)}

	case "import_statement":
		return &node.Import{Base: c.at(n), Names: c.aliases(named(n))}

	case "import_from_statement":
		return c.importFrom(n)

	case "future_import_statement":
		return &node.ImportFrom{Base: c.at(n), Module: "__future__", Names: c.aliases(named(n))}

	case "global_statement":
		return &node.Global{Base: c.at(n), Names: c.identifiers(n)}

	case "nonlocal_statement":
		return &node.Nonlocal{Base: c.at(n), Names: c.identifiers(n)}

	case "delete_statement":
		d := &node.Delete{Base: c.at(n)}
		for _, t := range named(n) {
			if t.Type() == "expression_list" {
				for _, e := range named(t) {
					d.Targets = append(d.Targets, c.target(e, node.Del))
				}

				continue
			}

			d.Targets = append(d.Targets, c.target(t, node.Del))
		}

		return d

	case "assert_statement":
		a := &node.Assert{Base: c.at(n)}
		if v := named(n); len(v) > 0 {
			a.Test = c.expr(v[0])
			if len(v) > 1 {
				a.Msg = c.expr(v[1])
			}
		}

		return a

	default:
		return &node.Expr{Base: c.at(n), Value: c.unsupported(n)}
	}
}

func (c *converter) exprStmt(n *sitter.Node) node.Node {
	children := named(n)

	if len(children) == 1 {
		switch e := children[0]; e.Type() {
		case "assignment":
			return c.assignment(n, e)

		case "augmented_assignment":
			return &node.AugAssign{
				Base:   c.at(n),
				Target: c.target(e.ChildByFieldName("left"), node.Store),
				Op:     c.text(e.ChildByFieldName("operator")),
				Value:  c.expr(e.ChildByFieldName("right")),
			}

		default:
			return &node.Expr{Base: c.at(n), Value: c.expr(e)}
		}
	}

	elts := make([]node.Node, 0, len(children))
	for _, e := range children {
		elts = append(elts, c.expr(e))
	}

	return &node.Expr{Base: c.at(n), Value: &node.Tuple{Base: c.at(n), Elts: elts}}
}

// assignment converts a (possibly chained or annotated) assignment.
func (c *converter) assignment(stmt, n *sitter.Node) node.Node {
	var targets []node.Node

	for {
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")

		if typ := n.ChildByFieldName("type"); typ != nil && len(targets) == 0 {
			a := &node.AnnAssign{
				Base:       c.at(stmt),
				Target:     c.target(left, node.Store),
				Annotation: c.expr(typ),
			}
			if right != nil {
				a.Value = c.expr(right)
			}

			return a
		}

		targets = append(targets, c.target(left, node.Store))

		if right != nil && right.Type() == "assignment" {
			n = right

			continue
		}

		return &node.Assign{Base: c.at(stmt), Targets: targets, Value: c.expr(right)}
	}
}

func (c *converter) ifStmt(n *sitter.Node) node.Node {
	root := &node.If{
		Base: c.at(n),
		Test: c.expr(n.ChildByFieldName("condition")),
		Body: c.stmts(n.ChildByFieldName("consequence")),
	}

	var alternatives []*sitter.Node
	for _, ch := range named(n) {
		if t := ch.Type(); t == "elif_clause" || t == "else_clause" {
			alternatives = append(alternatives, ch)
		}
	}

	var tail []node.Node
	for i := len(alternatives) - 1; i >= 0; i-- {
		alt := alternatives[i]
		if alt.Type() == "else_clause" {
			tail = c.elseBody(alt)

			continue
		}

		tail = []node.Node{&node.If{
			Base:   c.at(alt),
			Test:   c.expr(alt.ChildByFieldName("condition")),
			Body:   c.stmts(alt.ChildByFieldName("consequence")),
			Orelse: tail,
		}}
	}

	root.Orelse = tail

	return root
}

func (c *converter) elseBody(n *sitter.Node) []node.Node {
	if n == nil {
		return nil
	}

	if body := n.ChildByFieldName("body"); body != nil {
		return c.stmts(body)
	}

	return c.stmts(blockOf(n))
}

// blockOf returns the first block child of a clause.
func blockOf(n *sitter.Node) *sitter.Node {
	for _, ch := range named(n) {
		if ch.Type() == "block" {
			return ch
		}
	}

	return nil
}

func (c *converter) tryStmt(n *sitter.Node) node.Node {
	t := &node.Try{Base: c.at(n), Body: c.stmts(n.ChildByFieldName("body"))}

	for _, ch := range named(n) {
		switch ch.Type() {
		case "except_clause":
			t.Handlers = append(t.Handlers, c.handler(ch, false))

		case "except_group_clause":
			t.Handlers = append(t.Handlers, c.handler(ch, true))

		case "else_clause":
			t.Orelse = c.elseBody(ch)

		case "finally_clause":
			t.Finalbody = c.stmts(blockOf(ch))
		}
	}

	return t
}

// handler converts an except clause. The grammar has represented the bound
// name both as a sibling expression and as an as_pattern over the type.
func (c *converter) handler(n *sitter.Node, star bool) *node.ExceptHandler {
	h := &node.ExceptHandler{Base: c.at(n), Star: star}

	for _, ch := range named(n) {
		switch ch.Type() {
		case "block":
			h.Body = c.stmts(ch)

		case "as_pattern":
			parts := named(ch)
			if len(parts) > 0 {
				h.Type = c.expr(parts[0])
			}

			if len(parts) > 1 {
				h.Name = c.boundName(parts[len(parts)-1])
			}

		default:
			if h.Type == nil {
				h.Type = c.expr(ch)
			} else if h.Name == nil {
				h.Name = c.boundName(ch)
			}
		}
	}

	return h
}

// boundName converts the target of an "as" clause into a store name, or nil.
func (c *converter) boundName(n *sitter.Node) *node.Name {
	if n.Type() == "as_pattern_target" {
		if inner := named(n); len(inner) == 1 {
			n = inner[0]
		}
	}

	if t := n.Type(); t != "identifier" && t != "as_pattern_target" {
		return nil
	}

	return &node.Name{Base: c.at(n), ID: c.text(n), Ctx: node.Store}
}

func (c *converter) withStmt(n *sitter.Node) node.Node {
	w := &node.With{Base: c.at(n), Body: c.stmts(n.ChildByFieldName("body")), Async: hasToken(n, "async")}

	var items []*sitter.Node
	for _, ch := range named(n) {
		switch ch.Type() {
		case "with_clause":
			for _, it := range named(ch) {
				if it.Type() == "with_item" {
					items = append(items, it)
				}
			}

		case "with_item":
			items = append(items, ch)
		}
	}

	for _, it := range items {
		item := &node.WithItem{Base: c.at(it)}

		value := it.ChildByFieldName("value")
		if value == nil {
			if v := named(it); len(v) > 0 {
				value = v[0]
			}
		}

		switch {
		case value == nil:
			item.Context = c.unsupported(it)

		case value.Type() == "as_pattern":
			parts := named(value)
			item.Context = c.expr(parts[0])

			if len(parts) > 1 {
				target := parts[len(parts)-1]
				if inner := named(target); target.Type() == "as_pattern_target" && len(inner) == 1 {
					target = inner[0]
				}

				item.Vars = c.target(target, node.Store)
			}

		default:
			item.Context = c.expr(value)
			if alias := it.ChildByFieldName("alias"); alias != nil {
				item.Vars = c.target(alias, node.Store)
			}
		}

		w.Items = append(w.Items, item)
	}

	return w
}

func (c *converter) decorated(n *sitter.Node) node.Node {
	var decorators []node.Node

	for _, ch := range named(n) {
		if ch.Type() == "decorator" {
			if e := named(ch); len(e) > 0 {
				decorators = append(decorators, c.expr(e[0]))
			}
		}
	}

	def := n.ChildByFieldName("definition")
	if def == nil {
		return &node.Expr{Base: c.at(n), Value: c.unsupported(n)}
	}

	switch def.Type() {
	case "function_definition":
		return c.functionDef(def, decorators)

	case "class_definition":
		return c.classDef(def, decorators)

	default:
		return &node.Expr{Base: c.at(n), Value: c.unsupported(def)}
	}
}

func (c *converter) functionDef(n *sitter.Node, decorators []node.Node) node.Node {
	f := &node.FunctionDef{
		Base:       c.at(n),
		Name:       c.text(n.ChildByFieldName("name")),
		Decorators: decorators,
		Args:       c.params(n.ChildByFieldName("parameters")),
		Body:       c.stmts(n.ChildByFieldName("body")),
		Async:      hasToken(n, "async"),
	}

	if r := n.ChildByFieldName("return_type"); r != nil {
		f.Returns = c.expr(r)
	}

	return f
}

func (c *converter) classDef(n *sitter.Node, decorators []node.Node) node.Node {
	cls := &node.ClassDef{
		Base:       c.at(n),
		Name:       c.text(n.ChildByFieldName("name")),
		Decorators: decorators,
		Body:       c.stmts(n.ChildByFieldName("body")),
	}

	if sup := n.ChildByFieldName("superclasses"); sup != nil {
		for _, a := range named(sup) {
			switch a.Type() {
			case "keyword_argument", "dictionary_splat":
				cls.Keywords = append(cls.Keywords, c.keyword(a))

			default:
				cls.Bases = append(cls.Bases, c.expr(a))
			}
		}
	}

	return cls
}

func (c *converter) params(n *sitter.Node) []*node.Arg {
	var args []*node.Arg

	for _, p := range named(n) {
		a := &node.Arg{Base: c.at(p)}

		switch p.Type() {
		case "identifier":
			a.Name = c.text(p)

		case "list_splat_pattern", "dictionary_splat_pattern":
			c.splatParam(a, p)

		case "typed_parameter":
			a.Annotation = c.expr(p.ChildByFieldName("type"))
			if inner := named(p); len(inner) > 0 {
				switch inner[0].Type() {
				case "list_splat_pattern", "dictionary_splat_pattern":
					c.splatParam(a, inner[0])
				default:
					a.Name = c.text(inner[0])
				}
			}

		case "default_parameter", "typed_default_parameter":
			a.Name = c.text(p.ChildByFieldName("name"))
			a.Default = c.expr(p.ChildByFieldName("value"))

			if typ := p.ChildByFieldName("type"); typ != nil {
				a.Annotation = c.expr(typ)
			}

		default: // separators and unsupported patterns
			continue
		}

		args = append(args, a)
	}

	return args
}

func (c *converter) splatParam(a *node.Arg, p *sitter.Node) {
	a.Star = "*"
	if p.Type() == "dictionary_splat_pattern" {
		a.Star = "**"
	}

	if inner := named(p); len(inner) > 0 {
		a.Name = c.text(inner[0])
	}
}

func (c *converter) raiseStmt(n *sitter.Node) node.Node {
	r := &node.Raise{Base: c.at(n)}

	cause := n.ChildByFieldName("cause")
	if cause != nil {
		r.Cause = c.expr(cause)
	}

	for _, ch := range named(n) {
		if !same(ch, cause) {
			r.Exc = c.expr(ch)

			break
		}
	}

	return r
}

func (c *converter) aliases(nodes []*sitter.Node) []node.Alias {
	var result []node.Alias

	for _, n := range nodes {
		switch n.Type() {
		case "dotted_name", "identifier":
			result = append(result, node.Alias{Name: c.text(n)})

		case "aliased_import":
			result = append(result, node.Alias{
				Name:   c.text(n.ChildByFieldName("name")),
				AsName: c.text(n.ChildByFieldName("alias")),
			})

		case "wildcard_import":
			result = append(result, node.Alias{Name: "*"})
		}
	}

	return result
}

func (c *converter) importFrom(n *sitter.Node) node.Node {
	imp := &node.ImportFrom{Base: c.at(n)}

	children := named(n)
	if len(children) == 0 {
		return imp
	}

	module := n.ChildByFieldName("module_name")
	if module == nil {
		module = children[0]
	}

	switch module.Type() {
	case "relative_import":
		for _, part := range named(module) {
			switch part.Type() {
			case "import_prefix":
				imp.Level = strings.Count(c.text(part), ".")
			case "dotted_name":
				imp.Module = c.text(part)
			}
		}

	default:
		imp.Module = c.text(module)
	}

	var names []*sitter.Node
	for _, ch := range children {
		if !same(ch, module) {
			names = append(names, ch)
		}
	}

	imp.Names = c.aliases(names)

	return imp
}

func (c *converter) identifiers(n *sitter.Node) []string {
	var names []string
	for _, ch := range named(n) {
		if ch.Type() == "identifier" {
			names = append(names, c.text(ch))
		}
	}

	return names
}

// matchStmt converts a match statement. Only subjects, guards and case
// bodies are modelled, patterns are kept as source text.
func (c *converter) matchStmt(n *sitter.Node) *node.Match {
	m := &node.Match{Base: c.at(n)}

	var subjects []*sitter.Node

	for _, ch := range named(n) {
		switch ch.Type() {
		case "block":
			for _, cc := range named(ch) {
				if cc.Type() == "case_clause" {
					m.Cases = append(m.Cases, c.caseClause(cc))
				}
			}

		case "case_clause":
			m.Cases = append(m.Cases, c.caseClause(ch))

		default:
			subjects = append(subjects, ch)
		}
	}

	switch len(subjects) {
	case 0:
		m.Subject = c.unsupported(n)

	case 1:
		m.Subject = c.expr(subjects[0])

	default:
		m.Subject = &node.Tuple{Base: c.at(subjects[0]), Elts: c.exprs(subjects, node.Load)}
	}

	return m
}

func (c *converter) caseClause(n *sitter.Node) *node.MatchCase {
	mc := &node.MatchCase{Base: c.at(n)}

	var first, last *sitter.Node

	for _, ch := range named(n) {
		switch ch.Type() {
		case "case_pattern":
			if first == nil {
				first = ch
			}

			last = ch

		case "if_clause":
			if g := named(ch); len(g) > 0 {
				mc.Guard = c.expr(g[0])
			}

		case "block":
			mc.Body = c.stmts(ch)
		}
	}

	if first == nil {
		mc.Pattern = &node.Unsupported{Base: c.at(n), Type: "case_pattern", Text: "_"}
	} else {
		mc.Pattern = &node.Unsupported{
			Base: node.At(node.Span{Start: pos(first), End: end(last)}),
			Type: "case_pattern",
			Text: string(c.src[first.StartByte():last.EndByte()]),
		}
	}

	return mc
}
