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

func (c *converter) expr(n *sitter.Node) node.Node { return c.exprCtx(n, node.Load) }

func (c *converter) target(n *sitter.Node, ctx node.Ctx) node.Node { return c.exprCtx(n, ctx) }

func (c *converter) unsupported(n *sitter.Node) node.Node {
	return &node.Unsupported{Base: c.at(n), Type: n.Type(), Text: c.text(n)}
}

func (c *converter) exprs(nodes []*sitter.Node, ctx node.Ctx) []node.Node {
	result := make([]node.Node, 0, len(nodes))
	for _, e := range nodes {
		result = append(result, c.exprCtx(e, ctx))
	}

	return result
}

//nolint:gocyclo,cyclop
func (c *converter) exprCtx(n *sitter.Node, ctx node.Ctx) node.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "identifier":
		return &node.Name{Base: c.at(n), ID: c.text(n), Ctx: ctx}

	case "attribute":
		return &node.Attribute{
			Base:  c.at(n),
			Value: c.expr(n.ChildByFieldName("object")),
			Attr:  c.text(n.ChildByFieldName("attribute")),
			Ctx:   ctx,
		}

	case "subscript":
		return c.subscript(n, ctx)

	case "call":
		return c.call(n)

	case "tuple", "expression_list", "pattern_list", "tuple_pattern":
		return &node.Tuple{Base: c.at(n), Elts: c.exprs(named(n), ctx), Ctx: ctx}

	case "list", "list_pattern":
		return &node.List{Base: c.at(n), Elts: c.exprs(named(n), ctx), Ctx: ctx}

	case "set":
		return &node.Set{Base: c.at(n), Elts: c.exprs(named(n), node.Load)}

	case "dictionary":
		return c.dict(n)

	case "list_comprehension", "set_comprehension", "dictionary_comprehension", "generator_expression":
		return c.comprehension(n)

	case "parenthesized_expression", "type":
		if inner := named(n); len(inner) == 1 {
			return c.exprCtx(inner[0], ctx)
		}

		return c.unsupported(n)

	case "boolean_operator":
		return c.boolOp(n)

	case "not_operator":
		return &node.UnaryOp{Base: c.at(n), Op: "not", Operand: c.expr(n.ChildByFieldName("argument"))}

	case "binary_operator":
		return &node.BinOp{
			Base:  c.at(n),
			Left:  c.expr(n.ChildByFieldName("left")),
			Op:    c.text(n.ChildByFieldName("operator")),
			Right: c.expr(n.ChildByFieldName("right")),
		}

	case "unary_operator":
		return &node.UnaryOp{
			Base:    c.at(n),
			Op:      c.text(n.ChildByFieldName("operator")),
			Operand: c.expr(n.ChildByFieldName("argument")),
		}

	case "comparison_operator":
		return c.compare(n)

	case "conditional_expression":
		parts := named(n)
		if len(parts) != 3 {
			return c.unsupported(n)
		}

		return &node.IfExp{Base: c.at(n), Body: c.expr(parts[0]), Test: c.expr(parts[1]), Orelse: c.expr(parts[2])}

	case "lambda":
		return &node.Lambda{
			Base: c.at(n),
			Args: c.params(n.ChildByFieldName("parameters")),
			Body: c.expr(n.ChildByFieldName("body")),
		}

	case "list_splat", "list_splat_pattern":
		if inner := named(n); len(inner) == 1 {
			return &node.Starred{Base: c.at(n), Value: c.exprCtx(inner[0], ctx), Ctx: ctx}
		}

		return c.unsupported(n)

	case "integer", "float":
		return c.number(n)

	case "string", "concatenated_string":
		typ := node.ConstStr
		if isBytes(c.text(n)) {
			typ = node.ConstBytes
		}

		return &node.Const{Base: c.at(n), Type: typ, Value: c.text(n)}

	case "true", "false":
		return &node.Const{Base: c.at(n), Type: node.ConstBool, Value: c.text(n)}

	case "none":
		return &node.Const{Base: c.at(n), Type: node.ConstNone, Value: "None"}

	case "ellipsis":
		return &node.Const{Base: c.at(n), Type: node.ConstEllipsis, Value: "..."}

	default:
		return c.unsupported(n)
	}
}

func (c *converter) subscript(n *sitter.Node, ctx node.Ctx) node.Node {
	value := n.ChildByFieldName("value")

	var indices []*sitter.Node
	for _, ch := range named(n) {
		if !same(ch, value) {
			indices = append(indices, ch)
		}
	}

	s := &node.Subscript{Base: c.at(n), Value: c.expr(value), Ctx: ctx}

	switch len(indices) {
	case 0:
		s.Index = c.unsupported(n)

	case 1:
		s.Index = c.expr(indices[0])

	default:
		s.Index = &node.Tuple{
			Base: node.At(node.Span{Start: pos(indices[0]), End: end(indices[len(indices)-1])}),
			Elts: c.exprs(indices, node.Load),
		}
	}

	return s
}

func (c *converter) call(n *sitter.Node) node.Node {
	call := &node.Call{Base: c.at(n), Func: c.expr(n.ChildByFieldName("function"))}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call
	}

	if args.Type() == "generator_expression" {
		call.Args = []node.Node{c.comprehension(args)}

		return call
	}

	for _, a := range named(args) {
		switch a.Type() {
		case "keyword_argument", "dictionary_splat":
			call.Keywords = append(call.Keywords, c.keyword(a))

		default:
			call.Args = append(call.Args, c.expr(a))
		}
	}

	return call
}

func (c *converter) keyword(n *sitter.Node) *node.Keyword {
	if n.Type() == "dictionary_splat" {
		k := &node.Keyword{Base: c.at(n)}
		if inner := named(n); len(inner) > 0 {
			k.Value = c.expr(inner[0])
		}

		return k
	}

	return &node.Keyword{
		Base:  c.at(n),
		Arg:   c.text(n.ChildByFieldName("name")),
		Value: c.expr(n.ChildByFieldName("value")),
	}
}

func (c *converter) dict(n *sitter.Node) node.Node {
	d := &node.Dict{Base: c.at(n)}

	for _, ch := range named(n) {
		switch ch.Type() {
		case "pair":
			d.Keys = append(d.Keys, c.expr(ch.ChildByFieldName("key")))
			d.Values = append(d.Values, c.expr(ch.ChildByFieldName("value")))

		case "dictionary_splat":
			d.Keys = append(d.Keys, nil)
			if inner := named(ch); len(inner) > 0 {
				d.Values = append(d.Values, c.expr(inner[0]))
			} else {
				d.Values = append(d.Values, c.unsupported(ch))
			}
		}
	}

	return d
}

func (c *converter) comprehension(n *sitter.Node) node.Node {
	comp := &node.Comprehension{Base: c.at(n)}

	switch n.Type() {
	case "list_comprehension":
		comp.Type = node.ListComp
	case "set_comprehension":
		comp.Type = node.SetComp
	case "dictionary_comprehension":
		comp.Type = node.DictComp
	default:
		comp.Type = node.GeneratorExp
	}

	body := n.ChildByFieldName("body")
	if comp.Type == node.DictComp && body != nil && body.Type() == "pair" {
		comp.Elt = c.expr(body.ChildByFieldName("key"))
		comp.Value = c.expr(body.ChildByFieldName("value"))
	} else {
		comp.Elt = c.expr(body)
	}

	for _, ch := range named(n) {
		switch ch.Type() {
		case "for_in_clause":
			comp.Generators = append(comp.Generators, node.Generator{
				Target: c.target(ch.ChildByFieldName("left"), node.Store),
				Iter:   c.expr(ch.ChildByFieldName("right")),
				Async:  hasToken(ch, "async"),
			})

		case "if_clause":
			if len(comp.Generators) == 0 {
				continue
			}

			if cond := named(ch); len(cond) > 0 {
				g := &comp.Generators[len(comp.Generators)-1]
				g.Ifs = append(g.Ifs, c.expr(cond[0]))
			}
		}
	}

	return comp
}

// boolOp flattens left-associated chains of the same operator.
func (c *converter) boolOp(n *sitter.Node) node.Node {
	op := c.text(n.ChildByFieldName("operator"))
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")

	var values []node.Node

	if left != nil && left.Type() == "boolean_operator" && c.text(left.ChildByFieldName("operator")) == op {
		if inner, ok := c.boolOp(left).(*node.BoolOp); ok {
			values = inner.Values
		}
	} else {
		values = append(values, c.expr(left))
	}

	values = append(values, c.expr(right))

	return &node.BoolOp{Base: c.at(n), Op: op, Values: values}
}

func (c *converter) compare(n *sitter.Node) node.Node {
	cmp := &node.Compare{Base: c.at(n)}

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		switch {
		case ch == nil || ch.Type() == "comment":
			continue

		case ch.IsNamed():
			if cmp.Left == nil {
				cmp.Left = c.expr(ch)
			} else {
				cmp.Comparators = append(cmp.Comparators, c.expr(ch))
			}

		default:
			cmp.Ops = append(cmp.Ops, strings.Join(strings.Fields(ch.Type()), " "))
		}
	}

	return cmp
}

func (c *converter) number(n *sitter.Node) node.Node {
	text := c.text(n)

	typ := node.ConstInt
	switch {
	case strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J"):
		typ = node.ConstComplex

	case n.Type() == "float":
		typ = node.ConstFloat
	}

	return &node.Const{Base: c.at(n), Type: typ, Value: text}
}

// isBytes reports whether a string literal carries a bytes prefix.
func isBytes(literal string) bool {
	prefix, _, _ := strings.Cut(literal, `"`)
	if i := strings.IndexByte(prefix, '\''); i >= 0 {
		prefix = prefix[:i]
	}

	return strings.ContainsAny(prefix, "bB")
}
