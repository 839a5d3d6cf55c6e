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

package node

import "strings"

// Render returns a canonical, source-like form of n for use in messages.
// It is not meant to be parsed again.
func Render(n Node) string {
	var p printer
	p.node(n)

	return strings.TrimSuffix(p.String(), "\n")
}

type printer struct {
	strings.Builder
	indent int
}

func (p *printer) line(parts ...string) {
	for range p.indent {
		p.WriteString("    ")
	}

	for _, s := range parts {
		p.WriteString(s)
	}

	p.WriteByte('\n')
}

func (p *printer) block(stmts []Node) {
	p.indent++
	defer func() { p.indent-- }()

	if len(stmts) == 0 {
		p.line("pass")

		return
	}

	for _, s := range stmts {
		p.node(s)
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Module:
		for _, s := range n.Body {
			p.node(s)
		}

	case *ClassDef:
		p.decorators(n.Decorators)

		head := "class " + n.Name
		if len(n.Bases) > 0 || len(n.Keywords) > 0 {
			args := exprs(n.Bases)
			for _, k := range n.Keywords {
				args = append(args, expr(k))
			}

			head += "(" + strings.Join(args, ", ") + ")"
		}

		p.line(head, ":")
		p.block(n.Body)

	case *FunctionDef:
		p.decorators(n.Decorators)

		head := "def " + n.Name + "(" + params(n.Args) + ")"
		if n.Async {
			head = "async " + head
		}

		if n.Returns != nil {
			head += " -> " + expr(n.Returns)
		}

		p.line(head, ":")
		p.block(n.Body)

	case *Try:
		p.line("try:")
		p.block(n.Body)

		for _, h := range n.Handlers {
			p.node(h)
		}

		if len(n.Orelse) > 0 {
			p.line("else:")
			p.block(n.Orelse)
		}

		if len(n.Finalbody) > 0 {
			p.line("finally:")
			p.block(n.Finalbody)
		}

	case *ExceptHandler:
		head := "except"
		if n.Star {
			head += "*"
		}

		if n.Type != nil {
			head += " " + expr(n.Type)
		}

		if n.Name != nil {
			head += " as " + n.Name.ID
		}

		p.line(head, ":")
		p.block(n.Body)

	case *If:
		p.ifChain("if ", n)

	case *For:
		head := "for " + expr(n.Target) + " in " + expr(n.Iter)
		if n.Async {
			head = "async " + head
		}

		p.line(head, ":")
		p.block(n.Body)
		p.orelse(n.Orelse)

	case *While:
		p.line("while ", expr(n.Test), ":")
		p.block(n.Body)
		p.orelse(n.Orelse)

	case *With:
		items := make([]string, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, expr(it))
		}

		head := "with " + strings.Join(items, ", ")
		if n.Async {
			head = "async " + head
		}

		p.line(head, ":")
		p.block(n.Body)

	case *Match:
		p.line("match ", expr(n.Subject), ":")

		p.indent++
		for _, c := range n.Cases {
			p.node(c)
		}
		p.indent--

	case *MatchCase:
		head := "case " + expr(n.Pattern)
		if n.Guard != nil {
			head += " if " + expr(n.Guard)
		}

		p.line(head, ":")
		p.block(n.Body)

	default:
		if n != nil && n.Kind().Statement() {
			p.line(simpleStmt(n))

			return
		}

		p.WriteString(expr(n))
	}
}

func (p *printer) decorators(decorators []Node) {
	for _, d := range decorators {
		p.line("@", expr(d))
	}
}

func (p *printer) ifChain(keyword string, n *If) {
	p.line(keyword, expr(n.Test), ":")
	p.block(n.Body)

	if len(n.Orelse) == 1 {
		if elif, ok := n.Orelse[0].(*If); ok && elif.Span().Start.Col == n.Span().Start.Col && elif.Span().Start.Line > n.Span().Start.Line {
			p.ifChain("elif ", elif)

			return
		}
	}

	p.orelse(n.Orelse)
}

func (p *printer) orelse(stmts []Node) {
	if len(stmts) == 0 {
		return
	}

	p.line("else:")
	p.block(stmts)
}

func simpleStmt(n Node) string {
	switch n := n.(type) {
	case *Assign:
		return strings.Join(exprs(n.Targets), " = ") + " = " + expr(n.Value)

	case *AugAssign:
		return expr(n.Target) + " " + n.Op + " " + expr(n.Value)

	case *AnnAssign:
		s := expr(n.Target) + ": " + expr(n.Annotation)
		if n.Value != nil {
			s += " = " + expr(n.Value)
		}

		return s

	case *Return:
		if n.Value == nil {
			return "return"
		}

		return "return " + expr(n.Value)

	case *Raise:
		s := "raise"
		if n.Exc != nil {
			s += " " + expr(n.Exc)
		}

		if n.Cause != nil {
			s += " from " + expr(n.Cause)
		}

		return s

	case *Pass:
		return "pass"

	case *Break:
		return "break"

	case *Continue:
		return "continue"

	case *Expr:
		return expr(n.Value)

	case *Import:
		return "import " + aliases(n.Names)

	case *ImportFrom:
		return "from " + strings.Repeat(".", n.Level) + n.Module + " import " + aliases(n.Names)

	case *Global:
		return "global " + strings.Join(n.Names, ", ")

	case *Nonlocal:
		return "nonlocal " + strings.Join(n.Names, ", ")

	case *Delete:
		return "del " + strings.Join(exprs(n.Targets), ", ")

	case *Assert:
		s := "assert " + expr(n.Test)
		if n.Msg != nil {
			s += ", " + expr(n.Msg)
		}

		return s

	default:
		return expr(n)
	}
}

func aliases(names []Alias) string {
	parts := make([]string, 0, len(names))
	for _, a := range names {
		if a.AsName != "" {
			parts = append(parts, a.Name+" as "+a.AsName)
		} else {
			parts = append(parts, a.Name)
		}
	}

	return strings.Join(parts, ", ")
}

func exprs(nodes []Node) []string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, expr(n))
	}

	return parts
}

func params(args []*Arg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, expr(a))
	}

	return strings.Join(parts, ", ")
}

func expr(n Node) string {
	switch n := n.(type) {
	case nil:
		return ""

	case *Name:
		return n.ID

	case *Const:
		return n.Value

	case *Attribute:
		return operand(n.Value) + "." + n.Attr

	case *Subscript:
		index := expr(n.Index)
		if t, ok := n.Index.(*Tuple); ok && len(t.Elts) > 0 {
			index = strings.Join(exprs(t.Elts), ", ")
		}

		return operand(n.Value) + "[" + index + "]"

	case *Tuple:
		if len(n.Elts) == 1 {
			return "(" + expr(n.Elts[0]) + ",)"
		}

		return "(" + strings.Join(exprs(n.Elts), ", ") + ")"

	case *List:
		return "[" + strings.Join(exprs(n.Elts), ", ") + "]"

	case *Set:
		return "{" + strings.Join(exprs(n.Elts), ", ") + "}"

	case *Dict:
		parts := make([]string, 0, len(n.Values))
		for i, v := range n.Values {
			if i < len(n.Keys) && n.Keys[i] != nil {
				parts = append(parts, expr(n.Keys[i])+": "+expr(v))
			} else {
				parts = append(parts, "**"+expr(v))
			}
		}

		return "{" + strings.Join(parts, ", ") + "}"

	case *Comprehension:
		return comprehension(n)

	case *BoolOp:
		parts := make([]string, 0, len(n.Values))
		for _, v := range n.Values {
			parts = append(parts, operand(v))
		}

		return strings.Join(parts, " "+n.Op+" ")

	case *BinOp:
		return operand(n.Left) + " " + n.Op + " " + operand(n.Right)

	case *UnaryOp:
		if n.Op == "not" {
			return "not " + operand(n.Operand)
		}

		return n.Op + operand(n.Operand)

	case *Compare:
		var b strings.Builder

		b.WriteString(operand(n.Left))

		for i, op := range n.Ops {
			b.WriteString(" " + op + " ")

			if i < len(n.Comparators) {
				b.WriteString(operand(n.Comparators[i]))
			}
		}

		return b.String()

	case *Call:
		args := exprs(n.Args)
		for _, k := range n.Keywords {
			args = append(args, expr(k))
		}

		return operand(n.Func) + "(" + strings.Join(args, ", ") + ")"

	case *Keyword:
		if n.Arg == "" {
			return "**" + expr(n.Value)
		}

		return n.Arg + "=" + expr(n.Value)

	case *IfExp:
		return operand(n.Body) + " if " + operand(n.Test) + " else " + operand(n.Orelse)

	case *Starred:
		return "*" + operand(n.Value)

	case *Lambda:
		if len(n.Args) == 0 {
			return "lambda: " + expr(n.Body)
		}

		return "lambda " + params(n.Args) + ": " + expr(n.Body)

	case *Arg:
		s := n.Star + n.Name
		if n.Annotation != nil {
			s += ": " + expr(n.Annotation)
		}

		if n.Default != nil {
			if n.Annotation != nil {
				s += " = " + expr(n.Default)
			} else {
				s += "=" + expr(n.Default)
			}
		}

		return s

	case *WithItem:
		if n.Vars == nil {
			return expr(n.Context)
		}

		return expr(n.Context) + " as " + expr(n.Vars)

	case *Unsupported:
		return n.Text

	default:
		if n.Kind().Statement() {
			var p printer
			p.node(n)

			return strings.TrimSuffix(p.String(), "\n")
		}

		return "<" + n.Kind().String() + ">"
	}
}

// operand renders n, parenthesized when it binds looser than an atom.
func operand(n Node) string {
	switch n.(type) {
	case *BoolOp, *BinOp, *UnaryOp, *Compare, *IfExp, *Lambda:
		return "(" + expr(n) + ")"

	default:
		return expr(n)
	}
}

func comprehension(n *Comprehension) string {
	var b strings.Builder

	if n.Type == DictComp {
		b.WriteString(expr(n.Elt) + ": " + expr(n.Value))
	} else {
		b.WriteString(expr(n.Elt))
	}

	for _, g := range n.Generators {
		if g.Async {
			b.WriteString(" async")
		}

		target := expr(g.Target)
		if t, ok := g.Target.(*Tuple); ok && len(t.Elts) > 1 {
			target = strings.Join(exprs(t.Elts), ", ")
		}

		b.WriteString(" for " + target + " in " + operand(g.Iter))

		for _, c := range g.Ifs {
			b.WriteString(" if " + operand(c))
		}
	}

	switch n.Type {
	case ListComp:
		return "[" + b.String() + "]"
	case SetComp, DictComp:
		return "{" + b.String() + "}"
	default:
		return "(" + b.String() + ")"
	}
}
