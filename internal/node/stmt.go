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

// Module is the root of a tree.
type Module struct {
	Base
	Name string // module name, e.g. "pkg.mod"
	Path string // file path, may be empty
	Body []Node
}

// ClassDef is a class statement.
type ClassDef struct {
	Base
	Name       string
	Decorators []Node
	Bases      []Node
	Keywords   []*Keyword
	Body       []Node
}

// FunctionDef is a def statement.
type FunctionDef struct {
	Base
	Name       string
	Decorators []Node
	Args       []*Arg
	Returns    Node
	Body       []Node
	Async      bool
}

// Arg is a single parameter of a function or lambda.
type Arg struct {
	Base
	Name       string
	Star       string // "", "*" or "**"
	Annotation Node
	Default    Node
}

// Try is a try statement with its handlers.
type Try struct {
	Base
	Body      []Node
	Handlers  []*ExceptHandler
	Orelse    []Node
	Finalbody []Node
}

// ExceptHandler is one except clause of a [Try].
type ExceptHandler struct {
	Base
	Type Node  // nil for a bare except
	Name *Name // nil without "as"
	Body []Node
	Star bool // except*
}

// Assign is an assignment with one or more targets.
type Assign struct {
	Base
	Targets []Node
	Value   Node
}

// AugAssign is an augmented assignment like x += 1.
type AugAssign struct {
	Base
	Target Node
	Op     string
	Value  Node
}

// AnnAssign is an annotated assignment like x: int = 1.
type AnnAssign struct {
	Base
	Target     Node
	Annotation Node
	Value      Node // may be nil
}

// If is an if statement. An elif chain nests an If as the only Orelse statement.
type If struct {
	Base
	Test   Node
	Body   []Node
	Orelse []Node
}

// For is a for loop.
type For struct {
	Base
	Target Node
	Iter   Node
	Body   []Node
	Orelse []Node
	Async  bool
}

// While is a while loop.
type While struct {
	Base
	Test   Node
	Body   []Node
	Orelse []Node
}

// With is a with statement.
type With struct {
	Base
	Items []*WithItem
	Body  []Node
	Async bool
}

// WithItem is a single context manager of a [With].
type WithItem struct {
	Base
	Context Node
	Vars    Node // may be nil
}

// Match is a match statement.
type Match struct {
	Base
	Subject Node
	Cases   []*MatchCase
}

// MatchCase is one case clause of a [Match]. Patterns are kept as [Unsupported].
type MatchCase struct {
	Base
	Pattern Node
	Guard   Node // may be nil
	Body    []Node
}

// Return is a return statement.
type Return struct {
	Base
	Value Node // may be nil
}

// Raise is a raise statement.
type Raise struct {
	Base
	Exc   Node // may be nil
	Cause Node // may be nil
}

// Pass is a pass statement.
type Pass struct{ Base }

// Break is a break statement.
type Break struct{ Base }

// Continue is a continue statement.
type Continue struct{ Base }

// Expr is an expression statement.
type Expr struct {
	Base
	Value Node
}

// Import is an import statement.
type Import struct {
	Base
	Names []Alias
}

// ImportFrom is a from ... import statement.
type ImportFrom struct {
	Base
	Module string
	Level  int
	Names  []Alias // a single "*" alias for wildcard imports
}

// Global is a global declaration.
type Global struct {
	Base
	Names []string
}

// Nonlocal is a nonlocal declaration.
type Nonlocal struct {
	Base
	Names []string
}

// Delete is a del statement.
type Delete struct {
	Base
	Targets []Node
}

// Assert is an assert statement.
type Assert struct {
	Base
	Test Node
	Msg  Node // may be nil
}

func (*Module) Kind() Kind        { return KindModule }
func (*ClassDef) Kind() Kind      { return KindClassDef }
func (*FunctionDef) Kind() Kind   { return KindFunctionDef }
func (*Arg) Kind() Kind           { return KindArg }
func (*Try) Kind() Kind           { return KindTry }
func (*ExceptHandler) Kind() Kind { return KindExceptHandler }
func (*Assign) Kind() Kind        { return KindAssign }
func (*AugAssign) Kind() Kind     { return KindAugAssign }
func (*AnnAssign) Kind() Kind     { return KindAnnAssign }
func (*If) Kind() Kind            { return KindIf }
func (*For) Kind() Kind           { return KindFor }
func (*While) Kind() Kind         { return KindWhile }
func (*With) Kind() Kind          { return KindWith }
func (*WithItem) Kind() Kind      { return KindWithItem }
func (*Return) Kind() Kind        { return KindReturn }
func (*Raise) Kind() Kind         { return KindRaise }
func (*Pass) Kind() Kind          { return KindPass }
func (*Break) Kind() Kind         { return KindBreak }
func (*Continue) Kind() Kind      { return KindContinue }
func (*Expr) Kind() Kind          { return KindExpr }
func (*Import) Kind() Kind        { return KindImport }
func (*ImportFrom) Kind() Kind    { return KindImportFrom }
func (*Global) Kind() Kind        { return KindGlobal }
func (*Nonlocal) Kind() Kind      { return KindNonlocal }
func (*Delete) Kind() Kind        { return KindDelete }
func (*Assert) Kind() Kind        { return KindAssert }
func (*Match) Kind() Kind         { return KindMatch }
func (*MatchCase) Kind() Kind     { return KindMatchCase }

func (n *Module) Children() []Node { return appendNodes(nil, n.Body...) }

func (n *ClassDef) Children() []Node {
	c := appendNodes(nil, n.Decorators...)
	c = appendNodes(c, n.Bases...)
	for _, k := range n.Keywords {
		c = append(c, k)
	}

	return appendNodes(c, n.Body...)
}

func (n *FunctionDef) Children() []Node {
	c := appendNodes(nil, n.Decorators...)
	for _, a := range n.Args {
		c = append(c, a)
	}

	c = appendNodes(c, n.Returns)

	return appendNodes(c, n.Body...)
}

func (n *Arg) Children() []Node { return appendNodes(nil, n.Annotation, n.Default) }

func (n *Try) Children() []Node {
	c := appendNodes(nil, n.Body...)
	for _, h := range n.Handlers {
		c = append(c, h)
	}

	c = appendNodes(c, n.Orelse...)

	return appendNodes(c, n.Finalbody...)
}

func (n *ExceptHandler) Children() []Node {
	c := appendNodes(nil, n.Type)
	if n.Name != nil {
		c = append(c, n.Name)
	}

	return appendNodes(c, n.Body...)
}

func (n *Assign) Children() []Node { return appendNodes(appendNodes(nil, n.Targets...), n.Value) }

func (n *AugAssign) Children() []Node { return appendNodes(nil, n.Target, n.Value) }

func (n *AnnAssign) Children() []Node { return appendNodes(nil, n.Target, n.Annotation, n.Value) }

func (n *If) Children() []Node {
	c := appendNodes(nil, n.Test)
	c = appendNodes(c, n.Body...)

	return appendNodes(c, n.Orelse...)
}

func (n *For) Children() []Node {
	c := appendNodes(nil, n.Target, n.Iter)
	c = appendNodes(c, n.Body...)

	return appendNodes(c, n.Orelse...)
}

func (n *While) Children() []Node {
	c := appendNodes(nil, n.Test)
	c = appendNodes(c, n.Body...)

	return appendNodes(c, n.Orelse...)
}

func (n *With) Children() []Node {
	var c []Node
	for _, it := range n.Items {
		c = append(c, it)
	}

	return appendNodes(c, n.Body...)
}

func (n *WithItem) Children() []Node { return appendNodes(nil, n.Context, n.Vars) }
func (n *Return) Children() []Node   { return appendNodes(nil, n.Value) }
func (n *Raise) Children() []Node    { return appendNodes(nil, n.Exc, n.Cause) }
func (*Pass) Children() []Node       { return nil }
func (*Break) Children() []Node      { return nil }
func (*Continue) Children() []Node   { return nil }
func (n *Expr) Children() []Node     { return appendNodes(nil, n.Value) }
func (*Import) Children() []Node     { return nil }
func (*ImportFrom) Children() []Node { return nil }
func (*Global) Children() []Node     { return nil }
func (*Nonlocal) Children() []Node   { return nil }
func (n *Delete) Children() []Node   { return appendNodes(nil, n.Targets...) }
func (n *Assert) Children() []Node   { return appendNodes(nil, n.Test, n.Msg) }

func (n *Match) Children() []Node {
	c := appendNodes(nil, n.Subject)
	for _, mc := range n.Cases {
		c = append(c, mc)
	}

	return c
}

func (n *MatchCase) Children() []Node {
	return appendNodes(appendNodes(nil, n.Pattern, n.Guard), n.Body...)
}
