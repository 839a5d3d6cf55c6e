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

// Lambda is a lambda expression.
type Lambda struct {
	Base
	Args []*Arg
	Body Node
}

// Name is an identifier.
type Name struct {
	Base
	ID  string
	Ctx Ctx
}

// Attribute is a dotted attribute access.
type Attribute struct {
	Base
	Value Node
	Attr  string
	Ctx   Ctx
}

// Subscript is an indexing or slicing expression.
type Subscript struct {
	Base
	Value Node
	Index Node
	Ctx   Ctx
}

// Tuple is a tuple display or an unpacking target.
type Tuple struct {
	Base
	Elts []Node
	Ctx  Ctx
}

// List is a list display or an unpacking target.
type List struct {
	Base
	Elts []Node
	Ctx  Ctx
}

// Set is a set display.
type Set struct {
	Base
	Elts []Node
}

// Dict is a dict display. A nil key marks a **mapping spread in Values.
type Dict struct {
	Base
	Keys   []Node
	Values []Node
}

// Comprehension is a list, set or dict comprehension or a generator expression.
type Comprehension struct {
	Base
	Type       CompType
	Elt        Node // key for DictComp
	Value      Node // DictComp only
	Generators []Generator
}

// BoolOp is a chain of "and" or "or".
type BoolOp struct {
	Base
	Op     string
	Values []Node
}

// BinOp is a binary arithmetic or bitwise operation.
type BinOp struct {
	Base
	Left  Node
	Op    string
	Right Node
}

// UnaryOp is a unary operation, including "not".
type UnaryOp struct {
	Base
	Op      string
	Operand Node
}

// Compare is a comparison chain.
type Compare struct {
	Base
	Left        Node
	Ops         []string
	Comparators []Node
}

// Call is a call expression.
type Call struct {
	Base
	Func     Node
	Args     []Node
	Keywords []*Keyword
}

// Keyword is a keyword argument. An empty Arg marks a **mapping spread.
type Keyword struct {
	Base
	Arg   string
	Value Node
}

// Const is a literal.
type Const struct {
	Base
	Type  ConstType
	Value string // source text
}

// IfExp is a conditional expression "body if test else orelse".
type IfExp struct {
	Base
	Test   Node
	Body   Node
	Orelse Node
}

// Starred is a starred expression or target.
type Starred struct {
	Base
	Value Node
	Ctx   Ctx
}

// Unsupported stands in for constructs that are not modelled.
type Unsupported struct {
	Base
	Type string // front-end node type
	Text string // source text
}

func (*Lambda) Kind() Kind        { return KindLambda }
func (*Name) Kind() Kind          { return KindName }
func (*Attribute) Kind() Kind     { return KindAttribute }
func (*Subscript) Kind() Kind     { return KindSubscript }
func (*Tuple) Kind() Kind         { return KindTuple }
func (*List) Kind() Kind          { return KindList }
func (*Set) Kind() Kind           { return KindSet }
func (*Dict) Kind() Kind          { return KindDict }
func (*Comprehension) Kind() Kind { return KindComprehension }
func (*BoolOp) Kind() Kind        { return KindBoolOp }
func (*BinOp) Kind() Kind         { return KindBinOp }
func (*UnaryOp) Kind() Kind       { return KindUnaryOp }
func (*Compare) Kind() Kind       { return KindCompare }
func (*Call) Kind() Kind          { return KindCall }
func (*Keyword) Kind() Kind       { return KindKeyword }
func (*Const) Kind() Kind         { return KindConst }
func (*IfExp) Kind() Kind         { return KindIfExp }
func (*Starred) Kind() Kind       { return KindStarred }
func (*Unsupported) Kind() Kind   { return KindUnsupported }

func (n *Lambda) Children() []Node {
	var c []Node
	for _, a := range n.Args {
		c = append(c, a)
	}

	return appendNodes(c, n.Body)
}

func (*Name) Children() []Node        { return nil }
func (n *Attribute) Children() []Node { return appendNodes(nil, n.Value) }
func (n *Subscript) Children() []Node { return appendNodes(nil, n.Value, n.Index) }
func (n *Tuple) Children() []Node     { return appendNodes(nil, n.Elts...) }
func (n *List) Children() []Node      { return appendNodes(nil, n.Elts...) }
func (n *Set) Children() []Node       { return appendNodes(nil, n.Elts...) }

func (n *Dict) Children() []Node {
	c := make([]Node, 0, len(n.Keys)+len(n.Values))
	for i, v := range n.Values {
		if i < len(n.Keys) {
			c = appendNodes(c, n.Keys[i])
		}

		c = appendNodes(c, v)
	}

	return c
}

func (n *Comprehension) Children() []Node {
	c := appendNodes(nil, n.Elt, n.Value)
	for _, g := range n.Generators {
		c = appendNodes(c, g.Target, g.Iter)
		c = appendNodes(c, g.Ifs...)
	}

	return c
}

func (n *BoolOp) Children() []Node  { return appendNodes(nil, n.Values...) }
func (n *BinOp) Children() []Node   { return appendNodes(nil, n.Left, n.Right) }
func (n *UnaryOp) Children() []Node { return appendNodes(nil, n.Operand) }

func (n *Compare) Children() []Node {
	return appendNodes(appendNodes(nil, n.Left), n.Comparators...)
}

func (n *Call) Children() []Node {
	c := appendNodes(appendNodes(nil, n.Func), n.Args...)
	for _, k := range n.Keywords {
		c = append(c, k)
	}

	return c
}

func (n *Keyword) Children() []Node   { return appendNodes(nil, n.Value) }
func (*Const) Children() []Node       { return nil }
func (n *IfExp) Children() []Node     { return appendNodes(nil, n.Body, n.Test, n.Orelse) }
func (n *Starred) Children() []Node   { return appendNodes(nil, n.Value) }
func (*Unsupported) Children() []Node { return nil }
