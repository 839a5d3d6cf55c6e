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

// Package node defines the syntax tree analyzed by pycheck.
//
// Every syntactic variant is a struct embedding [Base], which holds the parent
// back-reference and the source [Span]. Trees are built once by a front-end,
// linked with [Link] and are immutable afterwards.
package node

import "fmt"

// Node is implemented by all syntax tree nodes.
type Node interface {
	// Kind returns the syntactic variant of this node.
	Kind() Kind

	// Parent returns the structural parent, nil for the root.
	Parent() Node

	// Span returns the source range of this node.
	Span() Span

	// Children returns the direct children in source order.
	Children() []Node

	base() *Base
}

// Pos is a position in a source file.
type Pos struct {
	Line   int // 1-based
	Col    int // 0-based, in bytes
	Offset int // 0-based byte offset
}

// String formats the position as line:column.
func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Before reports whether p is strictly before q.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}

	return p.Col < q.Col
}

// Span is a half-open source range.
type Span struct {
	Start, End Pos
}

// Base holds the fields shared by all nodes.
type Base struct {
	parent Node
	span   Span
	list   int // 1-based statement list of parent holding this node, set by [Link]
}

// At returns a [Base] positioned at span, for use in node literals.
func At(span Span) Base { return Base{span: span} }

// Parent returns the structural parent, nil for the root.
func (b *Base) Parent() Node { return b.parent }

// Span returns the source range of this node.
func (b *Base) Span() Span { return b.span }

func (b *Base) base() *Base { return b }

// Ctx is the expression context of names, attributes, subscripts and sequences.
type Ctx uint8

const (
	// Load marks an expression that is read.
	Load Ctx = iota
	// Store marks an assignment target.
	Store
	// Del marks a deletion target.
	Del
)

// ConstType is the literal type tag of a [Const].
type ConstType uint8

const (
	ConstInt ConstType = iota
	ConstFloat
	ConstComplex
	ConstStr
	ConstBytes
	ConstBool
	ConstNone
	ConstEllipsis
)

// CompType distinguishes the comprehension flavors.
type CompType uint8

const (
	ListComp CompType = iota
	SetComp
	DictComp
	GeneratorExp
)

// Alias is a single imported name.
type Alias struct {
	Name   string
	AsName string
}

// Bound returns the name an alias binds in the importing scope.
func (a Alias) Bound() string {
	if a.AsName != "" {
		return a.AsName
	}

	for i := range len(a.Name) {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}

	return a.Name
}

// Generator is one "for ... in ... if ..." clause of a comprehension.
type Generator struct {
	Target Node
	Iter   Node
	Ifs    []Node
	Async  bool
}

// appendNodes appends the non-nil nodes.
func appendNodes(dst []Node, nodes ...Node) []Node {
	for _, n := range nodes {
		if n != nil {
			dst = append(dst, n)
		}
	}

	return dst
}
