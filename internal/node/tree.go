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

import (
	"errors"
	"fmt"
	"iter"
)

// ErrStructure marks a violated tree invariant: a node reachable twice, a cycle or a wrong parent link.
// Analysis of the affected unit must stop.
var ErrStructure = errors.New("structural invariant violation")

// Link sets the parent back-reference of every node below root.
// It fails with [ErrStructure] when a node is reachable more than once.
func Link(root Node) error {
	if root == nil {
		return fmt.Errorf("nil root: %w", ErrStructure)
	}

	root.base().parent, root.base().list = nil, 0

	seen := map[Node]struct{}{root: {}}

	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range n.Children() {
			if _, ok := seen[c]; ok {
				return fmt.Errorf("%s at %s reachable twice: %w", c.Kind(), c.Span().Start, ErrStructure)
			}

			seen[c] = struct{}{}
			c.base().parent = n
			c.base().list = 0
			stack = append(stack, c)
		}

		for i, l := range statementLists(n) {
			for _, s := range l {
				if s != nil {
					s.base().list = i + 1
				}
			}
		}
	}

	return nil
}

// Root returns the topmost ancestor of n.
func Root(n Node) Node {
	for p := n.Parent(); p != nil; p = n.Parent() {
		n = p
	}

	return n
}

// Preorder yields n and all its descendants in depth-first source order.
func Preorder(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children() {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

// OfKind yields n and all its descendants having kind k.
func OfKind(n Node, k Kind) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for d := range Preorder(n) {
			if d.Kind() == k && !yield(d) {
				return
			}
		}
	}
}

// Ancestors yields the parents of n, innermost first.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// IsAncestor reports whether a is a proper ancestor of n.
func IsAncestor(a, n Node) bool {
	for p := range Ancestors(n) {
		if p == a {
			return true
		}
	}

	return false
}

// Frame returns the innermost module, class, function or lambda containing n, excluding n itself.
func Frame(n Node) Node {
	for p := range Ancestors(n) {
		switch p.Kind() {
		case KindModule, KindClassDef, KindFunctionDef, KindLambda:
			return p
		}
	}

	return nil
}

// Statement returns the innermost statement containing n, including n itself.
func Statement(n Node) Node {
	for ; n != nil; n = n.Parent() {
		if n.Kind().Statement() {
			return n
		}
	}

	return nil
}

// statementLists returns the statement lists of n, body first.
func statementLists(n Node) [][]Node {
	switch n := n.(type) {
	case *Module:
		return [][]Node{n.Body}
	case *ClassDef:
		return [][]Node{n.Body}
	case *FunctionDef:
		return [][]Node{n.Body}
	case *If:
		return [][]Node{n.Body, n.Orelse}
	case *For:
		return [][]Node{n.Body, n.Orelse}
	case *While:
		return [][]Node{n.Body, n.Orelse}
	case *With:
		return [][]Node{n.Body}
	case *Try:
		return [][]Node{n.Body, n.Orelse, n.Finalbody}
	case *ExceptHandler:
		return [][]Node{n.Body}
	case *MatchCase:
		return [][]Node{n.Body}
	default:
		return nil
	}
}

// Siblings returns the statement list of the parent that holds stmt, or nil.
func Siblings(stmt Node) []Node {
	k := stmt.base().list
	if k == 0 {
		return nil
	}

	lists := statementLists(stmt.Parent())
	if k > len(lists) {
		return nil
	}

	return lists[k-1]
}

// SameList reports whether a and b are held by the same statement list.
func SameList(a, b Node) bool {
	k := a.base().list

	return k > 0 && k == b.base().list && a.Parent() == b.Parent()
}

// InBody reports whether stmt is one of the body statements of its parent.
func InBody(stmt Node) bool {
	return stmt.base().list == 1
}

// InOrelse reports whether stmt is one of the else statements of its parent.
func InOrelse(stmt Node) bool {
	if stmt.base().list != 2 {
		return false
	}

	switch stmt.Parent().(type) {
	case *If, *For, *While, *Try:
		return true
	default:
		return false
	}
}
