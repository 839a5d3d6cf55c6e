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
	"strconv"
	"strings"

	"fillmore-labs.com/pycheck/internal/node"
)

// numericRank orders the numeric tower; bool arithmetic yields int.
var numericRank = map[string]int{"bool": 1, "int": 1, "float": 2, "complex": 3}

var numericByRank = [...]string{1: "int", 2: "float", 3: "complex"}

func (c *Context) unaryOp(n *node.UnaryOp) iter.Seq2[Value, error] {
	if n.Op == "not" {
		return single(&Instance{Class: builtinClasses["bool"], Node: n})
	}

	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(n.Operand) {
			if err != nil {
				yield(nil, err)

				return
			}

			var result Value = Uninferable
			if i, ok := v.(*Instance); ok && i.Class.Builtin() {
				if rank, ok := numericRank[i.Class.Name]; ok && (n.Op != "~" || rank == 1) {
					result = &Instance{Class: builtinClasses[numericByRank[rank]], Node: n}
				}
			}

			if !yield(result, nil) {
				return
			}
		}
	}
}

func (c *Context) binOp(n *node.BinOp) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for l, err := range c.Infer(n.Left) {
			if err != nil {
				yield(nil, err)

				return
			}

			for r, err := range c.Infer(n.Right) {
				if err != nil {
					yield(nil, err)

					return
				}

				var result Value = Uninferable
				if cls := binaryResult(n.Op, l, r); cls != nil {
					result = &Instance{Class: cls, Node: n}
				}

				if !yield(result, nil) {
					return
				}
			}
		}
	}
}

// binaryResult returns the result class of a binary operation on builtin instances, or nil.
func binaryResult(op string, l, r Value) *Class {
	li, ok := l.(*Instance)
	if !ok || !li.Class.Builtin() {
		return nil
	}

	ri, ok := r.(*Instance)
	if !ok || !ri.Class.Builtin() {
		return nil
	}

	left, right := li.Class.Name, ri.Class.Name

	if lr, ok := numericRank[left]; ok {
		if rr, ok := numericRank[right]; ok {
			return numericResult(op, max(lr, rr))
		}
	}

	switch {
	case op == "%" && (left == "str" || left == "bytes"):
		return builtinClasses[left]

	case op == "+" && left == right:
		switch left {
		case "str", "bytes", "list", "tuple":
			return builtinClasses[left]
		}

	case op == "*" && right == "int":
		switch left {
		case "str", "bytes", "list", "tuple":
			return builtinClasses[left]
		}

	case op == "*" && left == "int":
		switch right {
		case "str", "bytes", "list", "tuple":
			return builtinClasses[right]
		}

	case left == right && (left == "set" || left == "frozenset"):
		switch op {
		case "|", "&", "-", "^":
			return builtinClasses[left]
		}

	case op == "|" && left == "dict" && right == "dict":
		return builtinClasses["dict"]
	}

	return nil
}

func numericResult(op string, rank int) *Class {
	switch op {
	case "+", "-", "*", "**", "%", "//":
		if rank == 3 && (op == "//" || op == "%") {
			return nil
		}

		return builtinClasses[numericByRank[rank]]

	case "/":
		return builtinClasses[numericByRank[max(rank, 2)]]

	case "&", "|", "^", "<<", ">>":
		if rank == 1 {
			return builtinClasses["int"]
		}
	}

	return nil
}

// subscript infers indexing of tuple and list displays by integer constants.
func (c *Context) subscript(n *node.Subscript) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(n.Value) {
			if err != nil {
				yield(nil, err)

				return
			}

			i, ok := v.(*Instance)
			if !ok {
				if !yield(Uninferable, nil) {
					return
				}

				continue
			}

			var elements iter.Seq2[Value, error]

			switch idx, ok := constIndex(n.Index); {
			case i.Elts != nil && ok && !hasStarred(i.Elts):
				if idx < 0 {
					idx += len(i.Elts)
				}

				if idx < 0 || idx >= len(i.Elts) {
					elements = failure(fail(n, "index out of range"))
				} else {
					elements = c.Infer(i.Elts[idx])
				}

			case i.Class == builtinClasses["str"] && ok:
				elements = single(&Instance{Class: builtinClasses["str"], Node: n})

			default:
				elements = single(Uninferable)
			}

			for w, err := range elements {
				if !yield(w, err) || err != nil {
					return
				}
			}
		}
	}
}

// constIndex returns the value of an integer literal index, possibly negated.
func constIndex(index node.Node) (int, bool) {
	sign := 1

	if u, ok := index.(*node.UnaryOp); ok && u.Op == "-" {
		sign, index = -1, u.Operand
	}

	k, ok := index.(*node.Const)
	if !ok || k.Type != node.ConstInt {
		return 0, false
	}

	v, err := strconv.ParseInt(strings.ReplaceAll(k.Value, "_", ""), 0, 64)
	if err != nil {
		return 0, false
	}

	return sign * int(v), true
}
