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

	"fillmore-labs.com/pycheck/internal/node"
)

// Part is a source expression together with a value inferred for it.
type Part struct {
	Node  node.Node
	Value Value
}

// AnnotatedUnpack infers an exception handler type expression.
//
// For a tuple or list display it yields one part per element that has a single
// unambiguous inferred value, in source order. Otherwise it yields the
// expression itself paired with each inferred value except [Uninferable].
func (c *Context) AnnotatedUnpack(n node.Node) iter.Seq2[Part, error] {
	return func(yield func(Part, error) bool) {
		var elts []node.Node

		switch n := n.(type) {
		case *node.Tuple:
			elts = n.Elts
		case *node.List:
			elts = n.Elts
		default:
			for v, err := range c.Infer(n) {
				if err != nil {
					yield(Part{Node: n}, err)

					return
				}

				if IsUninferable(v) {
					continue
				}

				if !yield(Part{Node: n, Value: v}, nil) {
					return
				}
			}

			return
		}

		for _, elt := range elts {
			v := c.SafeInfer(elt)
			if v == nil || IsUninferable(v) {
				continue
			}

			if !yield(Part{Node: elt, Value: v}, nil) {
				return
			}
		}
	}
}

// SafeInfer returns the first inferred value of n, or nil when inference
// fails or the values disagree on their type.
func (c *Context) SafeInfer(n node.Node) Value {
	var (
		first Value
		types = make(map[string]struct{})
	)

	for v, err := range c.Infer(n) {
		if err != nil {
			return nil
		}

		if first == nil {
			first = v
			if !IsUninferable(v) {
				types[v.Pytype()] = struct{}{}
			}

			continue
		}

		if IsUninferable(v) {
			return nil
		}

		if _, ok := types[v.Pytype()]; !ok {
			return nil
		}
	}

	return first
}

// NodeType returns the single value n is inferred to, ignoring [Uninferable]
// and None. Values of the same type are considered equal. It returns nil when
// nothing or more than one type is inferred.
func (c *Context) NodeType(n node.Node) Value {
	var result Value

	for v, err := range c.Infer(n) {
		if err != nil {
			return nil
		}

		if IsUninferable(v) || IsNone(v) {
			continue
		}

		if result == nil {
			result = v

			continue
		}

		if !sameType(result, v) {
			return nil
		}
	}

	return result
}

func sameType(a, b Value) bool {
	if a == b {
		return true
	}

	// Classes compare by identity, other values by their type.
	if _, ok := a.(*Class); ok {
		return false
	}

	if _, ok := b.(*Class); ok {
		return false
	}

	return a.Pytype() == b.Pytype()
}
