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

package node_test

import (
	"testing"

	. "fillmore-labs.com/pycheck/internal/node"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "attribute",
			node: &Attribute{Value: name("os"), Attr: "error"},
			want: "os.error",
		},
		{
			name: "tuple",
			node: &Tuple{Elts: []Node{name("A"), &Attribute{Value: name("m"), Attr: "B"}}},
			want: "(A, m.B)",
		},
		{
			name: "single_tuple",
			node: &Tuple{Elts: []Node{name("A")}},
			want: "(A,)",
		},
		{
			name: "call",
			node: &Call{
				Func:     name("f"),
				Args:     []Node{&Const{Type: ConstInt, Value: "1"}},
				Keywords: []*Keyword{{Arg: "key", Value: &Const{Type: ConstStr, Value: "'v'"}}},
			},
			want: "f(1, key='v')",
		},
		{
			name: "boolop",
			node: &BoolOp{Op: "or", Values: []Node{name("A"), name("B")}},
			want: "A or B",
		},
		{
			name: "nested_binop",
			node: &BinOp{Left: &BinOp{Left: name("a"), Op: "+", Right: name("b")}, Op: "*", Right: name("c")},
			want: "(a + b) * c",
		},
		{
			name: "subscript",
			node: &Subscript{Value: name("self"), Index: &Const{Type: ConstStr, Value: `"k"`}},
			want: `self["k"]`,
		},
		{
			name: "comprehension",
			node: &Comprehension{
				Type:       ListComp,
				Elt:        name("x"),
				Generators: []Generator{{Target: name("x"), Iter: name("xs"), Ifs: []Node{name("x")}}},
			},
			want: "[x for x in xs if x]",
		},
		{
			name: "assign",
			node: &Assign{Targets: []Node{name("a"), name("b")}, Value: &Const{Type: ConstNone, Value: "None"}},
			want: "a = b = None",
		},
		{
			name: "try",
			node: &Try{
				Body: []Node{&Pass{}},
				Handlers: []*ExceptHandler{{
					Type: name("ValueError"),
					Name: name("e"),
					Body: []Node{&Raise{}},
				}},
			},
			want: "try:\n    pass\nexcept ValueError as e:\n    raise",
		},
		{
			name: "function",
			node: &FunctionDef{
				Name: "f",
				Args: []*Arg{{Name: "a"}, {Name: "b", Default: &Const{Type: ConstInt, Value: "2"}}, {Name: "kw", Star: "**"}},
				Body: []Node{&Return{Value: name("a")}},
			},
			want: "def f(a, b=2, **kw):\n    return a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Render(tt.node); got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
