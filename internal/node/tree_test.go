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
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/pycheck/internal/node"
)

func name(id string) *Name { return &Name{ID: id} }

func TestLink(t *testing.T) {
	t.Parallel()

	x := name("x")
	assign := &Assign{Targets: []Node{x}, Value: &Const{Type: ConstInt, Value: "1"}}
	body := &If{Test: name("cond"), Body: []Node{assign}, Orelse: []Node{&Pass{}}}
	mod := &Module{Body: []Node{body}}

	if err := Link(mod); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	if got := x.Parent(); got != assign {
		t.Errorf("Got parent %v, expected the assignment", got)
	}

	if got := Root(x); got != mod {
		t.Errorf("Got root %v, expected the module", got)
	}

	if got := Frame(x); got != mod {
		t.Errorf("Got frame %v, expected the module", got)
	}

	if got := Statement(x); got != assign {
		t.Errorf("Got statement %v, expected the assignment", got)
	}

	if !IsAncestor(body, x) {
		t.Error("Expected if statement to be an ancestor")
	}

	if IsAncestor(x, x) {
		t.Error("A node must not be its own ancestor")
	}
}

func TestLinkShared(t *testing.T) {
	t.Parallel()

	shared := name("x")
	mod := &Module{Body: []Node{
		&Expr{Value: shared},
		&Expr{Value: shared},
	}}

	err := Link(mod)
	if !errors.Is(err, ErrStructure) {
		t.Errorf("Got error %v, expected %v", err, ErrStructure)
	}
}

func TestOfKind(t *testing.T) {
	t.Parallel()

	inner := &FunctionDef{Name: "inner", Body: []Node{&Pass{}}}
	outer := &FunctionDef{Name: "outer", Body: []Node{inner, &Return{}}}
	mod := &Module{Body: []Node{outer}}

	if err := Link(mod); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	var names []string
	for n := range OfKind(mod, KindFunctionDef) {
		names = append(names, n.(*FunctionDef).Name)
	}

	if want := []string{"outer", "inner"}; !slices.Equal(names, want) {
		t.Errorf("Got %v, expected %v", names, want)
	}

	if got := Frame(inner.Body[0]); got != inner {
		t.Errorf("Got frame %v, expected inner function", got)
	}
}

func TestSiblings(t *testing.T) {
	t.Parallel()

	a := &Pass{}
	b := &Break{}
	loop := &While{Test: name("x"), Body: []Node{a}, Orelse: []Node{b}}
	mod := &Module{Body: []Node{loop}}

	if err := Link(mod); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	tests := []struct {
		name   string
		stmt   Node
		want   []Node
		body   bool
		orelse bool
	}{
		{"body", a, loop.Body, true, false},
		{"orelse", b, loop.Orelse, false, true},
		{"module", loop, mod.Body, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Siblings(tt.stmt); !slices.Equal(got, tt.want) {
				t.Errorf("Got siblings %v, expected %v", got, tt.want)
			}

			if got := InBody(tt.stmt); got != tt.body {
				t.Errorf("Got InBody %t, expected %t", got, tt.body)
			}

			if got := InOrelse(tt.stmt); got != tt.orelse {
				t.Errorf("Got InOrelse %t, expected %t", got, tt.orelse)
			}
		})
	}
}

func TestSameList(t *testing.T) {
	t.Parallel()

	first, second := &Pass{}, &Pass{}
	other := &Break{}
	inner := &Continue{}
	match := &Match{Subject: name("x"), Cases: []*MatchCase{
		{Pattern: &Unsupported{Type: "case_pattern", Text: "_"}, Body: []Node{inner}},
	}}
	loop := &For{Target: name("i"), Iter: name("xs"), Body: []Node{first, second, match}, Orelse: []Node{other}}
	mod := &Module{Body: []Node{loop}}

	if err := Link(mod); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same_body", first, second, true},
		{"body_orelse", first, other, false},
		{"case_body", inner, first, false},
		{"case_statement", match, first, true},
		{"expression", loop.Target, first, false},
		{"module", loop, loop, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SameList(tt.a, tt.b); got != tt.want {
				t.Errorf("Got SameList %t, expected %t", got, tt.want)
			}
		})
	}

	if got := Siblings(inner); !slices.Equal(got, match.Cases[0].Body) {
		t.Errorf("Got siblings %v, expected the case body", got)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	if got := KindExceptHandler.String(); got != "ExceptHandler" {
		t.Errorf("Got %q, expected %q", got, "ExceptHandler")
	}

	if !KindLambda.ScopeIntroducing() || KindIf.ScopeIntroducing() {
		t.Error("Unexpected scope classification")
	}

	if !KindAssign.Statement() || KindName.Statement() {
		t.Error("Unexpected statement classification")
	}
}
