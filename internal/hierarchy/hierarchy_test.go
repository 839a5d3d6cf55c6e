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

package hierarchy_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/pycheck/internal/hierarchy"
	"fillmore-labs.com/pycheck/internal/infer"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/scope"
	"fillmore-labs.com/pycheck/internal/testsource"
)

const classes = `
class A(Exception):
    pass

class B(A):
    pass

class C(B, KeyError):
    pass

class D(C, A):
    pass

class Plain:
    pass

class Odd(undefined, 1):
    pass
`

func setup(tb testing.TB) (*Resolver, func(name string) *infer.Class) {
	tb.Helper()

	f := testsource.Parse(tb, classes)
	ctx := infer.NewContext(f.Module, scope.NewIndex(f.Module))

	class := func(name string) *infer.Class {
		tb.Helper()

		if c := infer.Builtin(name); c != nil {
			return c
		}

		def := testsource.Find(tb, f.Module, node.KindClassDef, 0, func(n node.Node) bool {
			return n.(*node.ClassDef).Name == name
		})

		return ctx.ClassOf(def.(*node.ClassDef))
	}

	return NewResolver(ctx), class
}

func names(classes []*infer.Class) string {
	n := make([]string, 0, len(classes))
	for _, c := range classes {
		n = append(n, c.Name)
	}

	return strings.Join(n, " ")
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class string
		want  string
	}{
		{"A", "Exception BaseException object"},
		{"B", "A Exception BaseException object"},
		{"C", "B A Exception BaseException object KeyError LookupError"},
		{"D", "C B A Exception BaseException object KeyError LookupError"},
		{"Plain", "object"},
		{"Odd", "int object"},
		{"object", ""},
		{"bool", "int object"},
		{"ExceptionGroup", "BaseExceptionGroup BaseException object Exception"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			t.Parallel()

			r, class := setup(t)

			got := names(r.Ancestors(class(tt.class)))
			if got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}

			if again := names(r.Ancestors(class(tt.class))); again != got {
				t.Errorf("Got %q on second call, expected %q", again, got)
			}
		})
	}
}

func TestIsAncestor(t *testing.T) {
	t.Parallel()

	r, class := setup(t)

	tests := []struct {
		a, c string
		want bool
	}{
		{"A", "B", true},
		{"B", "A", false},
		{"A", "A", false},
		{"LookupError", "C", true},
		{"Exception", "Plain", false},
	}

	for _, tt := range tests {
		if got := r.IsAncestor(class(tt.a), class(tt.c)); got != tt.want {
			t.Errorf("IsAncestor(%s, %s): got %t, expected %t", tt.a, tt.c, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	r, class := setup(t)

	tests := []struct {
		name  string
		value infer.Value
		want  *infer.Class
	}{
		{"class", class("Plain"), class("Plain")},
		{"exception_instance", infer.Instantiate(class("B")), class("B")},
		{"builtin_exception_instance", infer.Instantiate(class("ValueError")), class("ValueError")},
		{"plain_instance", infer.Instantiate(class("Plain")), nil},
		{"int_instance", infer.Instantiate(class("int")), nil},
		{"uninferable", infer.Uninferable, nil},
	}

	for _, tt := range tests {
		got, ok := r.Normalize(tt.value)
		if got != tt.want || ok != (tt.want != nil) {
			t.Errorf("%s: got %v, %t, expected %v", tt.name, got, ok, tt.want)
		}
	}
}

func TestInheritsFromStdException(t *testing.T) {
	t.Parallel()

	r, class := setup(t)

	for name, want := range map[string]bool{
		"BaseException": true, "Exception": true, "KeyError": true, "D": true, "Plain": false, "int": false,
	} {
		if got := r.InheritsFromStdException(class(name)); got != want {
			t.Errorf("%s: got %t, expected %t", name, got, want)
		}
	}
}
