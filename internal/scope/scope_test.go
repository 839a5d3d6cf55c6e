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

package scope_test

import (
	"testing"

	"fillmore-labs.com/pycheck/internal/node"
	. "fillmore-labs.com/pycheck/internal/scope"
	"fillmore-labs.com/pycheck/internal/testsource"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		use   string // the last occurrence is looked up
		nth   int
		scope string
		count int
	}{
		{
			name:  "module",
			src:   "x = 1\nx = 2\nprint(x)",
			use:   "x",
			nth:   2,
			scope: "module",
			count: 2,
		},
		{
			name:  "function_local",
			src:   "x = 1\ndef f():\n    x = 2\n    return x",
			use:   "x",
			nth:   2,
			scope: "function",
			count: 1,
		},
		{
			name:  "enclosing",
			src:   "def f():\n    y = 1\n    def g():\n        return y",
			use:   "y",
			nth:   1,
			scope: "function",
			count: 1,
		},
		{
			name:  "class_invisible",
			src:   "z = 1\nclass C:\n    z = 2\n    def m(self):\n        return z",
			use:   "z",
			nth:   2,
			scope: "module",
			count: 1,
		},
		{
			name:  "global",
			src:   "def f():\n    global g\n    g = 1\ng = 2\nprint(g)",
			use:   "g",
			nth:   2,
			scope: "module",
			count: 2,
		},
		{
			name:  "comprehension_target",
			src:   "v = 1\nr = [v for v in range(3)]",
			use:   "v",
			nth:   1,
			scope: "comprehension",
			count: 1,
		},
		{
			name:  "parameter",
			src:   "def f(a, b=a):\n    return a",
			use:   "a",
			nth:   1,
			scope: "function",
			count: 1,
		},
		{
			name:  "case_bodies",
			src:   "match c:\n    case 1:\n        y = 1\n    case _:\n        y = 2\nprint(y)",
			use:   "y",
			nth:   2,
			scope: "module",
			count: 2,
		},
		{
			name:  "import",
			src:   "import os.path\nos",
			use:   "os",
			nth:   0,
			scope: "module",
			count: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			index := NewIndex(f.Module)
			use := testsource.Name(t, f.Module, tt.use, tt.nth)

			s, bindings := index.Lookup(tt.use, use)
			if s == nil {
				t.Fatalf("Can't resolve %s", tt.use)
			}

			if got := Name(s.Node); got != tt.scope {
				t.Errorf("Got scope %s, expected %s", got, tt.scope)
			}

			if got := len(bindings); got != tt.count {
				t.Errorf("Got %d bindings, expected %d", got, tt.count)
			}
		})
	}
}

func TestLookupUnbound(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "def f(a=b):\n    b = 1")
	index := NewIndex(f.Module)
	use := testsource.Name(t, f.Module, "b", 0)

	if s, _ := index.Lookup("b", use); s != nil {
		t.Errorf("Default must not see function locals, got scope %s", Name(s.Node))
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "@dec\nclass C(Base):\n    attr = [i for i in items]")
	index := NewIndex(f.Module)

	tests := []struct {
		id   string
		want string
	}{
		{"dec", "module"},
		{"Base", "module"},
		{"attr", "class"},
		{"items", "class"},
		{"i", "comprehension"},
	}

	for _, tt := range tests {
		n := testsource.Name(t, f.Module, tt.id, 0)
		if got := Name(index.Of(n).Node); got != tt.want {
			t.Errorf("%s: got scope %s, expected %s", tt.id, got, tt.want)
		}
	}

	if got := Name(index.Of(f.Module).Node); got != "module" {
		t.Errorf("Got %s for the module itself", got)
	}

	var names []string
	for name := range index.Module().Locals() {
		names = append(names, name)
	}

	if len(names) != 1 || names[0] != "C" {
		t.Errorf("Got module locals %v, expected [C]", names)
	}

	cls := testsource.Find(t, f.Module, node.KindClassDef, 0, nil)
	if got := index[cls].Bindings("attr"); len(got) != 1 {
		t.Errorf("Got %d bindings of attr, expected 1", len(got))
	}
}
