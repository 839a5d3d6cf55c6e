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

package multitype_test

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/pycheck/internal/config"
	"fillmore-labs.com/pycheck/internal/run"
)

func check(tb testing.TB, src string) []string {
	tb.Helper()

	o := run.DefaultOptions()
	o.Checkers = config.NewBitMask(config.RedefinedType)
	o.Logger = slog.New(slog.DiscardHandler)

	res, err := o.Run(tb.Context(), "test.py", []byte(strings.TrimLeft(src, "\n")))
	if err != nil {
		tb.Fatalf("Run failed: %v", err)
	}

	msgs := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		msgs = append(msgs, fmt.Sprintf("%d: %s", m.Line, m.Text))
	}

	return msgs
}

func TestRedefinedVariableType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "unconditional",
			src:  "x = 1\nx = 's'",
			want: []string{"2: Redefinition of x type from int to str"},
		},
		{
			name: "same_type",
			src:  "x = 1\nx = 2",
		},
		{
			name: "if_else",
			src:  "if c:\n    x = 1\nelse:\n    x = 's'",
		},
		{
			name: "same_branch",
			src:  "if c:\n    x = 1\n    x = 's'",
			want: []string{"3: Redefinition of x type from int to str"},
		},
		{
			name: "else_first",
			src:  "if c:\n    pass\nelse:\n    x = 1\n    x = 's'",
			want: []string{"5: Redefinition of x type from int to str"},
		},
		{
			name: "elif",
			src:  "if c:\n    x = 1\nelif d:\n    x = 's'\nelse:\n    x = 1.0",
		},
		{
			name: "after_if",
			src:  "if c:\n    x = 1\nx = 's'",
			want: []string{"3: Redefinition of x type from int to str"},
		},
		{
			name: "none_ignored",
			src:  "x = 1\nx = None\nx = 2",
		},
		{
			name: "none_between",
			src:  "x = 1\nx = None\nx = 's'",
			want: []string{"3: Redefinition of x type from int to str"},
		},
		{
			name: "first_only",
			src:  "x = 1\nx = 's'\nx = 1.0",
			want: []string{"2: Redefinition of x type from int to str"},
		},
		{
			name: "tuple_target",
			src:  "a, b = 1, 2\na, b = 's', 's'",
		},
		{
			name: "subscript_target",
			src:  "d = {}\nd[0] = 1\nd[0] = 's'",
		},
		{
			name: "ambiguous",
			src:  "x = 1\nx = 1 if c else 's'",
		},
		{
			name: "function_scope",
			src:  "x = 1\ndef f():\n    x = 's'\n    x = 1.0\nx = 2",
			want: []string{"4: Redefinition of x type from str to float"},
		},
		{
			name: "attribute",
			src:  "class A:\n    def __init__(self):\n        self.var = {}\n        self.var = 2",
			want: []string{"4: Redefinition of self.var type from dict to int"},
		},
		{
			name: "user_classes",
			src:  "class A:\n    pass\nclass B:\n    pass\nx = A()\nx = B()",
			want: []string{"6: Redefinition of x type from test.A to test.B"},
		},
		{
			name: "classes_are_types",
			src:  "class A:\n    pass\nx = A\nx = 1",
			want: []string{"4: Redefinition of x type from type to int"},
		},
		{
			name: "property",
			src:  "class A:\n    @property\n    def size(self):\n        return 1\na = A()\nn = a.size\nn = 2",
		},
		{
			name: "property_redefined",
			src:  "class A:\n    @property\n    def size(self):\n        return 1\na = A()\nn = a.size\nn = 's'",
			want: []string{"7: Redefinition of n type from int to str"},
		},
		{
			name: "case_body",
			src:  "match c:\n    case 1:\n        x = 1\n        x = 's'",
			want: []string{"4: Redefinition of x type from int to str"},
		},
		{
			name: "nested_before_outer",
			src:  "def f():\n    y = 1\n    y = 's'\nx = 1\nx = 's'",
			want: []string{
				"3: Redefinition of y type from int to str",
				"5: Redefinition of x type from int to str",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := check(t, tt.src); !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
