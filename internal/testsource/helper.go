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

// Package testsource provides utilities for parsing Python source code in tests.
//
// It is designed to simplify testing of the pycheck engine by handling common
// boilerplate code for parsing source fragments and locating nodes in them.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/parse"
)

const filename = "test.py"

// Parse parses a Python source fragment into a linked tree.
//
// Leading newlines are dropped and a trailing newline is added when missing,
// so raw string literals can be used for the source.
func Parse(tb testing.TB, src string) *parse.File {
	tb.Helper()

	src = strings.TrimLeft(src, "\n")
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	f, err := parse.Parse(tb.Context(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Find returns the nth (0-based) node of kind k for which match returns true, in preorder.
func Find(tb testing.TB, root node.Node, k node.Kind, nth int, match func(node.Node) bool) node.Node {
	tb.Helper()

	i := 0
	for n := range node.OfKind(root, k) {
		if match != nil && !match(n) {
			continue
		}

		if i == nth {
			return n
		}

		i++
	}

	tb.Fatalf("Can't find %s #%d", k, nth)

	return nil
}

// Name returns the nth name node with the given identifier.
func Name(tb testing.TB, root node.Node, id string, nth int) *node.Name {
	tb.Helper()

	n := Find(tb, root, node.KindName, nth, func(n node.Node) bool { return n.(*node.Name).ID == id })

	return n.(*node.Name)
}

// Value returns the value of the nth assignment.
func Value(tb testing.TB, root node.Node, nth int) node.Node {
	tb.Helper()

	return Find(tb, root, node.KindAssign, nth, nil).(*node.Assign).Value
}
