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

package walk_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/testsource"
	. "fillmore-labs.com/pycheck/internal/walk"
)

var discard = slog.New(slog.DiscardHandler)

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "def f():\n    x = 1\ny = 2")

	var events []string

	record := func(prefix string) func(node.Node) {
		return func(n node.Node) { events = append(events, prefix+n.Kind().String()) }
	}

	d := New(discard)
	for _, k := range []node.Kind{node.KindModule, node.KindFunctionDef, node.KindAssign} {
		d.OnEnter(k, Callback{Owner: "test", Func: record("+")})
		d.OnLeave(k, Callback{Owner: "test", Func: record("-")})
	}

	if err := d.Walk(t.Context(), f.Module); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	got := strings.Join(events, " ")

	const want = "+Module +FunctionDef +Assign -Assign -FunctionDef +Assign -Assign -Module"
	if got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestWalkFault(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "x = 1\ny = 2")

	var calls int

	d := New(discard)
	d.OnEnter(node.KindAssign, Callback{Owner: "broken", Func: func(node.Node) { panic("unexpected shape") }})
	d.OnEnter(node.KindAssign, Callback{Owner: "healthy", Func: func(node.Node) { calls++ }})

	if err := d.Walk(t.Context(), f.Module); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("Got %d calls, expected 2", calls)
	}

	faults := d.Faults()
	if len(faults) != 2 {
		t.Fatalf("Got %d faults, expected 2", len(faults))
	}

	if f := faults[0]; f.Owner != "broken" || f.Phase != Enter || f.Value != "unexpected shape" {
		t.Errorf("Got fault %v", f)
	}
}

func TestWalkActive(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "x = 1")

	var calls int

	d := New(discard)
	d.OnEnter(node.KindAssign, Callback{Owner: "off", Func: func(node.Node) { calls++ }, Active: func() bool { return false }})

	if err := d.Walk(t.Context(), f.Module); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if calls != 0 {
		t.Errorf("Got %d calls, expected none", calls)
	}
}

func TestWalkCanceled(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "x = 1\ny = 2\nz = 3")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var assigns int

	d := New(discard)
	d.OnEnter(node.KindAssign, Callback{Owner: "test", Func: func(node.Node) {
		assigns++
		cancel()
	}})

	if err := d.Walk(ctx, f.Module); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, expected %v", err, context.Canceled)
	}

	if assigns != 1 {
		t.Errorf("Got %d visited statements, expected 1", assigns)
	}
}

func TestWalkStructure(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "x = 1")

	// An unlinked node is reached through a linked parent.
	orphan := &node.Expr{Value: &node.Name{ID: "y"}}
	f.Module.Body = append(f.Module.Body, orphan)

	err := New(discard).Walk(t.Context(), f.Module)
	if !errors.Is(err, node.ErrStructure) {
		t.Errorf("Got error %v, expected %v", err, node.ErrStructure)
	}
}
