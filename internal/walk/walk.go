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

// Package walk dispatches tree traversal events to registered callbacks.
//
// A [Dispatcher] holds, per node kind, ordered lists of enter and leave
// callbacks. [Dispatcher.Walk] visits the tree depth-first, calling enter
// callbacks before and leave callbacks after the children of a node.
//
// A panicking callback is recovered and recorded as a [Fault]; the walk
// continues with the remaining callbacks and nodes.
package walk

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/pycheck/internal/node"
)

// Phase distinguishes enter from leave callbacks.
type Phase uint8

const (
	Enter Phase = iota
	Leave
)

func (p Phase) String() string {
	if p == Leave {
		return "leave"
	}

	return "enter"
}

// Callback is a function called for nodes of one kind.
type Callback struct {
	Owner  string          // name of the registering checker
	Func   func(node.Node) // the callback
	Active func() bool     // skips the callback when it returns false; nil is always active
}

// Fault is a recovered callback panic.
type Fault struct {
	Owner string
	Node  node.Node
	Phase Phase
	Value any // the recovered value
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: panic in %s callback for %s at %s: %v",
		f.Owner, f.Phase, f.Node.Kind(), f.Node.Span().Start, f.Value)
}

// Dispatcher routes traversal events to callbacks.
//
// Callbacks must be registered before calling [Dispatcher.Walk]. A Dispatcher
// is not safe for concurrent use.
type Dispatcher struct {
	callbacks [2][node.KindCount][]Callback
	logger    *slog.Logger
	faults    []Fault
}

// New creates an empty dispatcher logging faults to logger, or [slog.Default] when nil.
func New(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{logger: logger}
}

// OnEnter registers cb for entering nodes of kind k.
func (d *Dispatcher) OnEnter(k node.Kind, cb Callback) {
	d.callbacks[Enter][k] = append(d.callbacks[Enter][k], cb)
}

// OnLeave registers cb for leaving nodes of kind k.
func (d *Dispatcher) OnLeave(k node.Kind, cb Callback) {
	d.callbacks[Leave][k] = append(d.callbacks[Leave][k], cb)
}

// Faults returns the callback panics recovered so far.
func (d *Dispatcher) Faults() []Fault {
	return slices.Clone(d.faults)
}

// Walk traverses the tree below root.
//
// Cancellation of ctx is checked between the top-level statements of a module.
// Visiting a node twice or finding a wrong parent link aborts with an error
// wrapping [node.ErrStructure].
func (d *Dispatcher) Walk(ctx context.Context, root node.Node) error {
	defer trace.StartRegion(ctx, "Walk").End()

	w := walker{
		Dispatcher: d,
		ctx:        ctx,
		seen:       make(map[node.Node]struct{}),
	}

	return w.walk(root, root.Parent())
}

type walker struct {
	*Dispatcher
	ctx  context.Context //nolint:containedctx
	seen map[node.Node]struct{}
}

func (w *walker) walk(n, parent node.Node) error {
	if _, ok := w.seen[n]; ok {
		return fmt.Errorf("%s at %s visited twice: %w", n.Kind(), n.Span().Start, node.ErrStructure)
	}

	w.seen[n] = struct{}{}

	if n.Parent() != parent {
		return fmt.Errorf("%s at %s has a wrong parent link: %w", n.Kind(), n.Span().Start, node.ErrStructure)
	}

	w.dispatch(Enter, n)

	top := n.Kind() == node.KindModule

	for _, c := range n.Children() {
		if top {
			if err := w.ctx.Err(); err != nil {
				return err
			}
		}

		if err := w.walk(c, n); err != nil {
			return err
		}
	}

	w.dispatch(Leave, n)

	return nil
}

func (w *walker) dispatch(phase Phase, n node.Node) {
	for _, cb := range w.callbacks[phase][n.Kind()] {
		if cb.Active != nil && !cb.Active() {
			continue
		}

		w.call(phase, cb, n)
	}
}

func (w *walker) call(phase Phase, cb Callback, n node.Node) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		f := Fault{Owner: cb.Owner, Node: n, Phase: phase, Value: r}
		w.faults = append(w.faults, f)

		w.logger.LogAttrs(w.ctx, slog.LevelWarn, "Checker fault",
			slog.String("checker", cb.Owner),
			slog.String("phase", phase.String()),
			slog.String("node", n.Kind().String()),
			slog.String("pos", n.Span().Start.String()),
			slog.Any("panic", r),
		)
	}()

	cb.Func(n)
}
