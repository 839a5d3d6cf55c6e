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

// Package infer implements best-effort value inference over the syntax tree.
//
// Inference is lazy: [Context.Infer] returns an iterator that computes values
// as they are consumed. When nothing can be determined, the iterator yields a
// single error wrapping [ErrInference]. Callers treat such failures as "skip this
// node"; they are never fatal.
package infer

import (
	"errors"
	"fmt"
	"iter"

	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/scope"
)

// DefaultMaxDepth bounds the nesting of inference steps.
const DefaultMaxDepth = 64

// ErrInference is wrapped by all inference failures.
var ErrInference = errors.New("inference failed")

// Failure describes why the value of a node could not be inferred.
type Failure struct {
	Node   node.Node
	Reason string
}

func (f *Failure) Error() string {
	if f.Node == nil {
		return "inference failed: " + f.Reason
	}

	return fmt.Sprintf("inference of %s at %s failed: %s", f.Node.Kind(), f.Node.Span().Start, f.Reason)
}

func (*Failure) Unwrap() error { return ErrInference }

func fail(n node.Node, format string, args ...any) *Failure {
	return &Failure{Node: n, Reason: fmt.Sprintf(format, args...)}
}

// Context holds the per-run inference state of one module: the class table,
// memoized results and the in-progress set guarding against circular inference.
//
// A Context is not safe for concurrent use.
type Context struct {
	module   *Module
	scopes   scope.Index
	classes  map[*node.ClassDef]*Class
	cache    map[node.Node][]Value
	pending  map[node.Node]struct{}
	depth    int
	maxDepth int
}

// Option configures a [Context].
type Option func(*Context)

// WithMaxDepth bounds the nesting of inference steps.
func WithMaxDepth(depth int) Option {
	return func(c *Context) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// NewContext creates an inference context for a linked module.
func NewContext(mod *node.Module, scopes scope.Index, opts ...Option) *Context {
	c := &Context{
		module:   &Module{Name: mod.Name, Def: mod},
		scopes:   scopes,
		classes:  make(map[*node.ClassDef]*Class),
		cache:    make(map[node.Node][]Value),
		pending:  make(map[node.Node]struct{}),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Scopes returns the scope index the context resolves names with.
func (c *Context) Scopes() scope.Index { return c.scopes }

// Module returns the value of the analyzed module.
func (c *Context) Module() *Module { return c.module }

// ClassOf returns the class value of a class definition.
func (c *Context) ClassOf(def *node.ClassDef) *Class {
	if cls, ok := c.classes[def]; ok {
		return cls
	}

	qname := def.Name
	for p := range node.Ancestors(def) {
		switch p := p.(type) {
		case *node.ClassDef:
			qname = p.Name + "." + qname

		case *node.FunctionDef:
			qname = p.Name + ".<locals>." + qname
		}
	}

	cls := &Class{Name: def.Name, QName: c.module.Name + "." + qname, Def: def}
	c.classes[def] = cls

	return cls
}

// TypeOf returns the class of v: the class of an instance, or the builtin
// type, function, method or module class. It returns nil for [Uninferable].
func TypeOf(v Value) *Class {
	switch v := v.(type) {
	case *Instance:
		return v.Class

	case *Class:
		return builtinClasses["type"]

	case *Function:
		if v.Bound != nil {
			return builtinClasses["method"]
		}

		if v.Def == nil {
			return builtinClasses["builtin_function_or_method"]
		}

		return builtinClasses["function"]

	case *Module:
		return builtinClasses["module"]

	default:
		return nil
	}
}

// Infer yields the values n may take.
//
// Complete results are memoized per node. Re-entering the inference of a node
// that is still in progress fails, as does exceeding the depth limit.
func (c *Context) Infer(n node.Node) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		if n == nil {
			yield(nil, fail(nil, "no node"))

			return
		}

		if values, ok := c.cache[n]; ok {
			for _, v := range values {
				if !yield(v, nil) {
					return
				}
			}

			return
		}

		if _, ok := c.pending[n]; ok {
			yield(nil, fail(n, "circular inference"))

			return
		}

		if c.depth >= c.maxDepth {
			yield(nil, fail(n, "depth limit of %d exceeded", c.maxDepth))

			return
		}

		c.pending[n] = struct{}{}
		c.depth++

		defer func() {
			delete(c.pending, n)
			c.depth--
		}()

		var values []Value

		for v, err := range c.infer(n) {
			if err != nil {
				yield(nil, err)

				return
			}

			values = append(values, v)

			if !yield(v, nil) {
				return
			}
		}

		c.cache[n] = values
	}
}

// values yields the values of all nodes in turn.
//
// A node failing inference contributes [Uninferable], unless no node can be
// inferred at all, in which case the first failure is yielded.
func (c *Context) values(nodes ...node.Node) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		var (
			firstErr error
			yielded  bool
		)

		for _, n := range nodes {
			for v, err := range c.Infer(n) {
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}

					if yielded && !yield(Uninferable, nil) {
						return
					}

					break
				}

				if !yielded && firstErr != nil && !yield(Uninferable, nil) {
					return
				}

				yielded = true

				if !yield(v, nil) {
					return
				}
			}
		}

		if !yielded && firstErr != nil {
			yield(nil, firstErr)
		}
	}
}

// single yields v.
func single(v Value) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) { yield(v, nil) }
}

// failure yields err.
func failure(err error) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) { yield(nil, err) }
}
