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

// Package hierarchy resolves class ancestor chains on top of inference.
package hierarchy

import (
	"slices"

	"fillmore-labs.com/pycheck/internal/infer"
)

// Resolver computes and caches ancestor chains for one analysis run.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	ctx     *infer.Context
	cache   map[*infer.Class][]*infer.Class
	pending map[*infer.Class]struct{}
}

// NewResolver creates a resolver inferring base classes with ctx.
func NewResolver(ctx *infer.Context) *Resolver {
	return &Resolver{
		ctx:     ctx,
		cache:   make(map[*infer.Class][]*infer.Class),
		pending: make(map[*infer.Class]struct{}),
	}
}

// Ancestors returns the ancestors of cls, depth-first over the declared bases.
//
// Each base is followed by its own ancestors. Duplicates and cls itself are
// omitted, bases that are not classes are dropped and instances stand for
// their class.
func (r *Resolver) Ancestors(cls *infer.Class) []*infer.Class {
	if cached, ok := r.cache[cls]; ok {
		return cached
	}

	if _, ok := r.pending[cls]; ok {
		return nil // cyclic hierarchy
	}

	r.pending[cls] = struct{}{}
	defer delete(r.pending, cls)

	var (
		result []*infer.Class
		seen   = map[*infer.Class]struct{}{cls: {}}
	)

	add := func(c *infer.Class) {
		if _, ok := seen[c]; ok {
			return
		}

		seen[c] = struct{}{}
		result = append(result, c)
	}

	for _, base := range r.ctx.Bases(cls) {
		var b *infer.Class

		switch base := base.(type) {
		case *infer.Class:
			b = base
		case *infer.Instance:
			b = base.Class
		default:
			continue
		}

		if b == cls {
			continue
		}

		add(b)

		for _, a := range r.Ancestors(b) {
			add(a)
		}
	}

	r.cache[cls] = result

	return result
}

// IsAncestor reports whether a is an ancestor of c.
func (r *Resolver) IsAncestor(a, c *infer.Class) bool {
	return slices.Contains(r.Ancestors(c), a)
}

// Normalize returns the class v stands for in an exception hierarchy.
//
// A class is returned as is, an instance of a class derived from a builtin
// exception collapses to its class. Any other value is rejected.
func (r *Resolver) Normalize(v infer.Value) (*infer.Class, bool) {
	switch v := v.(type) {
	case *infer.Class:
		return v, true

	case *infer.Instance:
		if r.InheritsFromStdException(v.Class) {
			return v.Class, true
		}
	}

	return nil, false
}

// InheritsFromStdException reports whether cls is, or derives from, the
// builtin Exception or BaseException.
func (r *Resolver) InheritsFromStdException(cls *infer.Class) bool {
	exception, base := infer.Builtin("Exception"), infer.Builtin("BaseException")

	if cls == exception || cls == base {
		return true
	}

	for _, a := range r.Ancestors(cls) {
		if a == exception || a == base {
			return true
		}
	}

	return false
}
