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

package infer

import (
	"iter"

	"fillmore-labs.com/pycheck/internal/node"
)

// attribute infers an attribute access on each value of the object.
func (c *Context) attribute(n *node.Attribute) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(n.Value) {
			if err != nil {
				yield(nil, err)

				return
			}

			for w, err := range c.getattr(v, n.Attr, n) {
				if !yield(w, err) || err != nil {
					return
				}
			}
		}
	}
}

func (c *Context) getattr(v Value, attr string, at node.Node) iter.Seq2[Value, error] {
	switch v := v.(type) {
	case *Class:
		if bindings := c.classAttr(v, attr); len(bindings) > 0 {
			return c.values(bindings...)
		}

		if attr == "__name__" || attr == "__qualname__" || attr == "__module__" {
			return single(Instantiate(builtinClasses["str"]))
		}

	case *Instance:
		if v.Class.Builtin() {
			if result, ok := builtinMethods[v.Class.Name][attr]; ok {
				return single(&Function{Name: attr, Bound: v, Result: builtinClasses[result]})
			}

			break
		}

		if bindings := c.classAttr(v.Class, attr); len(bindings) > 0 {
			return c.bind(v, c.values(bindings...))
		}

		if assigns := c.instanceAttr(v.Class, attr); len(assigns) > 0 {
			return c.values(assigns...)
		}

		if attr == "__class__" {
			return single(v.Class)
		}

	case *Module:
		if bindings := c.scopes.Module().Bindings(attr); len(bindings) > 0 {
			return c.values(bindings...)
		}

	case *Function:
		return single(Uninferable)

	default:
		return single(Uninferable)
	}

	return failure(fail(at, "%s has no attribute %q", v, attr))
}

// bind turns functions found on the class of an instance into bound methods.
//
// Property getters are replaced by their return values, methods with other
// decorators are not inferred.
func (c *Context) bind(self *Instance, values iter.Seq2[Value, error]) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for v, err := range values {
			f, ok := v.(*Function)
			if !ok || err != nil {
				if !yield(v, err) || err != nil {
					return
				}

				continue
			}

			def, ok := f.Def.(*node.FunctionDef)
			if !ok {
				if !yield(v, nil) {
					return
				}

				continue
			}

			switch methodKind(def) {
			case "staticmethod":

			case "property":
				for r, err := range c.returns(def) {
					if err != nil {
						r = Uninferable
					}

					if !yield(r, nil) {
						return
					}
				}

				continue

			case "decorated":
				v = Uninferable

			default:
				v = &Function{Name: f.Name, Def: f.Def, Bound: self}
			}

			if !yield(v, nil) {
				return
			}
		}
	}
}

// classAttr finds the bindings of attr in the body of cls or its user-defined bases.
func (c *Context) classAttr(cls *Class, attr string) []node.Node {
	seen := make(map[*Class]struct{})

	var lookup func(cls *Class) []node.Node
	lookup = func(cls *Class) []node.Node {
		if _, ok := seen[cls]; ok || cls.Def == nil {
			return nil
		}

		seen[cls] = struct{}{}

		if s, ok := c.scopes[cls.Def]; ok {
			if b := s.Bindings(attr); len(b) > 0 {
				return b
			}
		}

		for _, base := range c.Bases(cls) {
			if base, ok := base.(*Class); ok {
				if b := lookup(base); len(b) > 0 {
					return b
				}
			}
		}

		return nil
	}

	return lookup(cls)
}

// instanceAttr finds the values assigned to self.attr in the methods of cls.
func (c *Context) instanceAttr(cls *Class, attr string) []node.Node {
	var values []node.Node

	for _, stmt := range cls.Def.Body {
		fn, ok := stmt.(*node.FunctionDef)
		if !ok || len(fn.Args) == 0 {
			continue
		}

		if kind := methodKind(fn); kind == "staticmethod" || kind == "classmethod" {
			continue
		}

		self := fn.Args[0].Name

		for n := range node.OfKind(fn, node.KindAssign) {
			assign := n.(*node.Assign)
			if node.Frame(assign) != fn {
				continue
			}

			for _, t := range assign.Targets {
				if a, ok := t.(*node.Attribute); ok && a.Attr == attr {
					if recv, ok := a.Value.(*node.Name); ok && recv.ID == self {
						values = append(values, assign.Value)
					}
				}
			}
		}
	}

	return values
}

// Bases infers the base classes of cls in declaration order.
//
// Bases that cannot be inferred are omitted. User classes declaring no
// bases have the implicit base object.
func (c *Context) Bases(cls *Class) []Value {
	if cls.Def == nil {
		bases := make([]Value, 0, len(cls.bases))
		for _, b := range cls.bases {
			bases = append(bases, b)
		}

		return bases
	}

	if len(cls.Def.Bases) == 0 {
		return []Value{builtinClasses["object"]}
	}

	var bases []Value

	for _, b := range cls.Def.Bases {
		for v, err := range c.Infer(b) {
			if err != nil {
				break
			}

			if !IsUninferable(v) {
				bases = append(bases, v)
			}
		}
	}

	return bases
}

// call infers the result of calling each value of the callee.
func (c *Context) call(n *node.Call) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for f, err := range c.Infer(n.Func) {
			if err != nil {
				yield(nil, err)

				return
			}

			for v, err := range c.result(f, n) {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}
}

func (c *Context) result(f Value, n *node.Call) iter.Seq2[Value, error] {
	switch f := f.(type) {
	case *Class:
		if f == builtinClasses["type"] && len(n.Args) == 1 && len(n.Keywords) == 0 {
			return c.typeCall(n.Args[0])
		}

		return single(&Instance{Class: f, Node: n})

	case *Function:
		switch def := f.Def.(type) {
		case nil:
			if f.Result != nil {
				return single(&Instance{Class: f.Result, Node: n})
			}

		case *node.Lambda:
			return c.Infer(def.Body)

		case *node.FunctionDef:
			return c.returns(def)
		}
	}

	return single(Uninferable)
}

// typeCall infers type(x).
func (c *Context) typeCall(arg node.Node) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for v, err := range c.Infer(arg) {
			if err != nil {
				yield(nil, err)

				return
			}

			var cls Value = Uninferable
			if t := TypeOf(v); t != nil {
				cls = t
			}

			if !yield(cls, nil) {
				return
			}
		}
	}
}

// returns infers the values returned by a function.
func (c *Context) returns(def *node.FunctionDef) iter.Seq2[Value, error] {
	var (
		values    []node.Node
		implicit  bool
		generator bool
	)

	for n := range node.Preorder(def) {
		if n == def || node.Frame(n) != def {
			continue
		}

		switch n := n.(type) {
		case *node.Return:
			if n.Value == nil {
				implicit = true
			} else {
				values = append(values, n.Value)
			}

		case *node.Unsupported:
			if n.Type == "yield" {
				generator = true
			}
		}
	}

	switch {
	case def.Async:
		return single(Instantiate(builtinClasses["coroutine"]))

	case generator:
		return single(Instantiate(builtinClasses["generator"]))

	case len(values) == 0:
		return single(Instantiate(builtinClasses["NoneType"]))

	case implicit:
		return func(yield func(Value, error) bool) {
			if !yield(Instantiate(builtinClasses["NoneType"]), nil) {
				return
			}

			for v, err := range c.values(values...) {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}

	default:
		return c.values(values...)
	}
}
