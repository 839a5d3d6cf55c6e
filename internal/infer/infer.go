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
	"fillmore-labs.com/pycheck/internal/scope"
)

// infer dispatches on the node kind. Results are not memoized here.
func (c *Context) infer(n node.Node) iter.Seq2[Value, error] {
	switch n := n.(type) {
	case *node.Const:
		return single(c.constant(n))

	case *node.Name:
		if n.Ctx != node.Load {
			return c.assigned(n)
		}

		return c.name(n)

	case *node.Attribute:
		return c.attribute(n)

	case *node.Call:
		return c.call(n)

	case *node.Subscript:
		return c.subscript(n)

	case *node.Tuple:
		return single(&Instance{Class: builtinClasses["tuple"], Node: n, Elts: n.Elts})

	case *node.List:
		return single(&Instance{Class: builtinClasses["list"], Node: n, Elts: n.Elts})

	case *node.Set:
		return single(&Instance{Class: builtinClasses["set"], Node: n})

	case *node.Dict:
		return single(&Instance{Class: builtinClasses["dict"], Node: n})

	case *node.Comprehension:
		return single(&Instance{Class: comprehensionClass(n.Type), Node: n})

	case *node.BoolOp:
		return c.values(n.Values...)

	case *node.IfExp:
		return c.values(n.Body, n.Orelse)

	case *node.Compare:
		return single(&Instance{Class: builtinClasses["bool"], Node: n})

	case *node.UnaryOp:
		return c.unaryOp(n)

	case *node.BinOp:
		return c.binOp(n)

	case *node.Keyword:
		return c.Infer(n.Value)

	case *node.Lambda:
		return single(&Function{Name: "<lambda>", Def: n})

	case *node.FunctionDef:
		return single(&Function{Name: n.Name, Def: n})

	case *node.ClassDef:
		return single(c.ClassOf(n))

	case *node.Module:
		return single(c.module)

	case *node.Arg:
		return c.argument(n)

	case *node.Starred:
		return single(Uninferable)

	case *node.Import, *node.ImportFrom:
		return failure(fail(n, "unresolved import"))

	case *node.Unsupported:
		return failure(fail(n, "unsupported construct %s", n.Type))

	default:
		return failure(fail(n, "cannot infer %s", n.Kind()))
	}
}

func (c *Context) constant(n *node.Const) *Instance {
	var name string

	switch n.Type {
	case node.ConstInt:
		name = "int"
	case node.ConstFloat:
		name = "float"
	case node.ConstComplex:
		name = "complex"
	case node.ConstStr:
		name = "str"
	case node.ConstBytes:
		name = "bytes"
	case node.ConstBool:
		name = "bool"
	case node.ConstNone:
		name = "NoneType"
	default:
		name = "ellipsis"
	}

	return &Instance{Class: builtinClasses[name], Node: n}
}

func comprehensionClass(t node.CompType) *Class {
	switch t {
	case node.ListComp:
		return builtinClasses["list"]
	case node.SetComp:
		return builtinClasses["set"]
	case node.DictComp:
		return builtinClasses["dict"]
	default:
		return builtinClasses["generator"]
	}
}

// moduleDunders are implicitly bound in every module.
var moduleDunders = map[string]string{
	"__name__": "str", "__file__": "str", "__doc__": "str", "__package__": "str",
}

// name resolves a load of a name to its bindings.
func (c *Context) name(n *node.Name) iter.Seq2[Value, error] {
	_, bindings := c.scopes.LookupFunc(n.ID, n, func(s *scope.Scope, b []node.Node) []node.Node {
		return precedingBindings(s, b, n)
	})

	if len(bindings) > 0 {
		return c.values(bindings...)
	}

	if v, ok := builtinNames[n.ID]; ok {
		return single(v)
	}

	if cls, ok := moduleDunders[n.ID]; ok {
		return single(Instantiate(builtinClasses[cls]))
	}

	return failure(fail(n, "undefined name %q", n.ID))
}
