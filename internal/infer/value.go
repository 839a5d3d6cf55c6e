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
	"fmt"

	"fillmore-labs.com/pycheck/internal/node"
)

// Value is an inferred value: a [*Class], [*Instance], [*Function], [*Module] or [Uninferable].
type Value interface {
	// Pytype returns the qualified name of the value's type, e.g. "builtins.int".
	Pytype() string

	// String returns a short description for messages and logs.
	String() string

	value()
}

// Class is a class, either defined in the analyzed module or a builtin.
//
// There is exactly one Class per [*node.ClassDef] in an analysis run, so
// classes can be compared by identity.
type Class struct {
	Name  string
	QName string         // qualified name, e.g. "builtins.ValueError" or "mod.Error"
	Def   *node.ClassDef // nil for builtins
	bases []*Class       // builtins only
}

// Builtin reports whether c is a builtin class.
func (c *Class) Builtin() bool { return c.Def == nil }

func (*Class) Pytype() string   { return "builtins.type" }
func (c *Class) String() string { return c.QName }
func (*Class) value()           {}

// Instance is an instance of a class.
type Instance struct {
	Class *Class
	Node  node.Node   // the literal or call producing the instance, may be nil
	Elts  []node.Node // elements of tuple and list displays
}

func (i *Instance) Pytype() string { return i.Class.QName }
func (i *Instance) String() string { return "instance of " + i.Class.QName }
func (*Instance) value()           {}

// Function is a function, lambda or method.
type Function struct {
	Name   string
	Def    node.Node // *node.FunctionDef or *node.Lambda, nil for builtins
	Bound  Value     // the receiver of a bound method
	Result *Class    // result class of builtins, nil when unknown
}

func (f *Function) Pytype() string {
	if f.Bound != nil {
		return "builtins.method"
	}

	if f.Def == nil {
		return "builtins.builtin_function_or_method"
	}

	return "builtins.function"
}

func (f *Function) String() string { return fmt.Sprintf("function %s", f.Name) }
func (*Function) value()           {}

// Module is the analyzed module.
type Module struct {
	Name string
	Def  *node.Module
}

func (*Module) Pytype() string   { return "builtins.module" }
func (m *Module) String() string { return "module " + m.Name }
func (*Module) value()           {}

type uninferable struct{}

func (uninferable) Pytype() string { return "Uninferable" }
func (uninferable) String() string { return "Uninferable" }
func (uninferable) value()         {}

// Uninferable is the value of expressions whose value cannot be determined.
var Uninferable Value = uninferable{}

// IsUninferable reports whether v is [Uninferable].
func IsUninferable(v Value) bool { return v == Uninferable }

// IsNone reports whether v is the None singleton.
func IsNone(v Value) bool {
	i, ok := v.(*Instance)

	return ok && i.Class == builtinClasses["NoneType"]
}

// Instantiate returns an instance of c without a producing node.
func Instantiate(c *Class) *Instance { return &Instance{Class: c} }
