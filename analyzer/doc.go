// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the pycheck static analysis of Python source files.
//
// # Overview
//
// pycheck parses Python modules, infers the values of expressions and walks
// the syntax tree, calling checkers that report pylint-compatible messages.
//
// # Checks
//
// W0714 overlapping-except reports exception handlers that catch the same
// class twice, or a class together with one of its ancestors:
//
//	try:
//	    ...
//	except (ArithmeticError, FloatingPointError):  # FloatingPointError is redundant
//	    ...
//
// R0204 redefined-variable-type reports names in a scope that are assigned
// values of different types:
//
//	x = 1
//	x = "one"  # Redefinition of x type from int to str
//
// Assignments in different branches of the same if statement are exempt.
//
// # Directives
//
// Messages are suppressed by "# pylint: disable=" comments, either trailing
// a statement or on a line of their own until a matching "# pylint: enable=".
// "# pylint: skip-file" skips the whole file.
package analyzer
