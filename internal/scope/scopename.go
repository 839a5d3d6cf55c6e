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

package scope

import "fillmore-labs.com/pycheck/internal/node"

// Name returns a human-readable name for the scope type.
func Name(n node.Node) string {
	switch n.(type) {
	// keep-sorted start newline_separated=yes
	case *node.ClassDef:
		return "class"

	case *node.Comprehension:
		return "comprehension"

	case *node.FunctionDef:
		return "function"

	case *node.Lambda:
		return "lambda"

	case *node.Module:
		return "module"

	case nil:
		return "<nil>"

	default:
		return n.Kind().String()
		// keep-sorted end
	}
}
