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

package astutil

import (
	"fmt"

	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/report"
)

// Messages reported by the host rather than by a checker.
var (
	SyntaxError = report.Definition{
		ID:       "E0001",
		Symbol:   "syntax-error",
		Template: "%s",
		Help:     "Used when a module cannot be parsed.",
	}

	AnalysisFault = report.Definition{
		ID:       "F0002",
		Symbol:   "analysis-fault",
		Template: "Internal error in %s: %s",
		Help:     "Used when a checker failed unexpectedly. Please report the input that triggers it.",
	}
)

// InternalError creates an analysis-fault message.
// These errors indicate bugs in a checker rather than issues in the user's code.
func InternalError(c CurrentFile, owner string, n node.Node, format string, args ...any) report.Message {
	return report.New(AnalysisFault, c.Path(), c.Module(), n.Span(), owner, fmt.Sprintf(format, args...))
}
