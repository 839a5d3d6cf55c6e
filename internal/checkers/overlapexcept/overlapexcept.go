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

// Package overlapexcept reports except clauses naming overlapping exception classes.
package overlapexcept

import (
	"fmt"

	"fillmore-labs.com/pycheck/internal/checker"
	"fillmore-labs.com/pycheck/internal/infer"
	"fillmore-labs.com/pycheck/internal/node"
	"fillmore-labs.com/pycheck/internal/report"
)

const symbol = "overlapping-except"

// Checker reports exceptions in one handler clause that are identical or
// related by inheritance.
var Checker = &checker.Checker{
	Name: "overlap-except",
	Doc:  "Checks for two or more exceptions in the same handler clause that are identical or in the same hierarchy.",
	Messages: []report.Definition{{
		ID:       "W0714",
		Symbol:   symbol,
		Template: "Overlapping exceptions (%s)",
		Help:     "Used when exceptions in handler overlap or are identical",
	}},
	Run: run,
}

func run(p *checker.Pass) {
	p.Enter(node.KindTry, func(n node.Node) { visitTry(p, n.(*node.Try)) }, symbol)
}

type handled struct {
	part node.Node
	exc  *infer.Class
}

func visitTry(p *checker.Pass, try *node.Try) {
	for _, h := range try.Handlers {
		if h.Type == nil || h.Type.Kind() == node.KindBoolOp {
			continue
		}

		parts, ok := unpack(p.Infer, h.Type)
		if !ok {
			continue
		}

		var clause []handled

		for _, part := range parts {
			if infer.IsUninferable(part.Value) {
				continue
			}

			exc, ok := p.Hierarchy.Normalize(part.Value)
			if !ok {
				continue
			}

			for _, prev := range clause {
				if msg, ok := overlap(p, prev, handled{part.Node, exc}); ok {
					p.Report(symbol, h.Type, msg)
				}
			}

			clause = append(clause, handled{part.Node, exc})
		}
	}
}

// unpack collects the parts of a handler type, failing when any part cannot be inferred.
func unpack(c *infer.Context, typ node.Node) ([]infer.Part, bool) {
	var parts []infer.Part

	for part, err := range c.AnnotatedUnpack(typ) {
		if err != nil {
			return nil, false
		}

		parts = append(parts, part)
	}

	return parts, true
}

func overlap(p *checker.Pass, prev, cur handled) (string, bool) {
	if cur.exc == prev.exc {
		return fmt.Sprintf("%s and %s are the same", node.Render(prev.part), node.Render(cur.part)), true
	}

	prevIsAncestor := p.Hierarchy.IsAncestor(prev.exc, cur.exc)
	curIsAncestor := p.Hierarchy.IsAncestor(cur.exc, prev.exc)

	if !prevIsAncestor && !curIsAncestor {
		return "", false
	}

	ancestor, descendant := prev.part, prev.part
	if curIsAncestor {
		ancestor = cur.part
	}

	if prevIsAncestor {
		descendant = cur.part
	}

	return fmt.Sprintf("%s is an ancestor class of %s", node.Render(ancestor), node.Render(descendant)), true
}
