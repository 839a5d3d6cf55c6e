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

// Package report defines rule definitions and the sink messages are emitted into.
package report

import (
	"fmt"
	"slices"

	"fillmore-labs.com/pycheck/analyzer/level"
	"fillmore-labs.com/pycheck/internal/node"
)

// Definition describes a rule a checker can report.
type Definition struct {
	ID       string // e.g. "W0714"
	Symbol   string // e.g. "overlapping-except"
	Template string // message format with %s verbs
	Help     string
}

// Category returns the category encoded in the rule ID.
func (d Definition) Category() level.Category {
	c, _ := level.FromID(d.ID)

	return c
}

// Format interpolates args into the message template.
func (d Definition) Format(args ...string) string {
	if len(args) == 0 {
		return d.Template
	}

	a := make([]any, len(args))
	for i, arg := range args {
		a[i] = arg
	}

	return fmt.Sprintf(d.Template, a...)
}

// Message is a single emitted diagnostic.
type Message struct {
	ID      string
	Symbol  string
	Path    string
	Module  string
	Line    int // 1-based
	Col     int // 0-based
	EndLine int
	EndCol  int
	Args    []string
	Text    string
}

// New creates a message for def at span.
func New(def Definition, path, module string, span node.Span, args ...string) Message {
	return Message{
		ID:      def.ID,
		Symbol:  def.Symbol,
		Path:    path,
		Module:  module,
		Line:    span.Start.Line,
		Col:     span.Start.Col,
		EndLine: span.End.Line,
		EndCol:  span.End.Col,
		Args:    slices.Clone(args),
		Text:    def.Format(args...),
	}
}

// String formats the message as path:line:col: ID: text (symbol).
func (m Message) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s (%s)", m.Path, m.Line, m.Col, m.ID, m.Text, m.Symbol)
}

// Sink collects messages in emission order.
//
// A Sink is append-only and not safe for concurrent use.
type Sink struct {
	messages []Message
}

// Add appends m.
func (s *Sink) Add(m Message) {
	s.messages = append(s.messages, m)
}

// Messages returns a copy of the collected messages.
func (s *Sink) Messages() []Message {
	return slices.Clone(s.messages)
}

// Len returns the number of collected messages.
func (s *Sink) Len() int { return len(s.messages) }
