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
	"math"
	"regexp"
	"strings"

	"fillmore-labs.com/pycheck/internal/parse"
)

// CurrentFile holds per-file information for analysis: whether the file is
// generated and the rules disabled by inline directives.
type CurrentFile struct {
	file      *parse.File
	generated bool
	skipped   bool
	disabled  map[string][]lineRange
}

// lineRange is an inclusive range of lines.
type lineRange struct{ from, to int }

// NewCurrentFile creates a new [CurrentFile] from a parsed file.
func NewCurrentFile(file *parse.File) CurrentFile {
	if file == nil || file.Module == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, disabled: make(map[string][]lineRange)}
	c.scanComments()

	return c
}

// Valid returns true if the [CurrentFile] was created from a parsed file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// Path returns the file path.
func (c CurrentFile) Path() string {
	return c.file.Path
}

// Module returns the module name.
func (c CurrentFile) Module() string {
	return c.file.Module.Name
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Skipped returns true if the file carries a "# pylint: skip-file" directive.
func (c CurrentFile) Skipped() bool {
	return c.skipped
}

// NoLint reports whether a directive disables the rule with the given ID or symbol on line.
func (c CurrentFile) NoLint(line int, id, symbol string) bool {
	for _, key := range [...]string{"all", strings.ToLower(id), strings.ToLower(symbol)} {
		for _, r := range c.disabled[key] {
			if r.from <= line && line <= r.to {
				return true
			}
		}
	}

	return false
}

var (
	generatedPattern = regexp.MustCompile(`^#\s*(Code generated .* DO NOT EDIT\.|Generated by the protocol buffer compiler\.\s+DO NOT EDIT!)`)
	directivePattern = regexp.MustCompile(`#\s*pylint:\s*(disable-next|disable|enable|skip-file)\b(?:\s*=\s*([\w-]+(?:\s*,\s*[\w-]+)*))?`)
)

// scanComments detects generated files and collects directives.
//
// A directive trailing code applies to its line only. A standalone disable
// lasts until a matching enable or the end of the file.
func (c *CurrentFile) scanComments() {
	open := make(map[string]int)

	for _, comment := range c.file.Comments {
		if generatedPattern.MatchString(comment.Text) {
			c.generated = true
		}

		m := directivePattern.FindStringSubmatch(comment.Text)
		if m == nil {
			continue
		}

		action, line := m[1], comment.Pos.Line
		if action == "skip-file" {
			c.skipped = true

			continue
		}

		for rule := range strings.SplitSeq(m[2], ",") {
			rule = strings.ToLower(strings.TrimSpace(rule))
			if rule == "" {
				continue
			}

			switch action {
			case "disable-next":
				c.disabled[rule] = append(c.disabled[rule], lineRange{line + 1, line + 1})

			case "disable":
				if !comment.Standalone {
					c.disabled[rule] = append(c.disabled[rule], lineRange{line, line})
				} else if _, ok := open[rule]; !ok {
					open[rule] = line
				}

			case "enable":
				if from, ok := open[rule]; ok {
					c.disabled[rule] = append(c.disabled[rule], lineRange{from, line - 1})
					delete(open, rule)
				}
			}
		}
	}

	for rule, from := range open {
		c.disabled[rule] = append(c.disabled[rule], lineRange{from, math.MaxInt})
	}
}
