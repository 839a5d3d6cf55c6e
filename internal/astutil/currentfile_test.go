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

package astutil_test

import (
	"testing"

	. "fillmore-labs.com/pycheck/internal/astutil"
	"fillmore-labs.com/pycheck/internal/testsource"
)

const directives = `
x = 1  # pylint: disable=redefined-variable-type
x = 's'
# pylint: disable=W0714
try:
    pass
except (A, A):
    pass
# pylint: enable=w0714
# pylint: disable-next=all
y = 1
y = 's'
`

func TestNoLint(t *testing.T) {
	t.Parallel()

	c := NewCurrentFile(testsource.Parse(t, directives))

	tests := []struct {
		name   string
		line   int
		id     string
		symbol string
		want   bool
	}{
		{"trailing_symbol", 1, "R0204", "redefined-variable-type", true},
		{"trailing_only_its_line", 2, "R0204", "redefined-variable-type", false},
		{"standalone_id", 6, "W0714", "overlapping-except", true},
		{"standalone_other_rule", 6, "R0204", "redefined-variable-type", false},
		{"enabled_again", 9, "W0714", "overlapping-except", false},
		{"next_line", 10, "R0204", "redefined-variable-type", true},
		{"after_next_line", 11, "R0204", "redefined-variable-type", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.NoLint(tt.line, tt.id, tt.symbol); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"go_style", "# Code generated by tool. DO NOT EDIT.\nx = 1", true},
		{"protoc", "# Generated by the protocol buffer compiler.  DO NOT EDIT!\nx = 1", true},
		{"plain", "# Hand written.\nx = 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewCurrentFile(testsource.Parse(t, tt.src)).Generated(); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestSkipped(t *testing.T) {
	t.Parallel()

	c := NewCurrentFile(testsource.Parse(t, "# pylint: skip-file\nx = 1"))
	if !c.Skipped() {
		t.Error("Expected file to be skipped")
	}

	if (CurrentFile{}).Valid() {
		t.Error("Expected zero value to be invalid")
	}
}
