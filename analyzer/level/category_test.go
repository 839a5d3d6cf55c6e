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

package level_test

import (
	"testing"

	. "fillmore-labs.com/pycheck/analyzer/level"
)

func TestFromID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want Category
		ok   bool
	}{
		{"W0714", Warning, true},
		{"R0204", Refactor, true},
		{"E0001", Error, true},
		{"F0002", Fatal, true},
		{"X0001", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := FromID(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromID(%q): got %v, %t, expected %v, %t", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryText(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"warning", "Warning", "w", "W"} {
		var c Category
		if err := c.UnmarshalText([]byte(text)); err != nil || c != Warning {
			t.Errorf("UnmarshalText(%q): got %v, %v, expected %v", text, c, err, Warning)
		}
	}

	var c Category
	if err := c.UnmarshalText([]byte("severe")); err == nil {
		t.Error("Expected error for unknown category")
	}

	b, err := Refactor.MarshalText()
	if err != nil || string(b) != "refactor" {
		t.Errorf("Got %q, %v, expected %q", b, err, "refactor")
	}

	if _, err := Category(42).MarshalText(); err == nil {
		t.Error("Expected error for invalid category")
	}

	if got := Convention.Letter(); got != 'C' {
		t.Errorf("Got %c, expected C", got)
	}
}
