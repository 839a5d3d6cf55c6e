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

package analyzer_test

import (
	"reflect"
	"strings"
	"testing"

	. "fillmore-labs.com/pycheck/analyzer"
)

const allSettings = `
overlapping-except: true
redefined-variable-type: false
generated: true
directives: false
faults: true
disable: [C, redefined-variable-type]
max-depth: 32
concurrency: 4
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty", ``, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := DecodeSettings(strings.NewReader(tc.settings))
			if err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, expected %d", len(got), got.LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := DecodeSettings(strings.NewReader("max-lines: 3\n")); err == nil {
		t.Error("Expected error for unknown key")
	}
}
