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

// Package level defines the message categories of pycheck rules.
package level

import (
	"fmt"
	"strings"
)

// Category classifies a rule by the first letter of its ID.
type Category uint8

const (
	// Info messages are informational only.
	Info Category = iota

	// Convention messages flag violations of coding conventions.
	Convention

	// Refactor messages flag code that should be restructured.
	Refactor

	// Warning messages flag likely bugs.
	Warning

	// Error messages flag definite bugs.
	Error

	// Fatal messages flag conditions preventing further analysis.
	Fatal
)

var categories = [...]struct {
	letter byte
	name   string
}{
	Info:       {'I', "info"},
	Convention: {'C', "convention"},
	Refactor:   {'R', "refactor"},
	Warning:    {'W', "warning"},
	Error:      {'E', "error"},
	Fatal:      {'F', "fatal"},
}

// FromID returns the category of a rule ID like "W0714".
func FromID(id string) (Category, bool) {
	if id == "" {
		return 0, false
	}

	for c, cat := range categories {
		if cat.letter == id[0] {
			return Category(c), true
		}
	}

	return 0, false
}

// Letter returns the ID prefix of the category.
func (c Category) Letter() byte {
	if int(c) >= len(categories) {
		return '?'
	}

	return categories[c].letter
}

func (c Category) String() string {
	if int(c) >= len(categories) {
		return fmt.Sprintf("Category(%d)", c)
	}

	return categories[c].name
}

// MarshalText implements [encoding.TextMarshaler].
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categories) {
		return nil, fmt.Errorf("unknown category %d", c)
	}

	return []byte(categories[c].name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// Both the category name and its letter are accepted.
func (c *Category) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))

	for i, cat := range categories {
		if s == cat.name || len(s) == 1 && s[0] == cat.letter+'a'-'A' {
			*c = Category(i)

			return nil
		}
	}

	return fmt.Errorf("unknown category %q", string(text))
}
