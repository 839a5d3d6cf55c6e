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

package config

// Flags are the flag types of a pycheck run: [CheckerFlags] select the
// checkers, [BehaviorFlags] the handling of directives, generated files and
// checker faults.
type Flags interface {
	CheckerFlags | BehaviorFlags
}

// BitMask is a set of [Flags], the representation of [Checkers] and [Behavior].
//
// The zero value has every flag disabled.
type BitMask[T Flags] struct {
	bits T
}

// NewBitMask returns a set with exactly flags enabled.
func NewBitMask[T Flags](flags ...T) BitMask[T] {
	var m BitMask[T]
	for _, f := range flags {
		m.bits |= f
	}

	return m
}

// Set switches flag on or off, as done by command line flags and settings files.
func (m *BitMask[T]) Set(flag T, on bool) {
	if on {
		m.bits |= flag
	} else {
		m.bits &^= flag
	}
}

// Enable switches flag on.
func (m *BitMask[T]) Enable(flag T) { m.Set(flag, true) }

// Disable switches flag off.
func (m *BitMask[T]) Disable(flag T) { m.Set(flag, false) }

// Enabled reports whether flag is on, e.g. whether a checker should run.
func (m BitMask[T]) Enabled(flag T) bool { return m.bits&flag != 0 }

// Bits returns the raw flags.
func (m BitMask[T]) Bits() T { return m.bits }
