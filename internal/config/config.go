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

// CheckerFlags selects the checkers to run.
type CheckerFlags uint8

const (
	// OverlapExcept enables the detection of overlapping exceptions in except clauses.
	OverlapExcept CheckerFlags = 1 << iota

	// RedefinedType enables the detection of variables changing their type.
	RedefinedType
)

// Checkers is the set of enabled checkers.
type Checkers = BitMask[CheckerFlags]

// DefaultCheckers enables all checkers.
func DefaultCheckers() Checkers {
	return NewBitMask(OverlapExcept, RedefinedType)
}

// BehaviorFlags represents behavioral options of a run.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// Directives enables inline "# pylint: disable=" comments.
	Directives

	// ReportFaults surfaces recovered checker panics as analysis-fault messages.
	ReportFaults
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior honors directives and skips generated files.
func DefaultBehavior() Behavior {
	return NewBitMask(Directives)
}
