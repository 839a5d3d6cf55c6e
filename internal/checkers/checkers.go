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

// Package checkers lists the checkers shipped with pycheck.
package checkers

import (
	"fillmore-labs.com/pycheck/internal/checker"
	"fillmore-labs.com/pycheck/internal/checkers/multitype"
	"fillmore-labs.com/pycheck/internal/checkers/overlapexcept"
	"fillmore-labs.com/pycheck/internal/config"
)

// All returns all checkers.
func All() []*checker.Checker {
	return []*checker.Checker{overlapexcept.Checker, multitype.Checker}
}

// Selected returns the checkers enabled in flags.
func Selected(flags config.Checkers) []*checker.Checker {
	var result []*checker.Checker

	if flags.Enabled(config.OverlapExcept) {
		result = append(result, overlapexcept.Checker)
	}

	if flags.Enabled(config.RedefinedType) {
		result = append(result, multitype.Checker)
	}

	return result
}
