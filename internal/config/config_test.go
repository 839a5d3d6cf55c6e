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

package config_test

import (
	"testing"

	. "fillmore-labs.com/pycheck/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if !b.Enabled(Directives) || b.Enabled(IncludeGenerated) {
		t.Errorf("Got %08b, expected only directives", b.Bits())
	}

	b.Set(IncludeGenerated, true)
	b.Set(Directives, false)

	if b.Enabled(Directives) || !b.Enabled(IncludeGenerated) {
		t.Errorf("Got %08b, expected only generated files", b.Bits())
	}

	c := DefaultCheckers()
	c.Disable(OverlapExcept)

	if c.Enabled(OverlapExcept) || !c.Enabled(RedefinedType) {
		t.Errorf("Got %08b, expected only redefined type", c.Bits())
	}
}
