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

package analyzer

import (
	"strconv"
	"strings"

	"fillmore-labs.com/pycheck/internal/config"
)

// maskFlag is a boolean command line flag switching one checker or behavior
// flag of a run, e.g. -redefined-variable-type=false or -generated.
type maskFlag[T config.Flags] struct {
	mask *config.BitMask[T]
	flag T
}

func newMaskFlag[T config.Flags](mask *config.BitMask[T], flag T) maskFlag[T] {
	return maskFlag[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (f maskFlag[_]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.flag, on)

	return nil
}

// String implements [flag.Value]. It is also called on the zero value to
// detect defaults.
func (f maskFlag[_]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f maskFlag[_]) Get() any { return f.enabled() }

// IsBoolFlag allows the flag to be given without a value.
func (maskFlag[_]) IsBoolFlag() bool { return true }

func (f maskFlag[_]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.flag)
}

// parseSwitch accepts the values of [strconv.ParseBool] and, like pylint
// option files, "on" and "off" in any case.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil
	}

	return strconv.ParseBool(s)
}
