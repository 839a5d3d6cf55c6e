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

package analyzer

import (
	"flag"
	"strings"

	"fillmore-labs.com/pycheck/internal/config"
)

// RegisterFlags binds the analyzer options to command line flag values.
// A nil flag set value defaults to the program's command line.
func (a *Analyzer) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	o := a.opts

	flags.Var(newMaskFlag(&o.Checkers, config.OverlapExcept), "overlapping-except", "report overlapping exception handlers")
	flags.Var(newMaskFlag(&o.Checkers, config.RedefinedType), "redefined-variable-type", "report variables redefined with a different type")
	flags.Var(newMaskFlag(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newMaskFlag(&o.Behavior, config.Directives), "directives", `honor "# pylint: disable=" comments`)
	flags.Var(newMaskFlag(&o.Behavior, config.ReportFaults), "faults", "report checker failures as messages")

	flags.IntVar(&o.MaxDepth, "max-depth", o.MaxDepth, "maximum nesting of inference steps")
	flags.IntVar(&o.Concurrency, "concurrency", o.Concurrency, "number of files analyzed in parallel")

	flags.Func("disable", "comma separated rule IDs, symbols or categories to suppress", func(s string) error {
		for r := range strings.SplitSeq(s, ",") {
			if r = strings.TrimSpace(r); r != "" {
				o.Disabled = append(o.Disabled, r)
			}
		}

		return nil
	})
}
