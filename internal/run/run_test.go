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

package run_test

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fillmore-labs.com/pycheck/internal/config"
	. "fillmore-labs.com/pycheck/internal/run"
)

const redefined = "x = 1\nx = 's'\n"

func options() *Options {
	o := DefaultOptions()
	o.Logger = slog.New(slog.DiscardHandler)

	return o
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		modify  func(o *Options)
		want    []string // message IDs
		skipped bool
	}{
		{name: "default", src: redefined, want: []string{"R0204"}},
		{name: "syntax_error", src: "def f(:\n    pass\n", want: []string{"E0001"}},
		{name: "syntax_error_disabled", src: "def f(:\n", modify: func(o *Options) { o.Disabled = []string{"syntax-error"} }},
		{name: "checker_disabled", src: redefined, modify: func(o *Options) { o.Checkers.Disable(config.RedefinedType) }},
		{name: "rule_disabled", src: redefined, modify: func(o *Options) { o.Disabled = []string{"r0204"} }},
		{name: "category_disabled", src: redefined, modify: func(o *Options) { o.Disabled = []string{"refactor"} }},
		{name: "all_disabled", src: redefined, modify: func(o *Options) { o.Disabled = []string{"all"} }},
		{name: "other_disabled", src: redefined, modify: func(o *Options) { o.Disabled = []string{"warning"} }, want: []string{"R0204"}},
		{name: "directive", src: "x = 1\nx = 's'  # pylint: disable=redefined-variable-type\n"},
		{
			name:   "directives_off",
			src:    "x = 1\nx = 's'  # pylint: disable=redefined-variable-type\n",
			modify: func(o *Options) { o.Behavior.Disable(config.Directives) },
			want:   []string{"R0204"},
		},
		{name: "generated", src: "# Code generated by hand. DO NOT EDIT.\n" + redefined, skipped: true},
		{
			name:   "generated_included",
			src:    "# Code generated by hand. DO NOT EDIT.\n" + redefined,
			modify: func(o *Options) { o.Behavior.Enable(config.IncludeGenerated) },
			want:   []string{"R0204"},
		},
		{name: "skip_file", src: "# pylint: skip-file\n" + redefined, skipped: true},
		{
			name:   "skip_file_directives_off",
			src:    "# pylint: skip-file\n" + redefined,
			modify: func(o *Options) { o.Behavior.Disable(config.Directives) },
			want:   []string{"R0204"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := options()
			if tt.modify != nil {
				tt.modify(o)
			}

			res, err := o.Run(t.Context(), "test.py", []byte(tt.src))
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if res.Skipped != tt.skipped {
				t.Errorf("Got skipped %t, expected %t", res.Skipped, tt.skipped)
			}

			if len(res.Messages) != len(tt.want) {
				t.Fatalf("Got %v, expected %v", res.Messages, tt.want)
			}

			for i, m := range res.Messages {
				if m.ID != tt.want[i] {
					t.Errorf("Got %s, expected %s", m.ID, tt.want[i])
				}
			}
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	const src = "x = 1\nx = 's'\ntry:\n    pass\nexcept (ValueError, ValueError):\n    pass\n"

	o := options()

	first, err := o.Run(t.Context(), "test.py", []byte(src))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	second, err := o.Run(t.Context(), "test.py", []byte(src))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(first.Messages) != 2 || len(first.Messages) != len(second.Messages) {
		t.Fatalf("Got %v and %v, expected two identical messages each", first.Messages, second.Messages)
	}

	for i := range first.Messages {
		if a, b := first.Messages[i].String(), second.Messages[i].String(); a != b {
			t.Errorf("Got %q, expected %q", b, a)
		}
	}
}

func TestRunLongModule(t *testing.T) {
	t.Parallel()

	var src strings.Builder
	for i := range 1000 {
		fmt.Fprintf(&src, "x = %d\ny = x\nx = y\n", i)
	}

	o := options()

	start := time.Now()

	res, err := o.Run(t.Context(), "long.py", []byte(src.String()))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Got %v for 3000 statements, expected less than 3s", elapsed)
	}

	if len(res.Messages) != 0 {
		t.Errorf("Got %v, expected no messages", res.Messages)
	}
}

func TestRunAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	onDisk := filepath.Join(dir, "disk.py")
	if err := os.WriteFile(onDisk, []byte(redefined), 0o600); err != nil {
		t.Fatal(err)
	}

	units := []Unit{
		{Path: "clean.py", Source: []byte("x = 1\n")},
		{Path: onDisk},
		{Path: filepath.Join(dir, "missing.py")},
		{Path: "redefined.py", Source: []byte(redefined)},
	}

	o := options()
	o.Concurrency = 2

	results, err := o.RunAll(t.Context(), units)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Got error %v, expected %v", err, fs.ErrNotExist)
	}

	if len(results) != len(units) {
		t.Fatalf("Got %d results, expected %d", len(results), len(units))
	}

	for i, want := range []int{0, 1, 0, 1} {
		if results[i].Path != units[i].Path {
			t.Errorf("Result %d: got path %s, expected %s", i, results[i].Path, units[i].Path)
		}

		if got := len(results[i].Messages); got != want {
			t.Errorf("Result %d: got %d messages, expected %d", i, got, want)
		}
	}
}
