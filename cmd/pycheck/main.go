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

// Command pycheck reports overlapping exception handlers and variables
// redefined with a different type in Python source files.
//
// Usage:
//
//	pycheck [flags] path...
//
// Directories are searched recursively for .py files. The exit code is 0
// without messages, 1 when messages were reported and 2 on errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"fillmore-labs.com/pycheck/analyzer"
)

const (
	exitClean    = 0
	exitMessages = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("pycheck", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configFile := flags.String("config", "", "YAML settings `file`")
	verbose := flags.Bool("v", false, "log skipped files and checker faults")

	// Validates the command line, values are applied after reading the settings.
	probe := analyzer.New()
	probe.RegisterFlags(flags)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s\n\nUsage: %s [flags] path...\n\nFlags:\n", probe.Doc(), probe.Name())
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}

		return exitError
	}

	if flags.NArg() == 0 {
		flags.Usage()

		return exitError
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := analyzer.Options{analyzer.WithLogger(logger)}

	if *configFile != "" {
		settings, err := readSettings(*configFile)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Invalid configuration", slog.Any("error", err))

			return exitError
		}

		opts = append(opts, settings.Options())
	}

	a := analyzer.New(opts)

	// Command line flags take precedence over settings.
	apply := flag.NewFlagSet("pycheck", flag.ContinueOnError)
	apply.SetOutput(io.Discard)
	apply.String("config", "", "")
	apply.Bool("v", false, "")
	a.RegisterFlags(apply)

	if err := apply.Parse(args); err != nil {
		return exitError
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Starting", slog.Any("options", opts))

	paths, err := collect(flags.Args())
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't collect files", slog.Any("error", err))

		return exitError
	}

	results, err := a.CheckFiles(ctx, paths...)

	code := exitClean

	for _, r := range results {
		for _, m := range r.Messages {
			fmt.Fprintln(stdout, m.String())

			code = exitMessages
		}
	}

	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Analysis failed", slog.Any("error", err))

		return exitError
	}

	return code
}

func readSettings(name string) (analyzer.Settings, error) {
	f, err := os.Open(name)
	if err != nil {
		return analyzer.Settings{}, err
	}
	defer f.Close()

	return analyzer.DecodeSettings(f)
}

// collect expands directories into the .py files they contain.
func collect(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			paths = append(paths, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir() && path != arg && strings.HasPrefix(d.Name(), "."):
				return filepath.SkipDir

			case !d.IsDir() && filepath.Ext(path) == ".py":
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't walk %s: %w", arg, err)
		}
	}

	return paths, nil
}
