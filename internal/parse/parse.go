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

// Package parse turns Python source into the syntax tree of package node.
//
// Parsing is done by tree-sitter; the concrete syntax tree is converted into
// the abstract shape pycheck analyzes and linked before it is returned.
package parse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"fillmore-labs.com/pycheck/internal/node"
)

// ErrSyntax is wrapped by errors for sources that do not parse cleanly.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes the first syntax problem in a source file.
type SyntaxError struct {
	Path string
	Pos  node.Pos
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Pos, e.Msg)
}

func (*SyntaxError) Unwrap() error { return ErrSyntax }

// Comment is a source comment.
type Comment struct {
	Pos        node.Pos
	Text       string // including the leading '#'
	Standalone bool   // nothing but whitespace precedes it on its line
}

// File is a parsed and linked source file.
type File struct {
	Path     string
	Source   []byte
	Module   *node.Module
	Comments []Comment
}

// Parse parses src, reporting positions relative to path.
//
// Sources containing syntax errors yield a [*SyntaxError].
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse of %s failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned no tree for %s: %w", path, ErrSyntax)
	}

	if root.HasError() {
		return nil, syntaxError(path, root)
	}

	c := converter{src: src}

	mod := &node.Module{
		Base: c.at(root),
		Name: ModuleName(path),
		Path: path,
		Body: c.stmts(root),
	}

	if err := node.Link(mod); err != nil {
		return nil, err
	}

	return &File{
		Path:     path,
		Source:   src,
		Module:   mod,
		Comments: comments(root, src),
	}, nil
}

// ModuleName derives a dotted module name from a file path.
//
// Enclosing directories containing an __init__.py are packages and prefix
// the name, so email/_header_value_parser.py becomes "email._header_value_parser".
func ModuleName(path string) string {
	if path == "" {
		return "__main__"
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(strings.TrimSuffix(base, ".py"), ".pyi")

	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if name == "__init__" {
		if !isPackage(dir) {
			if pkg := filepath.Base(filepath.Dir(path)); pkg != "." && pkg != string(filepath.Separator) {
				return pkg
			}

			return name
		}

		name, dir = filepath.Base(dir), filepath.Dir(dir)
	}

	for isPackage(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		name, dir = filepath.Base(dir)+"."+name, parent
	}

	return name
}

// isPackage reports whether dir holds an __init__.py file.
func isPackage(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, "__init__.py"))

	return err == nil && !fi.IsDir()
}

func syntaxError(path string, root *sitter.Node) error {
	e := &SyntaxError{Path: path, Pos: pos(root), Msg: "invalid syntax"}

	var find func(n *sitter.Node) bool
	find = func(n *sitter.Node) bool {
		switch {
		case n.IsMissing():
			e.Pos, e.Msg = pos(n), fmt.Sprintf("missing %q", n.Type())

			return true

		case n.Type() == "ERROR":
			e.Pos = pos(n)

			return true
		}

		for i := range int(n.ChildCount()) {
			if c := n.Child(i); c != nil && (c.HasError() || c.IsMissing()) {
				if find(c) {
					return true
				}
			}
		}

		return false
	}
	find(root)

	return e
}

func comments(root *sitter.Node, src []byte) []Comment {
	var result []Comment

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "comment" {
			p := pos(n)
			lineStart := strings.LastIndexByte(string(src[:p.Offset]), '\n') + 1

			result = append(result, Comment{
				Pos:        p,
				Text:       n.Content(src),
				Standalone: strings.TrimSpace(string(src[lineStart:p.Offset])) == "",
			})

			return
		}

		for i := range int(n.ChildCount()) {
			if c := n.Child(i); c != nil {
				walk(c)
			}
		}
	}
	walk(root)

	return result
}

func pos(n *sitter.Node) node.Pos {
	p := n.StartPoint()

	return node.Pos{Line: int(p.Row) + 1, Col: int(p.Column), Offset: int(n.StartByte())}
}

func end(n *sitter.Node) node.Pos {
	p := n.EndPoint()

	return node.Pos{Line: int(p.Row) + 1, Col: int(p.Column), Offset: int(n.EndByte())}
}
